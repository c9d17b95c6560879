package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

/**
 * A seed for a faker
 */
type Seed uint64

// NewSeed reads a fresh seed from crypto/rand.
func NewSeed() (Seed, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return Seed(binary.LittleEndian.Uint64(b[:])), nil
}

func (s Seed) String() string {
	return fmt.Sprintf("0x%016x", uint64(s))
}

func (s Seed) GoString() string {
	return fmt.Sprintf("Seed(0x%016x)", uint64(s))
}

func (s Seed) NewSourceOffset(offset uint64) rand.Source {
	return rand.NewPCG(uint64(s), offset)
}

func ToSeedOffset(v []byte) uint64 {
	hash := fnv.New64()
	hash.Write(v)
	return hash.Sum64()
}

func (s Seed) NewFakerOffset(offset uint64) Faker {
	return Faker{gofakeit.NewFaker(s.NewSourceOffset(offset), true)}
}

// NewFaker returns a faker whose stream is keyed by offset, so that
// unrelated consumers of one seed do not share draws.
func (s Seed) NewFaker(offset []byte) Faker {
	return s.NewFakerOffset(ToSeedOffset(offset))
}
