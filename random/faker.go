package random

import (
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/brianvoe/gofakeit/v7/source"
)

type Faker struct {
	/**
	 * The wrapped gofakeit faker.
	 */
	*gofakeit.Faker
}

// NewCryptoFaker returns a locked faker drawing from crypto/rand.
func NewCryptoFaker() Faker {
	return Faker{gofakeit.NewFaker(source.NewCrypto(), true)}
}

// SplitN derives count independent PCG fakers from f.
func (f Faker) SplitN(count int) []Faker {
	baseSeed := f.Rand.Uint64()
	fakers := make([]Faker, count)
	for i := 0; i < count; i++ {
		fakers[i] = Faker{
			gofakeit.NewFaker(rand.NewPCG(baseSeed, uint64(i)), false),
		}
	}
	return fakers
}
