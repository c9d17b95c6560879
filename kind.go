package tombola

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shared-digitaltechnologies/tombola/random"
)

// Kind names one of the built-in tombola strategies.
type Kind string

const (
	ShuffleBagKind  Kind = "shufflebag"
	IndexBlowerKind Kind = "indexblower"
	ListKind        Kind = "list"
)

var KindIdNs uuid.UUID = uuid.MustParse("5f0c7d1e-3a8b-4c5e-9d21-7b6a0e4f8c93")

// Kinds returns every built-in kind, sorted by name.
func Kinds() []Kind {
	return []Kind{IndexBlowerKind, ListKind, ShuffleBagKind}
}

func ParseKind(val string) (Kind, error) {
	var k Kind
	err := k.Set(val)
	return k, err
}

func (k Kind) Id() uuid.UUID {
	return uuid.NewSHA1(KindIdNs, []byte(k))
}

func (k *Kind) String() string {
	return string(*k)
}

func (k *Kind) Set(val string) error {
	val = strings.ToLower(strings.TrimSpace(val))
	for _, kind := range Kinds() {
		if string(kind) == val {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("Invalid tombola kind '%s'. Valid kinds are 'indexblower', 'list' or 'shufflebag'", val)
}

func (k *Kind) Type() string {
	return "kind"
}

func (k *Kind) UnmarshalText(text []byte) error {
	return k.Set(string(text))
}

// New builds a tombola of the given kind loaded with items. A nil rand
// uses a crypto-backed faker.
func New[T cmp.Ordered](kind Kind, rand random.Rand, items ...T) (Tombola[T], error) {
	if rand == nil {
		rand = random.NewCryptoFaker()
	}

	switch kind {
	case ShuffleBagKind:
		return NewShuffleBag(rand, items...), nil
	case IndexBlowerKind:
		return NewIndexBlower(rand, items...), nil
	case ListKind:
		l := List[T](nil)
		l.Load(items...)
		return &randList[T]{List: &l, rand: rand}, nil
	default:
		return nil, fmt.Errorf("unknown tombola kind %q", string(kind))
	}
}

// randList pins a List to a source so seeded configs stay reproducible.
type randList[T cmp.Ordered] struct {
	*List[T]
	rand random.Rand
}

func (l *randList[T]) Pick() (T, error) {
	return l.PickWith(l.rand)
}
