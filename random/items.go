package random

import (
	"fmt"
	"strings"
)

// ItemKind selects which gofakeit generator fills a batch of items.
type ItemKind string

const (
	NameItems   ItemKind = "name"
	WordItems   ItemKind = "word"
	AnimalItems ItemKind = "animal"
	ColorItems  ItemKind = "color"
)

var itemKinds = []ItemKind{AnimalItems, ColorItems, NameItems, WordItems}

func (k *ItemKind) String() string {
	return string(*k)
}

func (k *ItemKind) Set(val string) error {
	val = strings.ToLower(val)
	for _, kind := range itemKinds {
		if string(kind) == val {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("Invalid item kind '%s'. Valid item kinds are 'animal', 'color', 'name' or 'word'", val)
}

func (k *ItemKind) Type() string {
	return "string"
}

// Items generates count fake strings of the given kind.
func (f Faker) Items(kind ItemKind, count int) ([]string, error) {
	var gen func() string
	switch kind {
	case NameItems:
		gen = f.Name
	case WordItems:
		gen = f.Word
	case AnimalItems:
		gen = f.Animal
	case ColorItems:
		gen = f.Color
	default:
		return nil, fmt.Errorf("unknown item kind %q", string(kind))
	}

	res := make([]string, count)
	for i := range res {
		res[i] = gen()
	}
	return res, nil
}
