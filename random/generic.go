// Package random holds the randomness sources the tombolas draw from:
// seeded PCG fakers for reproducible runs and a crypto-backed faker for
// everything else.
package random

// Rand is the only capability the containers need from a source.
type Rand interface {
	IntN(n int) int
}

func Pick[K any](rand Rand, choices ...K) K {
	if len(choices) <= 0 {
		panic("No valid choices")
	}

	return choices[rand.IntN(len(choices))]
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[K any](rand Rand, s []K) {
	for i := len(s) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
