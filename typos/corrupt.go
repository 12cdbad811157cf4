package typos

import (
	"math/rand"

	"github.com/Kamal578/CSCI-6515-Project1/confusion"
)

// azDegrade maps a proper Azerbaijani letter to the ASCII spellings people
// fall back to on an English keyboard.
var azDegrade = map[rune][]string{
	'ç': {"c", "ch"},
	'ş': {"s", "sh"},
	'ğ': {"g", "gh"},
	'ə': {"e"},
	'ö': {"o"},
	'ü': {"u"},
	'ı': {"i"},
}

// noiseAlphabet is sampled for random substitutions and insertions.
var noiseAlphabet = []rune("abcçdeəfgğhxıijkqlmnoöprsştuüvyz")

// CorruptOptions tunes the synthetic misspelling generator. The zero value
// selects the defaults below.
type CorruptOptions struct {
	// Seed makes generation reproducible. Zero means seed 1.
	Seed int64

	// DegradeProb is the chance each degradable letter is typed in ASCII.
	// Zero means 0.5; negative disables degradation.
	DegradeProb float64

	// NoiseProb is the chance of one extra random substitution, insertion,
	// or deletion per word. Zero means 0.1; negative disables noise.
	NoiseProb float64
}

// Corruptor turns correct words into plausible misspellings. It is driven
// by a private seeded source, so one Corruptor must not be shared across
// goroutines, but two Corruptors with the same options produce identical
// output.
type Corruptor struct {
	rnd     *rand.Rand
	degrade float64
	noise   float64
}

// NewCorruptor builds a generator with the given options.
func NewCorruptor(opts CorruptOptions) *Corruptor {
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	degrade := opts.DegradeProb
	switch {
	case degrade == 0:
		degrade = 0.5
	case degrade < 0:
		degrade = 0
	}
	noise := opts.NoiseProb
	switch {
	case noise == 0:
		noise = 0.1
	case noise < 0:
		noise = 0
	}
	return &Corruptor{rnd: rand.New(rand.NewSource(seed)), degrade: degrade, noise: noise}
}

// Corrupt returns a misspelled form of word. Degradable letters flip to
// ASCII with probability DegradeProb, then with probability NoiseProb one
// random edit is applied. The result may equal the input.
func (c *Corruptor) Corrupt(word string) string {
	runes := []rune(word)
	out := make([]rune, 0, len(runes)+1)
	for _, r := range runes {
		opts, ok := azDegrade[r]
		if !ok || c.rnd.Float64() >= c.degrade {
			out = append(out, r)
			continue
		}
		out = append(out, []rune(opts[c.rnd.Intn(len(opts))])...)
	}
	if len(out) > 0 && c.rnd.Float64() < c.noise {
		out = c.applyNoise(out)
	}
	return string(out)
}

// applyNoise performs one random substitution, insertion, or deletion.
func (c *Corruptor) applyNoise(runes []rune) []rune {
	switch c.rnd.Intn(3) {
	case 0: // substitution
		i := c.rnd.Intn(len(runes))
		runes[i] = noiseAlphabet[c.rnd.Intn(len(noiseAlphabet))]
	case 1: // insertion
		i := c.rnd.Intn(len(runes) + 1)
		r := noiseAlphabet[c.rnd.Intn(len(noiseAlphabet))]
		runes = append(runes, 0)
		copy(runes[i+1:], runes[i:])
		runes[i] = r
	default: // deletion
		if len(runes) > 1 {
			i := c.rnd.Intn(len(runes))
			runes = append(runes[:i], runes[i+1:]...)
		}
	}
	return runes
}

// Pairs corrupts every word perWord times and returns the observations that
// actually differ from their source, ready for confusion training.
func (c *Corruptor) Pairs(words []string, perWord int) []confusion.Pair {
	if perWord <= 0 {
		perWord = 1
	}
	pairs := make([]confusion.Pair, 0, len(words)*perWord)
	for _, w := range words {
		for i := 0; i < perWord; i++ {
			bad := c.Corrupt(w)
			if bad != w {
				pairs = append(pairs, confusion.Pair{Correct: w, Corrupted: bad})
			}
		}
	}
	return pairs
}
