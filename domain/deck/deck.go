// Package deck builds shuffled player decks out of catalog definitions.
package deck

import (
	"github.com/luca-patrignani/suplock/domain/catalog"
)

// Build returns copies of defs repeated copies times, shuffled with rng.
// Every returned card is a distinct instance.
func Build(defs []catalog.Card, copies int, rng RNG) []catalog.Card {
	if copies < 1 || len(defs) == 0 {
		return []catalog.Card{}
	}
	ordered := make([]catalog.Card, 0, len(defs)*copies)
	for range copies {
		ordered = append(ordered, defs...)
	}

	perm := permutation(len(ordered), rng)
	out := make([]catalog.Card, len(ordered))
	for i, p := range perm {
		out[i] = ordered[p].Instantiate()
	}
	return out
}

// Deal splits the first n cards off d. It returns the dealt cards and the rest
// of the deck as independent slices. If d has fewer than n cards all of them
// are dealt.
func Deal(d []catalog.Card, n int) (hand, rest []catalog.Card) {
	if n > len(d) {
		n = len(d)
	}
	if n < 0 {
		n = 0
	}
	hand = append([]catalog.Card{}, d[:n]...)
	rest = append([]catalog.Card{}, d[n:]...)
	return hand, rest
}
