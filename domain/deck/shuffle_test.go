package deck

import (
	"slices"
	"testing"
)

// isPermutation checks that cards holds every number in 1..size exactly once.
func isPermutation(cards []int, size int) bool {
	if len(cards) != size {
		return false
	}
	seen := make([]bool, size+1)
	for _, c := range cards {
		if c < 1 || c > size || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

func sequence(n int) []int {
	cards := make([]int, n)
	for i := range cards {
		cards[i] = i + 1
	}
	return cards
}

func TestCryptoShuffleIsPermutation(t *testing.T) {
	cards := sequence(StandardSize)
	if err := NewCryptoShuffler().Shuffle(cards); err != nil {
		t.Fatal(err)
	}
	if !isPermutation(cards, StandardSize) {
		t.Fatalf("shuffle is not a permutation: %v", cards)
	}
}

func TestCryptoShuffleZeroValue(t *testing.T) {
	cards := sequence(10)
	var s CryptoShuffler
	if err := s.Shuffle(cards); err != nil {
		t.Fatal(err)
	}
	if !isPermutation(cards, 10) {
		t.Fatalf("shuffle is not a permutation: %v", cards)
	}
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a := sequence(StandardSize)
	b := sequence(StandardSize)
	if err := (SeededShuffler{Seed: 42}).Shuffle(a); err != nil {
		t.Fatal(err)
	}
	if err := (SeededShuffler{Seed: 42}).Shuffle(b); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different orders:\n%v\n%v", a, b)
	}
	if !isPermutation(a, StandardSize) {
		t.Fatalf("shuffle is not a permutation: %v", a)
	}
}

func TestSeededShuffleDiffersBySeed(t *testing.T) {
	a := sequence(StandardSize)
	b := sequence(StandardSize)
	(SeededShuffler{Seed: 1}).Shuffle(a)
	(SeededShuffler{Seed: 2}).Shuffle(b)
	if slices.Equal(a, b) {
		t.Fatal("different seeds produced the same order")
	}
}
