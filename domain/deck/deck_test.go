package deck

import (
	"errors"
	"testing"
)

func TestDrawWholeDeck(t *testing.T) {
	d, err := New(StandardSize, SeededShuffler{Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	drawn := make([]int, 0, StandardSize)
	for i := 0; i < StandardSize; i++ {
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		drawn = append(drawn, c)
	}
	if !isPermutation(drawn, StandardSize) {
		t.Fatalf("drawn cards are not a permutation: %v", drawn)
	}
	if d.Remaining() != 0 {
		t.Fatalf("expected 0 remaining cards, got %d", d.Remaining())
	}
}

func TestDrawExhausted(t *testing.T) {
	d, err := New(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if _, err := d.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	_, err = d.Draw()
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("a failed draw must not change the deck, remaining %d", d.Remaining())
	}
}

func TestNewWithoutShufflerKeepsOrder(t *testing.T) {
	d, err := New(3, nil)
	if err != nil {
		t.Fatal(err)
	}
	for want := 1; want <= 3; want++ {
		c, err := d.Draw()
		if err != nil {
			t.Fatal(err)
		}
		if c != want {
			t.Fatalf("expected %d, got %d", want, c)
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(0, nil); err == nil {
		t.Fatal("expected error for empty deck")
	}
}

type failingShuffler struct{}

func (failingShuffler) Shuffle([]int) error { return errors.New("no entropy") }

func TestNewShuffleError(t *testing.T) {
	if _, err := New(StandardSize, failingShuffler{}); err == nil {
		t.Fatal("expected shuffle error to propagate")
	}
}
