package deck

import (
	"crypto/cipher"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// CryptoShuffler runs a Fisher-Yates shuffle whose indexes are drawn from the
// random stream of the Ed25519 suite.
type CryptoShuffler struct {
	stream cipher.Stream
}

func NewCryptoShuffler() CryptoShuffler {
	return CryptoShuffler{stream: suite.RandomStream()}
}

func (s CryptoShuffler) Shuffle(cards []int) error {
	stream := s.stream
	if stream == nil {
		stream = suite.RandomStream()
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := random.Int(big.NewInt(int64(i+1)), stream)
		if !j.IsInt64() {
			return fmt.Errorf("random index out of range")
		}
		cards[i], cards[j.Int64()] = cards[j.Int64()], cards[i]
	}
	return nil
}

// SeededShuffler is a reproducible shuffle. A zero seed falls back to the clock.
type SeededShuffler struct {
	Seed int64
}

func (s SeededShuffler) Shuffle(cards []int) error {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}
