package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

const genesisPrevHash = "0"

type Journal struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewJournal creates a journal holding only its genesis block.
func NewJournal() *Journal {
	j := &Journal{
		blocks: make([]Block, 0),
		now:    time.Now,
	}
	genesis := Block{
		Index:     0,
		Timestamp: j.now().Unix(),
		PrevHash:  genesisPrevHash,
		Event:     blackjack.Event{Kind: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	j.blocks = append(j.blocks, genesis)
	return j
}

// Record appends e to the journal.
func (j *Journal) Record(e blackjack.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	latest := j.blocks[len(j.blocks)-1]
	block := Block{
		Index:     latest.Index + 1,
		Timestamp: j.now().Unix(),
		PrevHash:  latest.Hash,
		Event:     e,
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	j.blocks = append(j.blocks, block)
	return nil
}

// Latest returns the most recently added block.
func (j *Journal) Latest() Block {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.blocks[len(j.blocks)-1]
}

// ByIndex retrieves a block by its index in the chain.
func (j *Journal) ByIndex(index int) (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return j.blocks[index], nil
}

// Len is the number of blocks, genesis included.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.blocks)
}

// Events returns the recorded events in order, without the genesis block.
func (j *Journal) Events() []blackjack.Event {
	j.mu.RLock()
	defer j.mu.RUnlock()

	events := make([]blackjack.Event, 0, len(j.blocks)-1)
	for _, b := range j.blocks[1:] {
		events = append(events, b.Event)
	}
	return events
}

// Verify validates the whole chain: the genesis block, then the index continuity,
// the previous hash and the hash of every block.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return fmt.Errorf("empty journal")
	}
	if j.blocks[0].PrevHash != genesisPrevHash || j.blocks[0].Hash != calculateHash(j.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(j.blocks); i++ {
		if err := validateBlock(j.blocks[i], j.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 of the block index, timestamp, previous hash
// and JSON encoded event.
func calculateHash(block Block) string {
	eventBytes, _ := json.Marshal(block.Event)
	data := fmt.Sprintf("%d%d%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(eventBytes),
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

var _ blackjack.Recorder = (*Journal)(nil)
