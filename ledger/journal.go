package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/suplock/domain/suplock"
)

var (
	ErrEmptyJournal    = errors.New("journal is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidBlock    = errors.New("invalid block")
)

type Journal struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewJournal creates a journal holding only the genesis block. The genesis
// block has index 0 and previous hash "0".
func NewJournal() *Journal {
	j := &Journal{
		blocks: make([]Block, 0),
		now:    time.Now,
	}
	genesis := Block{
		Index:     0,
		Timestamp: j.now().Unix(),
		PrevHash:  "0",
		Action:    suplock.Action{Type: GenesisAction},
	}
	genesis.Hash = calculateHash(genesis)
	j.blocks = append(j.blocks, genesis)
	return j
}

// Append links a new block for action to the end of the chain and returns it.
func (j *Journal) Append(matchID string, action suplock.Action, meta Metadata) (Block, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	latest := j.blocks[len(j.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: j.now().Unix(),
		PrevHash:  latest.Hash,
		MatchID:   matchID,
		Action:    action,
		Metadata:  meta,
	}
	b.Hash = calculateHash(b)

	if err := validateBlock(b, latest); err != nil {
		return Block{}, fmt.Errorf("append %s: %w", action.Type, err)
	}
	j.blocks = append(j.blocks, b)
	return b, nil
}

// Latest returns the most recently appended block.
func (j *Journal) Latest() (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return Block{}, ErrEmptyJournal
	}
	return j.blocks[len(j.blocks)-1], nil
}

// GetByIndex returns the block at index.
func (j *Journal) GetByIndex(index int) (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.blocks) {
		return Block{}, fmt.Errorf("block %d: %w", index, ErrIndexOutOfRange)
	}
	return j.blocks[index], nil
}

// Blocks returns a copy of the chain, genesis first.
func (j *Journal) Blocks() []Block {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Block, len(j.blocks))
	copy(out, j.blocks)
	return out
}

// Match returns the blocks recorded for matchID, oldest first.
func (j *Journal) Match(matchID string) []Block {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := []Block{}
	for _, b := range j.blocks {
		if b.MatchID == matchID {
			out = append(out, b)
		}
	}
	return out
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.blocks)
}

// Verify checks the genesis block and then index continuity, hash linkage and
// hash validity of every following block.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return ErrEmptyJournal
	}
	genesis := j.blocks[0]
	if genesis.PrevHash != "0" || genesis.Index != 0 || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("genesis: %w", ErrInvalidBlock)
	}
	for i := 1; i < len(j.blocks); i++ {
		if err := validateBlock(j.blocks[i], j.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// validateBlock checks current against the block before it.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", ErrInvalidBlock, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: expected prev hash %s, got %s", ErrInvalidBlock, previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("%w: expected hash %s, got %s", ErrInvalidBlock, expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 of every block field except Hash. Action
// and metadata are JSON encoded first.
func calculateHash(b Block) string {
	actionBytes, _ := json.Marshal(b.Action)
	metaBytes, _ := json.Marshal(b.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		b.Index,
		b.Timestamp,
		b.PrevHash,
		b.MatchID,
		string(actionBytes),
		string(metaBytes),
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
