package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/balatro/domain/game"
)

const genesisAction game.ActionType = "genesis"

// PlanetPurchase marks blocks recording a planet bought in the shop. Planets
// are not part of the action space, so the planet travels in the metadata
// under the "planet" key.
const PlanetPurchase game.ActionType = "buy_planet"

type Ledger struct {
	mu        sync.RWMutex
	episodeID string
	blocks    []Block
}

// New creates a ledger for one episode with an initialized genesis block.
// The genesis block has index 0 and previous hash "0".
func New(episodeID string) *Ledger {
	l := &Ledger{
		episodeID: episodeID,
		blocks:    make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Action:    game.Action{Type: genesisAction},
		Metadata:  Metadata{EpisodeID: episodeID},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)

	return l
}

func (l *Ledger) EpisodeID() string {
	return l.episodeID
}

// Append links a new block for action to the chain. The extra parameter can
// optionally carry additional metadata.
func (l *Ledger) Append(action game.Action, summary Summary, extra ...map[string]string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := l.blocks[len(l.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Action:    action,
		Summary:   summary,
		Metadata: Metadata{
			EpisodeID: l.episodeID,
			Extra:     extraMsg,
		},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	l.blocks = append(l.blocks, newBlock)
	return nil
}

// GetLatest returns the most recently added block.
func (l *Ledger) GetLatest() (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return Block{}, fmt.Errorf("ledger is empty")
	}
	return l.blocks[len(l.blocks)-1], nil
}

func (l *Ledger) GetByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index out of range")
	}
	return l.blocks[index], nil
}

// Len counts the blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Actions returns the recorded actions in order, without the genesis block.
func (l *Ledger) Actions() []game.Action {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]game.Action, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		out = append(out, b.Action)
	}
	return out
}

// Verify checks the genesis block and every link of the chain.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if l.blocks[0].PrevHash != "0" || l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return json.Marshal(l.blocks)
}

// UnmarshalJSON loads a chain. It does not verify it.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blocks = blocks
	if len(blocks) > 0 {
		l.episodeID = blocks[0].Metadata.EpisodeID
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
	if current.Metadata.EpisodeID != previous.Metadata.EpisodeID {
		return fmt.Errorf("episode changed: %s then %s", previous.Metadata.EpisodeID, current.Metadata.EpisodeID)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash is the SHA-256 of index, timestamp, previous hash and the
// JSON encodings of action, summary and metadata.
func calculateHash(block Block) string {
	actionBytes, _ := json.Marshal(block.Action)
	summaryBytes, _ := json.Marshal(block.Summary)
	metadataBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(actionBytes),
		string(summaryBytes),
		string(metadataBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
