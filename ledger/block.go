package ledger

import "github.com/luca-patrignani/balatro/domain/game"

// Block records one applied action.
type Block struct {
	Index     int         `json:"index"`
	Timestamp int64       `json:"timestamp"`
	PrevHash  string      `json:"prev_hash"`
	Hash      string      `json:"hash"`
	Action    game.Action `json:"action"`
	Summary   Summary     `json:"summary"`
	Metadata  Metadata    `json:"metadata"`
}

// Summary is the observable game state right after the action.
type Summary struct {
	Stage string `json:"stage"`
	Ante  int    `json:"ante"`
	Round int    `json:"round"`
	Score int    `json:"score"`
	Money int    `json:"money"`
	Plays int    `json:"plays"`
}

type Metadata struct {
	EpisodeID string            `json:"episode_id"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Summarize captures the summary of g.
func Summarize(g *game.Game) Summary {
	return Summary{
		Stage: g.Stage.String(),
		Ante:  int(g.Ante),
		Round: g.Round,
		Score: g.Score,
		Money: g.Money,
		Plays: g.Plays,
	}
}
