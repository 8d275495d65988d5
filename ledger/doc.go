// Package ledger implements an append-only, hash-chained record of the
// actions applied to a game episode.
//
// # Core Components
//
// Ledger: an append-only log of applied actions with SHA-256 hash chaining
// for tamper detection.
//
// Block: a single applied action together with a summary of the game right
// after it, linked to the previous block by hash.
//
// # Properties
//
// The ledger provides:
//   - Verifiability: Verify walks the whole chain and recomputes every hash
//   - Auditability: the complete history of an episode, replayable from its seed
//   - Tamper detection: any modification breaks the hash chain
//
// # Usage
//
// Create a ledger for an episode id, append a block after every action the
// game accepted, and call Verify whenever the record is exported.
package ledger
