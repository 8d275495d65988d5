// Package engine exposes one game episode to drivers and agents.
//
// # Core Components
//
// Engine: a mutex-guarded wrapper around a domain game. Every exported
// method holds the lock for its whole duration, so the engine can be shared
// between an agent loop and observers.
//
// Ledger: every accepted action is appended to the episode's hash-chained
// ledger together with a summary of the resulting state.
//
// State: a copy of the observable game state, safe to keep after the lock
// is released.
//
// # Flow
//
//  1. New validates the configuration, starts the game and opens the ledger
//  2. The agent reads Actions, Moves or ActionSpace
//  3. Handle or HandleIndex applies one action; accepted actions are recorded
//  4. IsOver and Result report the outcome
//
// Snapshot and Restore round-trip the whole episode through JSON.
package engine
