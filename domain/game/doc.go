// Package game implements the decision and scoring engine of a single-player,
// round-based poker-hand scoring game.
//
// # Core Types
//
// Game: the aggregate root of one episode. It owns the deck, the available
// and discarded cards, the owned jokers with their effect registry, the
// planetarium of hand levels and every counter (plays, discards, money, score).
//
// Stage: the current phase (PreBlind, Blind, PostBlind, Shop, End).
//
// Action: a tagged union of every player intent, produced by the generators
// and consumed by HandleAction.
//
// ActionSpace: the fixed-width masked vector of legal actions used by
// automated agents.
//
// # Game Flow
//
// PreBlind → Blind(Small|Big|Boss) → PostBlind → Shop → PreBlind. Beating the
// Boss blind of the last ante ends the game in a win; running out of plays
// below the required score ends it in a loss.
//
// # Scoring
//
// A played hand scores (level chips + card chips) × level mult, after every
// owned joker had its turn on the chip and mult accumulators, in acquisition
// order.
package game
