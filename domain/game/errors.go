package game

import "errors"

var (
	ErrInvalidStage         = errors.New("action not valid for current stage")
	ErrInvalidAction        = errors.New("action not valid")
	ErrNoRemainingPlays     = errors.New("no remaining plays")
	ErrNoRemainingDiscards  = errors.New("no remaining discards")
	ErrInvalidBlind         = errors.New("invalid blind")
	ErrInvalidMoveDirection = errors.New("invalid move direction")
	ErrNoCardMatch          = errors.New("no card match")
	ErrInvalidHand          = errors.New("invalid hand played")
	ErrInvalidIndex         = errors.New("index out of range")
	ErrSelectionFull        = errors.New("selection is full")
	ErrJokerSlotsFull       = errors.New("no free joker slot")
	ErrInsufficientMoney    = errors.New("insufficient money")
	ErrNoShopMatch          = errors.New("item not in shop")
)
