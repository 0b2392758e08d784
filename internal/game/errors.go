package game

import "errors"

var (
	ErrGameOver        = errors.New("game is over")
	ErrNoCurrentPlayer = errors.New("no current player")
	ErrNoRollsLeft     = errors.New("no rolls left this turn")
	ErrAllKept         = errors.New("every die is kept")
	ErrInvalidKeep     = errors.New("kept dice are not part of the roll")
	ErrInvalidDice     = errors.New("invalid dice values")
	ErrNoDecider       = errors.New("no decider for player")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrMalformedSave   = errors.New("malformed save")
)
