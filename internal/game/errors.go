package game

import "errors"

var (
	ErrEmptyHand           = errors.New("hand is empty")
	ErrEmptyKitty          = errors.New("kitty is empty")
	ErrNoBids              = errors.New("no bids to resolve")
	ErrNoPlayers           = errors.New("table has no players")
	ErrNoCardsPerHand      = errors.New("not enough cards to deal one per hand")
	ErrNoGames             = errors.New("tournament needs at least one game")
	ErrUnknownPlayer       = errors.New("unknown player")
	ErrInvalidPick         = errors.New("pick is not a number")
	ErrNoInput             = errors.New("no more console input")
	ErrInteractiveStrategy = errors.New("strategy needs a console")
	ErrCardNotInHand       = errors.New("card not in hand")
)
