package protocol

import (
	"errors"
	"fmt"

	"directions/game"
)

const (
	WordUp    = "up"
	WordDown  = "down"
	WordLeft  = "left"
	WordRight = "right"
)

var ErrUnknownDirection = errors.New("unknown direction")

// IsDirection reports whether text is exactly one of the four direction
// words. Matching is case-sensitive, so "Up" is not a direction.
func IsDirection(text string) bool {
	return text == WordUp ||
		text == WordDown ||
		text == WordLeft ||
		text == WordRight
}

// ParseDirection converts a direction word into a game.Direction.
func ParseDirection(text string) (game.Direction, error) {
	switch text {
	case WordUp:
		return game.Up{}, nil
	case WordDown:
		return game.Down{}, nil
	case WordLeft:
		return game.Left{}, nil
	case WordRight:
		return game.Right{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDirection, text)
}

// Word returns the lowercase word that ParseDirection accepts for d.
func Word(d game.Direction) string {
	switch d.(type) {
	case game.Up:
		return WordUp
	case game.Down:
		return WordDown
	case game.Left:
		return WordLeft
	case game.Right:
		return WordRight
	}
	panic(fmt.Sprintf("protocol: unhandled direction %T", d))
}

func MovedMessage(direction string) string {
	return "Player moved " + direction
}

func InvalidMessage(text string) string {
	return "Oops! That direction doesn't make sense: " + text
}
