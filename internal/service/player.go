package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

// BoardPlayer picks a tic-tac-toe square among the current empty positions.
type BoardPlayer interface {
	Marker() entity.Marker
	ChooseSquare(ctx context.Context, choices []int) (int, error)
}

// Thrower picks a rock-paper-scissors move.
type Thrower interface {
	ChooseThrow(ctx context.Context) (entity.Move, error)
}

type prompter interface {
	Ask(ctx context.Context, question string) (string, error)
	Say(msg string)
}

// HumanPlayer reads decisions from the console and asks again until the answer is valid.
type HumanPlayer struct {
	marker   entity.Marker
	prompter prompter
}

func NewHumanPlayer(marker entity.Marker, prompter prompter) *HumanPlayer {
	return &HumanPlayer{
		marker:   marker,
		prompter: prompter,
	}
}

func (that *HumanPlayer) Marker() entity.Marker {
	return that.marker
}

func (that *HumanPlayer) ChooseSquare(ctx context.Context, choices []int) (int, error) {
	if len(choices) == 0 {
		return 0, ErrNoAvailableMoves
	}

	question := fmt.Sprintf("Please enter an empty square. (%s)", joinPositions(choices))

	return ask(ctx, that.prompter, question, "Sorry, that's not an empty square.", func(token string) (int, error) {
		return parseSquare(token, choices)
	})
}

func (that *HumanPlayer) ChooseAction(ctx context.Context) (entity.Action, error) {
	return ask(ctx, that.prompter, "Hit or stay?", invalidChoice, entity.ParseAction)
}

func (that *HumanPlayer) ChooseThrow(ctx context.Context) (entity.Move, error) {
	return ask(ctx, that.prompter, "Please choose rock, paper, or scissors:", invalidChoice, entity.ParseMove)
}

func (that *HumanPlayer) PlayAgain(ctx context.Context) (bool, error) {
	return ask(ctx, that.prompter, "Play again (y/n)?", invalidChoice, parseAnswer)
}

const invalidChoice = "Sorry, that's not a valid choice."

// ask repeats the question until parse accepts the answer. Only ErrInvalidInput is retried.
func ask[T any](ctx context.Context, prompter prompter, question, retry string, parse func(string) (T, error)) (T, error) {
	for {
		var zero T

		token, err := prompter.Ask(ctx, question)
		if err != nil {
			return zero, fmt.Errorf("failed to read answer: %w", err)
		}

		value, err := parse(token)
		if errors.Is(err, apperror.ErrInvalidInput) {
			prompter.Say(retry)
			continue
		}

		if err != nil {
			return zero, err
		}

		return value, nil
	}
}

func parseSquare(token string, choices []int) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || !slices.Contains(choices, position) {
		return 0, fmt.Errorf("%w: %q is not an empty square", apperror.ErrInvalidInput, token)
	}

	return position, nil
}

func parseAnswer(token string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not y or n", apperror.ErrInvalidInput, token)
	}
}

func joinPositions(positions []int) string {
	names := make([]string, 0, len(positions))
	for _, position := range positions {
		names = append(names, strconv.Itoa(position))
	}

	return strings.Join(names, ", ")
}
