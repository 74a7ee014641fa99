package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInputClosed      = errors.New("input closed")
	ErrGameFinished     = errors.New("game is already finished")
	ErrDeckEmpty        = errors.New("deck is empty")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrResultNotFound   = errors.New("result not found")
)
