package apperror

import "errors"

var (
	ErrUnknownCell  = errors.New("cell does not exist")
	ErrNotPlayable  = errors.New("move is not playable")
	ErrNoHistory    = errors.New("no move to undo")
	ErrGameFinished = errors.New("game is already finished")
)
