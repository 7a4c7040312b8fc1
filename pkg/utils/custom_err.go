package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrSessionNotFound      = errors.New("session not found")
	ErrStepNotFound         = errors.New("step not found")
	ErrQuizNotCompleted     = errors.New("quiz not completed yet")
	ErrQuizAlreadyCompleted = errors.New("quiz already completed")
)
