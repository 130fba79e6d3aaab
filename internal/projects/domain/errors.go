package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNoteNotFound    = errors.New("note not found")
	ErrInvalidInput    = errors.New("invalid input")
)
