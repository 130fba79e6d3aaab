package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already exists")
	ErrSignupRejected = errors.New("signup rejected")
)
