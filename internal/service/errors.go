package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrWrongCredentials hides whether the uid or the password was wrong.
	ErrWrongCredentials = errors.New("wrong user id or password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
