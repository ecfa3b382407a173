package usecase

import "errors"

var (
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")
)
