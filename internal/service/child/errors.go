package child

import "errors"

var (
	ErrChildNotFound    = errors.New("child not found")
	ErrNameRequired     = errors.New("child name is required")
	ErrInvalidBirthDate = errors.New("invalid date of birth")
)
