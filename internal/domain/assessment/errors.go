package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScore           = errors.New("invalid score")
	ErrMissingField           = errors.New("required field missing")
	ErrScoreNotFound          = errors.New("score not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrInvalidDomain          = errors.New("invalid domain")
	ErrNotSaved               = errors.New("assessment must be saved before it can be completed")
	ErrInvalidTransition      = errors.New("invalid status transition")
)

// ScoreRangeError rejects a score outside its scale. The message is the
// user-facing Hebrew text naming the offending scale.
type ScoreRangeError struct {
	Scale ScaleType
	Value float64
}

func (e ScoreRangeError) Error() string {
	return fmt.Sprintf("ציון לא תקין עבור סולם %s", e.Scale)
}

func (e ScoreRangeError) Is(target error) bool { return target == ErrInvalidScore }

// FieldError names the missing field of a rejected entry.
type FieldError struct{ Field string }

func (e FieldError) Error() string { return "required field missing: " + e.Field }

func (e FieldError) Is(target error) bool { return target == ErrMissingField }
