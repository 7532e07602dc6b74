package assessment

import "errors"

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrChildNotFound      = errors.New("child not found")
	ErrAbilityNotFound    = errors.New("CHC ability not found")
	ErrSessionBusy        = errors.New("another save of this session is in flight")
	ErrSessionMismatch    = errors.New("session key is bound to another child's assessment")
	ErrInvalidStatus      = errors.New("invalid assessment status")
)
