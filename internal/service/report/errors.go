package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrChildNotFound      = errors.New("child not found")
	ErrNotCompleted       = errors.New("assessment must be completed before generating a report")
	ErrNotArchived        = errors.New("report has no archived copy")
	ErrShareDisabled      = errors.New("report sharing is not configured")
	ErrRecipientRequired  = errors.New("recipient email is required")
)
