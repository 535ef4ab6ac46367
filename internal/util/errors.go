package util

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("resource not found")
	ErrNotOwner        = errors.New("permission denied")
	ErrConflict        = errors.New("conflict")
	ErrUpstream        = errors.New("upstream service error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrEmailRegistered = errors.New("email already registered")

	ErrEmptyAnswers       = errors.New("no answers submitted")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAlreadySubmitted   = errors.New("assessment already submitted")
	ErrSessionNotFound    = errors.New("quiz session not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrDomainNotFound     = errors.New("career domain not found")
)

// taxonomy maps the specific sentinels onto the coarse error classes the
// HTTP layer cares about.
var taxonomy = map[error]error{
	ErrEmptyAnswers:       ErrInvalidInput,
	ErrAssessmentNotFound: ErrNotFound,
	ErrAlreadySubmitted:   ErrConflict,
	ErrSessionNotFound:    ErrNotFound,
	ErrQuestionNotFound:   ErrNotFound,
	ErrDomainNotFound:     ErrNotFound,
	ErrEmailRegistered:    ErrConflict,
}

// Classify resolves err to one of the coarse sentinel classes
// (ErrInvalidInput, ErrNotFound, ErrNotOwner, ErrConflict, ErrUpstream,
// ErrUnauthorized) or nil when the error is unexpected.
func Classify(err error) error {
	for _, class := range []error{ErrInvalidInput, ErrNotFound, ErrNotOwner, ErrConflict, ErrUpstream, ErrUnauthorized} {
		if errors.Is(err, class) {
			return class
		}
	}
	for specific, class := range taxonomy {
		if errors.Is(err, specific) {
			return class
		}
	}
	return nil
}
