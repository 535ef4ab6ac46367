package util

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify_SpecificSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{ErrEmptyAnswers, ErrInvalidInput},
		{ErrAssessmentNotFound, ErrNotFound},
		{ErrSessionNotFound, ErrNotFound},
		{ErrQuestionNotFound, ErrNotFound},
		{ErrDomainNotFound, ErrNotFound},
		{ErrAlreadySubmitted, ErrConflict},
		{ErrEmailRegistered, ErrConflict},
		{ErrNotOwner, ErrNotOwner},
		{ErrUpstream, ErrUpstream},
	}
	for _, c := range cases {
		if got := Classify(c.err); got != c.want {
			t.Fatalf("Classify(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestClassify_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("%w: question index 99 out of range", ErrInvalidInput)
	if got := Classify(err); got != ErrInvalidInput {
		t.Fatalf("wrapped error classified as %v", got)
	}
}

func TestClassify_UnknownErrorIsNil(t *testing.T) {
	if got := Classify(errors.New("disk on fire")); got != nil {
		t.Fatalf("unexpected class %v for unknown error", got)
	}
}
