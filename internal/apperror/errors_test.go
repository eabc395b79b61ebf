package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		err      *Error
		wantCode int
	}{
		{New(CodeInputRejected, "bad vertex file"), 1},
		{NewWithField(CodeInputRejected, "bad edge file", "edge"), 2},
		{New(CodeInvalidSource, "missing"), 3},
		{New(CodeInvalidSink, "missing"), 4},
		{New(CodeSourceEqualsSink, "degenerate"), 4},
		{New(CodeOutputWriteFailed, "disk full"), 5},
		{New(CodeResourceExhausted, "oom"), 7},
	}

	for _, c := range cases {
		assert.Equal(t, c.wantCode, c.err.ExitCode())
		assert.Equal(t, c.wantCode, ExitCode(c.err))
	}
}

func TestExitCodeDefaultsToOneForUnwrappedError(t *testing.T) {
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
}

func TestIsAndCode(t *testing.T) {
	err := New(CodeInvalidSource, "missing source")
	assert.True(t, Is(err, CodeInvalidSource))
	assert.False(t, Is(err, CodeInvalidSink))
	assert.Equal(t, CodeInvalidSource, Code(err))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk error")
	wrapped := Wrap(cause, CodeOutputWriteFailed, "failed to write")

	assert.Same(t, cause, errors.Unwrap(wrapped))
	assert.Contains(t, wrapped.Error(), "OUTPUT_WRITE_FAILED")
}

func TestWithFieldAndDetails(t *testing.T) {
	err := New(CodeInputRejected, "bad record").WithField("edge").WithDetails("line", 4)

	assert.Equal(t, "edge", err.Field)
	assert.Equal(t, 4, err.Details["line"])
	assert.Contains(t, err.Error(), "field: edge")
}
