package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureStack_StartsAtCaller(t *testing.T) {
	t.Parallel()

	err := New(Internal, "stack")

	var appErr *AppError
	require.True(t, As(err, &appErr))

	frames := appErr.Stack()
	require.NotEmpty(t, frames)
	assert.LessOrEqual(t, len(frames), maxStackFrames)
	assert.Equal(t, "stack_test.go", frames[0].File)
	assert.True(t, strings.HasSuffix(frames[0].Function, "TestCaptureStack_StartsAtCaller"))
	assert.Positive(t, frames[0].Line)
}
