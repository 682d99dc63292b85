package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// =============================================================================
// 생성
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{"성공: InvalidInput", InvalidInput, "invalid input"},
		{"성공: Unavailable", Unavailable, "provider down"},
		{"성공: 빈 메시지", NotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.Contains(t, err.Error(), "["+tt.errType.String()+"]")
			assert.True(t, Is(err, tt.errType))
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(ExecutionFailed, "status: %d", 401)

	assert.Equal(t, "[ExecutionFailed] status: 401", err.Error())
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{Unauthorized, "Unauthorized"},
		{Forbidden, "Forbidden"},
		{InvalidInput, "InvalidInput"},
		{Conflict, "Conflict"},
		{NotFound, "NotFound"},
		{ExecutionFailed, "ExecutionFailed"},
		{ParsingFailed, "ParsingFailed"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(99), "ErrorType(99)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.errType.String())
	}
}

// =============================================================================
// 래핑
// =============================================================================

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("성공: 표준 에러 래핑", func(t *testing.T) {
		wrapped := Wrap(errStd, Internal, "wrapped message")

		require.Error(t, wrapped)
		assert.Equal(t, "[Internal] wrapped message: standard error", wrapped.Error())
		assert.ErrorIs(t, wrapped, errStd)
	})

	t.Run("성공: nil 은 nil 로 반환", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Internal, "ignored"))
		assert.Nil(t, Wrapf(nil, Internal, "ignored %d", 1))
	})

	t.Run("성공: 중첩 래핑의 모든 종류 확인", func(t *testing.T) {
		err := Wrap(Wrap(New(NotFound, "not found"), Internal, "internal"), System, "system")

		assert.True(t, Is(err, System))
		assert.True(t, Is(err, Internal))
		assert.True(t, Is(err, NotFound))
		assert.False(t, Is(err, Timeout))
	})
}

func TestRootCauseAndUnderlyingType(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, Unavailable, "transport"), ExecutionFailed, "trigger")

	assert.Equal(t, errStd, RootCause(err))
	assert.Equal(t, Unavailable, UnderlyingType(err))
	assert.Equal(t, Unknown, UnderlyingType(errStd))
	assert.Nil(t, RootCause(nil))
}

func TestAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", New(Timeout, "deadline"))

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, Timeout, appErr.Type())
	assert.Equal(t, "deadline", appErr.Message())
	assert.NotEmpty(t, appErr.Stack())
}

// =============================================================================
// 포맷팅
// =============================================================================

func TestFormat(t *testing.T) {
	t.Parallel()

	err := Wrap(errStd, Unavailable, "provider")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[Unavailable] provider")
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "errors_test.go")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "standard error")
}

func TestFormat_NestedAppErrorPrintsSingleStack(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "inner"), Internal, "outer")

	detailed := fmt.Sprintf("%+v", err)
	assert.Equal(t, 1, strings.Count(detailed, "Stack trace:"))
}
