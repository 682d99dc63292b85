// Package errors 애플리케이션 전역에서 사용하는 분류형 에러(AppError)를 제공합니다.
//
// 표준 errors 패키지와 함께 사용할 수 있도록 Unwrap 체인을 유지하며,
// 에러가 생성된 위치의 호출 스택을 함께 기록합니다.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 종류(ErrorType), 메시지, 원인 에러, 호출 스택을 함께 보관하는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 종류를 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 원인 에러를 제외한 이 에러의 메시지를 반환합니다.
func (e *AppError) Message() string {
	return e.message
}

// Stack 에러 생성 시점에 기록된 호출 스택을 반환합니다.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format fmt 패키지의 포맷팅을 지원합니다.
//
// %+v 는 호출 스택과 원인 체인을 여러 줄로 출력합니다. 원인 체인에 AppError 가 더 있으면
// 가장 안쪽 에러의 스택만 출력하여 중복을 피합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			var inner *AppError
			if (e.cause == nil || !errors.As(e.cause, &inner)) && len(e.stack) > 0 {
				fmt.Fprint(s, "\nStack trace:")
				for _, frame := range e.stack {
					fn := frame.Function
					if idx := strings.LastIndex(fn, "/"); idx != -1 {
						fn = fn[idx+1:]
					}
					fmt.Fprintf(s, "\n\t%s:%d %s", frame.File, frame.Line, fn)
				}
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if f, ok := e.cause.(fmt.Formatter); ok {
					f.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New 지정된 종류와 메시지로 새 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{
		errType: errType,
		message: message,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Newf 포맷 문자열로 메시지를 만들어 새 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrap 기존 에러를 원인으로 하는 새 에러를 생성합니다. err 가 nil 이면 nil 을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: message,
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrapf Wrap 의 포맷 문자열 버전입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Is 에러 체인 어딘가에 지정된 종류의 AppError 가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As 표준 errors.As 의 별칭입니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError 의 종류를 반환합니다.
// AppError 가 없으면 Unknown 을 반환합니다.
func UnderlyingType(err error) ErrorType {
	result := Unknown
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			result = appErr.errType
		}
		err = errors.Unwrap(err)
	}
	return result
}
