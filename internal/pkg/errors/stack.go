package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip runtime.Callers, captureStack, 생성 함수(New/Wrap 등)를 건너뛰어
// 에러를 만든 호출 지점부터 스택을 기록하기 위한 값입니다.
const defaultCallerSkip = 3

// maxStackFrames 에러 하나에 기록하는 최대 스택 프레임 수
const maxStackFrames = 5

// StackFrame 에러 생성 시점의 호출 위치 하나를 나타냅니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	frames := make([]StackFrame, 0, n)
	iter := runtime.CallersFrames(pc[:n])
	for {
		frame, more := iter.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
