package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 로그를 여러 Writer 로 분배합니다.
//
//   - console : 모든 레벨
//   - critical: ERROR, FATAL, PANIC
//   - verbose : DEBUG, TRACE (verbose 가 설정되면 main 에는 기록하지 않음)
//   - main    : INFO 이상, verbose 가 없으면 모든 레벨
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG] %s 로그 파일 쓰기 실패: %v\n", name, err)
		}
	}

	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "critical")
	}

	if entry.Level >= DebugLevel && h.verboseWriter != nil {
		write(h.verboseWriter, "verbose")
		return firstErr
	}

	write(h.mainWriter, "main")

	return firstErr
}

// Close 이후의 로그 기록을 중단합니다. 진행 중인 Fire 가 끝날 때까지 기다립니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	return nil
}
