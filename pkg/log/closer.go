package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer hook 을 먼저 닫은 뒤 로그 파일들을 닫습니다. 여러 번 호출해도 안전합니다.
type closer struct {
	hook    *hook
	closers []io.Closer

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
