package fetcher

import (
	"io"
	"sync"
)

// maxDrainBytes 커넥션 재사용을 위해 응답 객체의 Body를 비울 때 읽을 최대 바이트 수 (64KB)
const maxDrainBytes = 64 * 1024

// drainBufPool drainAndCloseBody에서 사용할 바이트 버퍼 풀
var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

// drainAndCloseBody 커넥션 재사용을 위해 응답 객체의 Body를 최대 maxDrainBytes 만큼 읽어서 버린 후 닫습니다.
// 그보다 큰 응답을 가진 커넥션은 재사용되지 않습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	bufPtr := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(bufPtr)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *bufPtr)
}
