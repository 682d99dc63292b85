// Package mocks fetcher 패키지의 테스트용 Mock 구현체를 제공합니다.
package mocks

import (
	"bytes"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/darkkaiser/notify-trigger/internal/service/provider/fetcher"
	"github.com/stretchr/testify/mock"
)

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var (
	_ fetcher.Fetcher = (*MockFetcher)(nil)
	_ io.ReadCloser   = (*MockReadCloser)(nil)
)

// MockFetcher testify/mock 기반의 Fetcher 구현체
type MockFetcher struct {
	mock.Mock
}

// NewMockFetcher 새로운 MockFetcher 인스턴스를 생성합니다.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)

	var resp *http.Response
	if r := args.Get(0); r != nil {
		resp = r.(*http.Response)
	}
	return resp, args.Error(1)
}

// MockReadCloser Close 호출 횟수를 기록하는 io.ReadCloser
type MockReadCloser struct {
	r          io.Reader
	closeCount atomic.Int32
}

// NewMockReadCloser 주어진 문자열을 읽는 MockReadCloser 를 생성합니다.
func NewMockReadCloser(data string) *MockReadCloser {
	return &MockReadCloser{r: bytes.NewBufferString(data)}
}

func (m *MockReadCloser) Read(p []byte) (int, error) {
	return m.r.Read(p)
}

func (m *MockReadCloser) Close() error {
	m.closeCount.Add(1)
	return nil
}

// CloseCount Close 가 호출된 횟수를 반환합니다.
func (m *MockReadCloser) CloseCount() int {
	return int(m.closeCount.Load())
}
