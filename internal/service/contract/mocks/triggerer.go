// Package mocks contract 인터페이스의 테스트용 구현체를 제공합니다.
package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/darkkaiser/notify-trigger/internal/service/contract"
)

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var (
	_ contract.Triggerer     = (*MockTriggerer)(nil)
	_ contract.HealthChecker = (*MockTriggerer)(nil)
)

// MockTriggerer 호출을 기록하고 미리 설정된 결과를 반환하는 Triggerer 입니다. 동시 호출에 안전합니다.
type MockTriggerer struct {
	mu sync.Mutex

	// Result 성공 시 반환할 응답 본문
	Result json.RawMessage

	// ShouldFail true 이면 FailError 를 반환합니다.
	ShouldFail bool
	FailError  error

	// HealthError Health 호출 시 반환할 에러
	HealthError error

	calls []contract.TriggerEvent
}

// NewMockTriggerer 주어진 응답 본문을 반환하는 MockTriggerer 를 생성합니다.
func NewMockTriggerer(result string) *MockTriggerer {
	return &MockTriggerer{Result: json.RawMessage(result)}
}

func (m *MockTriggerer) Trigger(_ context.Context, event contract.TriggerEvent) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, event)

	if m.ShouldFail {
		return nil, m.FailError
	}
	return m.Result, nil
}

func (m *MockTriggerer) Health(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.HealthError
}

// Calls 기록된 호출 목록의 복사본을 반환합니다.
func (m *MockTriggerer) Calls() []contract.TriggerEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]contract.TriggerEvent, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount 호출 횟수를 반환합니다.
func (m *MockTriggerer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls)
}
