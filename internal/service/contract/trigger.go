// Package contract 서비스 계층 사이에서 공유하는 인터페이스와 값 타입을 정의합니다.
package contract

import (
	"context"
	"encoding/json"
)

// Recipient 알림을 받을 대상
type Recipient struct {
	// SubscriberID 알림 공급자에 등록된 수신자 식별자
	SubscriberID string `json:"subscriberId"`
}

// TriggerEvent 알림 공급자에게 전달할 워크플로우 실행 요청
type TriggerEvent struct {
	// WorkflowID 알림 공급자에 정의된 워크플로우(템플릿) 식별자
	WorkflowID string

	// To 수신자
	To Recipient

	// Payload 워크플로우 템플릿의 변수 치환에 사용되는 임의의 데이터
	// nil 이 아닌 빈 맵이어야 공급자에게 "payload": {} 로 전달됩니다.
	Payload map[string]any
}

// NewTriggerEvent 워크플로우 ID, 수신자 ID, 페이로드로 TriggerEvent 를 생성합니다.
// payload 가 nil 이면 빈 맵으로 대체합니다.
func NewTriggerEvent(workflowID, subscriberID string, payload map[string]any) TriggerEvent {
	if payload == nil {
		payload = map[string]any{}
	}
	return TriggerEvent{
		WorkflowID: workflowID,
		To:         Recipient{SubscriberID: subscriberID},
		Payload:    payload,
	}
}

// Triggerer 외부 알림 공급자의 워크플로우 트리거 기능을 추상화한 인터페이스입니다.
//
// 구현체는 여러 고루틴에서 동시에 호출될 수 있어야 하며, 재시도를 수행하지 않습니다.
type Triggerer interface {
	// Trigger 워크플로우를 실행하고 공급자의 응답 본문을 가공하지 않고 그대로 반환합니다.
	Trigger(ctx context.Context, event TriggerEvent) (json.RawMessage, error)
}

// HealthChecker 외부 의존성의 상태를 확인하는 인터페이스입니다.
type HealthChecker interface {
	// Health 정상이면 nil, 사용할 수 없는 상태이면 원인 에러를 반환합니다.
	Health(ctx context.Context) error
}
