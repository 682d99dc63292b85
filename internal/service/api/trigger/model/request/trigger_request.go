// Package request 알림 트리거 API의 요청 모델을 정의합니다.
package request

// TriggerRequest 알림 워크플로우 트리거 요청
//
// 식별자는 알림 공급자의 키이므로 공백을 포함해 받은 그대로 전달합니다.
type TriggerRequest struct {
	// 알림 공급자에 정의된 워크플로우(템플릿) 식별자
	WorkflowID string `json:"workflowId" validate:"required" example:"welcome"`
	// 알림을 받을 수신자(Subscriber) 식별자
	SubscriberID string `json:"subscriberId" validate:"required" example:"user-42"`
	// 워크플로우 템플릿의 변수 치환에 사용되는 임의의 데이터 (생략 시 빈 객체)
	Payload map[string]any `json:"payload,omitempty" swaggertype:"object"`
}
