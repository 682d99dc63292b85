package response

import "encoding/json"

// TriggerResponse 트리거 성공 응답의 본문
type TriggerResponse struct {
	// Success 항상 true
	Success bool `json:"success" example:"true"`

	// Data 알림 공급자의 응답 본문 (가공하지 않음)
	Data json.RawMessage `json:"data" swaggertype:"object"`
}
