// Package response API 응답 본문 모델을 정의합니다.
package response

// ErrorResponse 모든 에러 응답의 본문
type ErrorResponse struct {
	// Error 에러 메시지
	Error string `json:"error" example:"workflowId and subscriberId are required"`
}
