package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// ErrMsgTriggerFieldsRequired 필수 필드(workflowId, subscriberId) 누락
	ErrMsgTriggerFieldsRequired = "workflowId and subscriberId are required"

	// ErrMsgTriggerFailed 알림 공급자 호출 실패 (원인은 응답에 포함하지 않음)
	ErrMsgTriggerFailed = "Failed to trigger notification"

	// 400 Bad Request
	ErrMsgBadRequest = "잘못된 요청입니다"

	// 401 Unauthorized
	ErrMsgUnauthorizedInvalidAppKey         = "app_key가 유효하지 않습니다 (application_id: %s)"
	ErrMsgUnauthorizedNotFoundApplicationID = "등록되지 않은 application_id입니다 (ID: %s)"
	ErrMsgAuthAppKeyRequired                = "app_key는 필수입니다 (X-App-Key 헤더 또는 app_key 쿼리 파라미터)"
	ErrMsgAuthApplicationIDRequired         = "application_id는 필수입니다 (X-Application-Id 헤더)"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 405 Method Not Allowed
	ErrMsgMethodNotAllowed = "허용되지 않은 메서드입니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 415 Unsupported Media Type
	ErrMsgUnsupportedMediaType = "지원하지 않는 미디어 타입입니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요"
)
