package handler

import (
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/httputil"
)

var (
	// ErrTriggerFieldsRequired workflowId 또는 subscriberId 가 없거나, 본문을 JSON 으로 해석할 수 없을 때 반환하는 400 에러입니다.
	ErrTriggerFieldsRequired = httputil.NewBadRequestError(constants.ErrMsgTriggerFieldsRequired)

	// ErrTriggerFailed 알림 공급자 호출이 실패했을 때 반환하는 500 에러입니다. 실패 원인은 응답에 포함하지 않습니다.
	ErrTriggerFailed = httputil.NewInternalServerError(constants.ErrMsgTriggerFailed)
)
