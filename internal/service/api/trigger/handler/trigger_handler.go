package handler

import (
	"net/http"
	"time"

	"github.com/darkkaiser/notify-trigger/internal/pkg/metrics"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/domain"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/response"
	"github.com/darkkaiser/notify-trigger/internal/service/api/trigger/model/request"
	"github.com/darkkaiser/notify-trigger/internal/service/contract"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/darkkaiser/notify-trigger/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// TriggerHandler godoc
// @Summary 알림 워크플로우 트리거
// @Description 알림 공급자(Novu)에 정의된 워크플로우를 지정한 수신자에게 실행합니다.
// @Description payload 는 워크플로우 템플릿의 변수 치환에 사용되며, 생략하면 빈 객체로 전달됩니다.
// @Description
// @Description 설정 파일(notify-trigger.json)의 trigger_api.applications 에 애플리케이션이 등록되어 있으면
// @Description X-Application-Id, X-App-Key 헤더로 인증해야 합니다.
// @Description
// @Description ## 사용 예시 (로컬 환경)
// @Description ```bash
// @Description curl -X POST "http://localhost:3000/trigger" \
// @Description   -H "Content-Type: application/json" \
// @Description   -d '{"workflowId":"welcome","subscriberId":"user-42","payload":{"name":"홍길동"}}'
// @Description ```
// @Tags Trigger
// @Accept json
// @Produce json
// @Param X-Application-Id header string false "Application ID (인증 사용 시)"
// @Param X-App-Key header string false "Application Key (인증 사용 시)"
// @Param request body request.TriggerRequest true "트리거 요청"
// @Success 200 {object} response.TriggerResponse "성공 (data: 알림 공급자 응답 원본)"
// @Failure 400 {object} response.ErrorResponse "workflowId 또는 subscriberId 누락 (본문을 요청 모델로 해석할 수 없는 경우도 포함: 잘못된 JSON, 문자열이 아닌 식별자, 객체가 아닌 payload)"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 500 {object} response.ErrorResponse "알림 공급자 호출 실패"
// @Router /trigger [post]
func (h *Handler) TriggerHandler(c echo.Context) error {
	// 1. 요청 바인딩 (JSON 으로 해석할 수 없는 본문은 필수 필드 누락과 동일하게 처리)
	req := new(request.TriggerRequest)
	if err := c.Bind(req); err != nil {
		return h.rejectInvalid(c, req, err)
	}

	// 2. 입력 검증 (필수 필드의 존재 여부만 확인)
	if err := validateRequest(req); err != nil {
		return h.rejectInvalid(c, req, err)
	}

	// 3. 알림 공급자 호출
	event := contract.NewTriggerEvent(req.WorkflowID, req.SubscriberID, req.Payload)

	start := time.Now()
	result, err := h.triggerer.Trigger(c.Request().Context(), event)
	h.metrics.ObserveProviderDuration(time.Since(start))

	if err != nil {
		h.metrics.ObserveTrigger(metrics.OutcomeFailed)

		h.log(c, req).WithField("error", err).Error(constants.LogMsgTriggerFailed)

		return ErrTriggerFailed
	}

	h.metrics.ObserveTrigger(metrics.OutcomeSuccess)

	h.log(c, req).Info(constants.LogMsgTriggerSucceeded)

	return c.JSON(http.StatusOK, response.TriggerResponse{
		Success: true,
		Data:    result,
	})
}

func (h *Handler) rejectInvalid(c echo.Context, req *request.TriggerRequest, cause error) error {
	h.metrics.ObserveTrigger(metrics.OutcomeInvalid)

	h.log(c, req).WithField("reason", cause.Error()).Debug(constants.LogMsgTriggerInvalidRequest)

	return ErrTriggerFieldsRequired
}

// log 요청 식별 정보가 포함된 로그 Entry 를 반환합니다. 수신자 ID 는 마스킹됩니다.
func (h *Handler) log(c echo.Context, req *request.TriggerRequest) *applog.Entry {
	fields := applog.Fields{
		"workflow_id":   req.WorkflowID,
		"subscriber_id": strutil.Mask(req.SubscriberID),
		"remote_ip":     c.RealIP(),
		"request_id":    c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if app, ok := c.Get(constants.ContextKeyApplication).(*domain.Application); ok {
		fields["application_id"] = app.ID
	}

	return applog.WithComponentAndFields(constants.ComponentTriggerHandler, fields)
}
