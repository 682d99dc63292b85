// Package handler 알림 트리거 API의 HTTP 요청 핸들러를 제공합니다.
package handler

import (
	"github.com/darkkaiser/notify-trigger/internal/pkg/metrics"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/contract"
)

// Handler 알림 트리거 요청을 검증하고 알림 공급자에게 전달하는 핸들러입니다.
//
// 요청 간에 공유하는 상태는 생성 시 주입받은 알림 공급자 클라이언트와 지표 수집기뿐이며,
// 둘 다 동시 호출에 안전합니다.
type Handler struct {
	triggerer contract.Triggerer

	metrics *metrics.Metrics
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(triggerer contract.Triggerer, m *metrics.Metrics) *Handler {
	if triggerer == nil {
		panic(constants.PanicMsgTriggererRequired)
	}
	if m == nil {
		panic(constants.PanicMsgMetricsRequired)
	}

	return &Handler{
		triggerer: triggerer,

		metrics: m,
	}
}
