// Package metrics 트리거 요청과 HTTP 요청의 Prometheus 지표를 수집합니다.
//
// 전역 레지스트리 대신 전용 레지스트리를 사용하므로 테스트마다 독립된 인스턴스를 만들 수 있습니다.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "notify_trigger"

// Outcome 트리거 요청의 처리 결과
type Outcome string

const (
	// OutcomeSuccess 공급자 호출 성공
	OutcomeSuccess Outcome = "success"

	// OutcomeInvalid 필수 필드 누락으로 거부됨 (공급자 미호출)
	OutcomeInvalid Outcome = "invalid"

	// OutcomeFailed 공급자 호출 실패
	OutcomeFailed Outcome = "failed"
)

// Metrics 애플리케이션 지표 모음
type Metrics struct {
	registry *prometheus.Registry

	triggerRequests  *prometheus.CounterVec
	providerDuration prometheus.Histogram
	httpRequests     *prometheus.CounterVec
}

// New 전용 레지스트리에 지표를 등록한 Metrics 인스턴스를 생성합니다.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		triggerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total trigger requests by outcome",
		}, []string{"outcome"}),

		providerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_duration_seconds",
			Help:      "Time spent waiting for the notification provider",
			Buckets:   prometheus.DefBuckets,
		}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status",
		}, []string{"method", "path", "status"}),
	}

	m.registry.MustRegister(
		m.triggerRequests,
		m.providerDuration,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 결과별 시계열이 0 부터 노출되도록 미리 생성합니다.
	for _, o := range []Outcome{OutcomeSuccess, OutcomeInvalid, OutcomeFailed} {
		m.triggerRequests.WithLabelValues(string(o))
	}

	return m
}

// ObserveTrigger 트리거 요청의 처리 결과를 기록합니다.
func (m *Metrics) ObserveTrigger(outcome Outcome) {
	m.triggerRequests.WithLabelValues(string(outcome)).Inc()
}

// ObserveProviderDuration 공급자 호출에 걸린 시간을 기록합니다.
func (m *Metrics) ObserveProviderDuration(d time.Duration) {
	m.providerDuration.Observe(d.Seconds())
}

// ObserveHTTPRequest HTTP 요청 하나를 기록합니다. path 는 라우트 패턴이어야 합니다.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Registry 지표가 등록된 레지스트리를 반환합니다.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler Prometheus 텍스트 형식으로 지표를 노출하는 http.Handler 를 반환합니다.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
