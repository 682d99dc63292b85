// Package novu Novu 알림 공급자의 이벤트 트리거 API 클라이언트를 제공합니다.
package novu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
	"github.com/darkkaiser/notify-trigger/internal/service/contract"
	"github.com/darkkaiser/notify-trigger/internal/service/provider/fetcher"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/darkkaiser/notify-trigger/pkg/strutil"
	"github.com/tidwall/gjson"
)

// component 로깅용 컴포넌트 이름
const component = "provider.novu"

// triggerPath 워크플로우 트리거 API 경로
const triggerPath = "/v1/events/trigger"

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var (
	_ contract.Triggerer     = (*Client)(nil)
	_ contract.HealthChecker = (*Client)(nil)
)

// ErrSecretKeyMissing 시크릿 키가 설정되지 않았을 때 Health 가 반환하는 에러
var ErrSecretKeyMissing = apperrors.New(apperrors.Unavailable, "알림 공급자의 시크릿 키가 설정되지 않았습니다")

// Config 클라이언트 생성에 필요한 설정값
type Config struct {
	BaseURL          string
	SecretKey        string
	Timeout          time.Duration
	MaxResponseBytes int64
	UserAgent        string
}

// Client Novu 이벤트 트리거 API 클라이언트입니다.
//
// 생성 이후 상태가 변하지 않으므로 여러 고루틴에서 하나의 인스턴스를 공유해도 안전합니다.
type Client struct {
	triggerURL string
	secretKey  string

	fetcher fetcher.Fetcher
}

// triggerRequest Novu 트리거 API 요청 본문
type triggerRequest struct {
	Name    string             `json:"name"`
	To      contract.Recipient `json:"to"`
	Payload map[string]any     `json:"payload"`
}

// New 새로운 Client 인스턴스를 생성합니다.
// 시크릿 키가 비어 있어도 생성은 성공하며, 이 경우 경고 로그를 남깁니다.
func New(cfg Config) *Client {
	return newClient(cfg, fetcher.New(fetcher.Config{
		Timeout:          cfg.Timeout,
		MaxResponseBytes: cfg.MaxResponseBytes,
		UserAgent:        cfg.UserAgent,
	}))
}

func newClient(cfg Config, f fetcher.Fetcher) *Client {
	if cfg.SecretKey == "" {
		applog.WithComponent(component).Warn("알림 공급자의 시크릿 키가 비어 있습니다. 모든 트리거 요청이 공급자에서 거부됩니다")
	}

	return &Client{
		triggerURL: strings.TrimRight(cfg.BaseURL, "/") + triggerPath,
		secretKey:  cfg.SecretKey,
		fetcher:    f,
	}
}

// Trigger 워크플로우를 실행하고 공급자의 응답 본문을 그대로 반환합니다. 재시도는 하지 않습니다.
func (c *Client) Trigger(ctx context.Context, event contract.TriggerEvent) (json.RawMessage, error) {
	payload := event.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	body, err := json.Marshal(triggerRequest{
		Name:    event.WorkflowID,
		To:      event.To,
		Payload: payload,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "트리거 요청 본문을 JSON 으로 변환하지 못했습니다")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.triggerURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "트리거 요청을 생성하지 못했습니다")
	}
	req.Header.Set("Authorization", "ApiKey "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.fetcher.Do(req)
	if err != nil {
		return nil, classifyError(ctx, err)
	}
	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, fetcher.ErrResponseBodyTooLarge) {
			return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "알림 공급자의 응답이 너무 큽니다")
		}
		return nil, classifyError(ctx, err)
	}

	if !gjson.ValidBytes(result) {
		return nil, apperrors.Newf(apperrors.ParsingFailed, "알림 공급자의 응답이 올바른 JSON 형식이 아닙니다 (상태 코드: %d)", resp.StatusCode)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"workflow_id":    event.WorkflowID,
		"subscriber_id":  strutil.Mask(event.To.SubscriberID),
		"status_code":    resp.StatusCode,
		"transaction_id": transactionID(result),
	}).Debug("알림 공급자 트리거 호출 성공")

	return json.RawMessage(result), nil
}

// Health 시크릿 키가 비어 있으면 ErrSecretKeyMissing 을 반환합니다.
// 공급자 호출 한도를 소모하지 않도록 네트워크 요청은 보내지 않습니다.
func (c *Client) Health(context.Context) error {
	if c.secretKey == "" {
		return ErrSecretKeyMissing
	}
	return nil
}

// classifyError fetcher 체인이 반환한 에러를 도메인 에러 종류로 분류합니다.
func classifyError(ctx context.Context, err error) error {
	var statusErr *fetcher.HTTPStatusError
	if errors.As(err, &statusErr) {
		return apperrors.Wrapf(err, apperrors.UnderlyingType(err), "알림 공급자가 요청을 거부하였습니다 (상태 코드: %d)", statusErr.StatusCode)
	}

	if errors.Is(err, fetcher.ErrResponseBodyTooLarge) {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "알림 공급자의 응답이 너무 큽니다")
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.Timeout, "알림 공급자 호출 시간이 초과되었습니다")
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.Wrap(err, apperrors.Timeout, "알림 공급자 호출 시간이 초과되었습니다")
	}

	return apperrors.Wrap(err, apperrors.Unavailable, "알림 공급자에 연결할 수 없습니다")
}

// transactionID 응답 본문에서 트랜잭션 ID 를 추출합니다. 없으면 빈 문자열을 반환합니다.
func transactionID(body []byte) string {
	if v := gjson.GetBytes(body, "data.transactionId"); v.Exists() {
		return v.String()
	}
	return gjson.GetBytes(body, "transactionId").String()
}
