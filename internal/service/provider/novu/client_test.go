package novu

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
	"github.com/darkkaiser/notify-trigger/internal/service/contract"
	fetchermocks "github.com/darkkaiser/notify-trigger/internal/service/provider/fetcher/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// capturedRequest 가짜 공급자가 받은 요청
type capturedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          map[string]any
}

func newFakeProvider(t *testing.T, status int, body string) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()

	requests := make(chan capturedRequest, 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		var decoded map[string]any
		_ = json.Unmarshal(data, &decoded)

		requests <- capturedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          decoded,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, requests
}

func TestClient_Trigger(t *testing.T) {
	t.Parallel()

	t.Run("성공: 요청 형식과 응답 본문 전달", func(t *testing.T) {
		t.Parallel()

		const providerBody = `{"data":{"acknowledged":true,"status":"processed","transactionId":"tx-1"}}`
		srv, requests := newFakeProvider(t, http.StatusCreated, providerBody)

		c := New(Config{BaseURL: srv.URL + "/", SecretKey: "sk_test_123", Timeout: 5 * time.Second})
		result, err := c.Trigger(context.Background(), contract.NewTriggerEvent("welcome", "user-42", nil))
		require.NoError(t, err)
		assert.Equal(t, providerBody, string(result), "응답 본문은 가공 없이 그대로 반환되어야 합니다")

		req := <-requests
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/v1/events/trigger", req.Path)
		assert.Equal(t, "ApiKey sk_test_123", req.Authorization)
		assert.Equal(t, "application/json", req.ContentType)
		assert.Equal(t, map[string]any{
			"name":    "welcome",
			"to":      map[string]any{"subscriberId": "user-42"},
			"payload": map[string]any{},
		}, req.Body)
	})

	t.Run("성공: 페이로드 그대로 전달", func(t *testing.T) {
		t.Parallel()

		srv, requests := newFakeProvider(t, http.StatusCreated, `{"id":"abc"}`)

		c := New(Config{BaseURL: srv.URL, SecretKey: "sk"})
		payload := map[string]any{"orderId": "o-1", "amount": 12.5, "items": []any{"a", "b"}}
		_, err := c.Trigger(context.Background(), contract.NewTriggerEvent("order", "user-1", payload))
		require.NoError(t, err)

		req := <-requests
		assert.Equal(t, payload, req.Body["payload"])
	})

	t.Run("실패: 빈 시크릿 키는 공급자가 거부", func(t *testing.T) {
		t.Parallel()

		srv, requests := newFakeProvider(t, http.StatusUnauthorized, `{"statusCode":401,"message":"API Key not found"}`)

		c := New(Config{BaseURL: srv.URL})
		_, err := c.Trigger(context.Background(), contract.NewTriggerEvent("welcome", "user-42", nil))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unauthorized))

		// 서버 측에서는 헤더 값의 뒤쪽 공백이 제거되어 수신됩니다.
		req := <-requests
		assert.True(t, strings.HasPrefix(req.Authorization, "ApiKey"), "빈 시크릿 키로도 요청은 전송되어야 합니다")
	})

	t.Run("실패: 5xx 응답은 Unavailable", func(t *testing.T) {
		t.Parallel()

		srv, _ := newFakeProvider(t, http.StatusBadGateway, `upstream error`)

		_, err := New(Config{BaseURL: srv.URL, SecretKey: "sk"}).Trigger(context.Background(), contract.NewTriggerEvent("w", "s", nil))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})

	t.Run("실패: 2xx 이지만 JSON 이 아닌 응답", func(t *testing.T) {
		t.Parallel()

		srv, _ := newFakeProvider(t, http.StatusOK, `<html>ok</html>`)

		_, err := New(Config{BaseURL: srv.URL, SecretKey: "sk"}).Trigger(context.Background(), contract.NewTriggerEvent("w", "s", nil))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	})

	t.Run("실패: 응답 크기 제한 초과", func(t *testing.T) {
		t.Parallel()

		srv, _ := newFakeProvider(t, http.StatusOK, `{"data":"0123456789012345678901234567890123456789"}`)

		_, err := New(Config{BaseURL: srv.URL, SecretKey: "sk", MaxResponseBytes: 16}).Trigger(context.Background(), contract.NewTriggerEvent("w", "s", nil))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
	})

	t.Run("실패: 연결할 수 없는 공급자", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		baseURL := srv.URL
		srv.Close()

		_, err := New(Config{BaseURL: baseURL, SecretKey: "sk"}).Trigger(context.Background(), contract.NewTriggerEvent("w", "s", nil))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})

	t.Run("실패: 제한 시간 초과", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(srv.Close)
		t.Cleanup(func() { close(release) })

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := New(Config{BaseURL: srv.URL, SecretKey: "sk"}).Trigger(ctx, contract.NewTriggerEvent("w", "s", nil))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Timeout))
	})
}

func TestClient_Trigger_AuthorizationHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		secretKey string
		expected  string
	}{
		{name: "시크릿 키 설정", secretKey: "sk_test_123", expected: "ApiKey sk_test_123"},
		{name: "빈 시크릿 키", secretKey: "", expected: "ApiKey "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sent http.Header
			f := fetchermocks.NewMockFetcher()
			f.On("Do", mock.AnythingOfType("*http.Request")).Run(func(args mock.Arguments) {
				sent = args.Get(0).(*http.Request).Header.Clone()
			}).Return(&http.Response{
				StatusCode: http.StatusCreated,
				Body:       fetchermocks.NewMockReadCloser(`{"id":"abc"}`),
			}, nil)

			c := newClient(Config{BaseURL: "https://api.novu.co", SecretKey: tt.secretKey}, f)
			_, err := c.Trigger(context.Background(), contract.NewTriggerEvent("welcome", "user-42", nil))
			require.NoError(t, err)

			f.AssertNumberOfCalls(t, "Do", 1)
			assert.Equal(t, tt.expected, sent.Get("Authorization"))
			assert.Equal(t, "application/json", sent.Get("Accept"))
		})
	}
}

func TestClient_Trigger_NoRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := New(Config{BaseURL: srv.URL, SecretKey: "sk"}).Trigger(context.Background(), contract.NewTriggerEvent("w", "s", nil))
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "실패하더라도 재시도하지 않아야 합니다")
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, New(Config{BaseURL: "https://api.novu.co"}).Health(context.Background()), ErrSecretKeyMissing)
	assert.NoError(t, New(Config{BaseURL: "https://api.novu.co", SecretKey: "sk"}).Health(context.Background()))
}

func TestTransactionID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "data 하위", body: `{"data":{"transactionId":"tx-1"}}`, expected: "tx-1"},
		{name: "최상위", body: `{"transactionId":"tx-2"}`, expected: "tx-2"},
		{name: "없음", body: `{"id":"abc"}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, transactionID([]byte(tt.body)))
		})
	}
}
