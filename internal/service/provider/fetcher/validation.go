package fetcher

import (
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
)

// maxBodySnippetBytes HTTPStatusError 에 담을 응답 본문의 최대 크기
const maxBodySnippetBytes = 4096

// checkResponseStatus 2xx 가 아닌 응답이면 HTTPStatusError 를 반환합니다.
// 에러 시 읽은 본문 일부를 에러에 담으며, Body 는 호출자가 닫아야 합니다.
//
// 상태 코드는 다음과 같이 에러 종류로 매핑됩니다.
//
//	5xx, 429, 408 → Unavailable
//	401, 403      → Unauthorized
//	404           → NotFound
//	400, 422      → InvalidInput
//	그 외         → ExecutionFailed
func checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	urlStr := ""
	if resp.Request != nil && resp.Request.URL != nil {
		urlStr = redactURL(resp.Request.URL)
	}

	var bodySnippet string
	if resp.Body != nil {
		bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes))
		if err == nil {
			bodySnippet = string(bodyBytes)
		}
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         urlStr,
		Header:      redactHeaders(resp.Header),
		BodySnippet: bodySnippet,
		Cause:       newErrHTTPStatus(errorTypeForStatus(resp.StatusCode), resp.Status, urlStr),
	}
}

func errorTypeForStatus(statusCode int) apperrors.ErrorType {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.Unauthorized

	case http.StatusNotFound:
		return apperrors.NotFound

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.InvalidInput

	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		return apperrors.Unavailable
	}

	if statusCode >= 500 {
		return apperrors.Unavailable
	}
	return apperrors.ExecutionFailed
}
