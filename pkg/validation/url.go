package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin 'Scheme://Host[:Port]' 형식의 CORS Origin 인지 검증합니다.
//
// '*' 는 유효합니다. 경로, 후행 슬래시, 쿼리, 프래그먼트, 사용자 정보를 포함하면 유효하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return nil
	}
	if origin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := parseHTTPURL(origin, "CORS Origin")
	if err != nil {
		return err
	}
	if u.Path != "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로(Path)를 포함할 수 없습니다 (input=%q)", origin)
	}
	return nil
}

// ValidateBaseURL 외부 API 의 기준 URL 인지 검증합니다.
//
// http(s) 스키마와 호스트가 필요하며, 경로는 허용하지만 쿼리, 프래그먼트, 사용자 정보는 허용하지 않습니다.
func ValidateBaseURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("기준 URL은 비어있을 수 없습니다")
	}
	_, err := parseHTTPURL(raw, "기준 URL")
	return err
}

func parseHTTPURL(raw, subject string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s 파싱 실패: 유효한 URL 형식이 아닙니다 (input=%q): %w", subject, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%s 스키마 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", subject, raw)
	}
	if u.RawQuery != "" || u.ForceQuery {
		return nil, fmt.Errorf("%s 포맷 오류: 쿼리 파라미터를 포함할 수 없습니다 (input=%q)", subject, raw)
	}
	if u.Fragment != "" {
		return nil, fmt.Errorf("%s 포맷 오류: URL Fragment(#)를 포함할 수 없습니다 (input=%q)", subject, raw)
	}
	if u.User != nil {
		return nil, fmt.Errorf("%s 포맷 오류: 사용자 자격 증명(UserInfo)을 포함할 수 없습니다 (input=%q)", subject, raw)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%s 포트 오류: 포트 번호가 유효하지 않습니다 (input=%q, port=%s)", subject, raw, p)
		}
		if err := ValidatePort(port); err != nil {
			return nil, fmt.Errorf("%s 포트 오류: %w (input=%q)", subject, err, raw)
		}
	}

	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("%s 포맷 오류: 호스트(Host) 정보가 누락되었습니다 (input=%q)", subject, raw)
	}
	if err := ValidateHostname(host); err != nil {
		return nil, fmt.Errorf("%s 호스트 유효성 검증 실패: %w", subject, err)
	}

	return u, nil
}
