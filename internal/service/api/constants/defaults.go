package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기
	DefaultMaxBodySize = "2M"

	// DefaultReadTimeout 요청 본문 읽기 제한 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더 읽기 제한 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한 시간
	// 요청 타임아웃보다 길어야 Timeout 미들웨어의 503 응답이 전송됩니다.
	DefaultWriteTimeout = 75 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 유휴 제한 시간
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)
