package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션 설정의 최상위 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Log        LogConfig        `json:"log"`
	Provider   ProviderConfig   `json:"provider"`
	TriggerAPI TriggerAPIConfig `json:"trigger_api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, &c.Log, "로그"); err != nil {
		return err
	}
	if err := checkStruct(v, &c.Provider, "알림 공급자"); err != nil {
		return err
	}
	return c.TriggerAPI.validate(v)
}

// VerifyRecommendations 실행은 가능하지만 운영상 주의가 필요한 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.Provider.SecretKey == "" {
		warnings = append(warnings, fmt.Sprintf("알림 공급자의 비밀 키(provider.secret_key 또는 %s)가 설정되지 않았습니다. 모든 알림 트리거 요청이 실패합니다", ProviderSecretKeyEnv))
	}
	if c.TriggerAPI.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.TriggerAPI.WS.ListenPort))
	}
	if len(c.TriggerAPI.Applications) == 0 {
		warnings = append(warnings, "등록된 애플리케이션(trigger_api.applications)이 없어 알림 트리거 API가 인증 없이 공개됩니다")
	}

	return warnings
}

// LogConfig 로그 파일 저장 위치와 보관 정책
type LogConfig struct {
	Dir    string `json:"dir"`
	MaxAge int    `json:"max_age" validate:"min=0"`
}

// ProviderConfig 외부 알림 공급자(Novu) 연결 설정
type ProviderConfig struct {
	BaseURL string `json:"base_url" validate:"required,base_url"`

	// SecretKey 비어있어도 기동은 가능하지만 공급자 호출은 모두 인증 실패로 끝납니다.
	SecretKey string `json:"secret_key"`

	Timeout          time.Duration `json:"timeout" validate:"gt=0"`
	MaxResponseBytes int64         `json:"max_response_bytes" validate:"gt=0"`
}

// TriggerAPIConfig 알림 트리거 API 서버 설정
type TriggerAPIConfig struct {
	WS             WSConfig            `json:"ws"`
	CORS           CORSConfig          `json:"cors"`
	RateLimit      RateLimitConfig     `json:"rate_limit"`
	RequestTimeout time.Duration       `json:"request_timeout"`
	Applications   []ApplicationConfig `json:"applications"`
}

func (c *TriggerAPIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, &c.WS, "웹 서버"); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, &c.RateLimit, "요청 속도 제한"); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 처리 제한 시간(request_timeout)은 0보다 커야 합니다: '%v'", c.RequestTimeout))
	}

	if len(c.Applications) > 0 {
		if err := checkUniqueField(v, c.Applications, "ID", "Application"); err != nil {
			return err
		}
	}
	for _, app := range c.Applications {
		if strings.TrimSpace(app.ID) == "" {
			return apperrors.New(apperrors.InvalidInput, "애플리케이션 ID(id)는 비어있을 수 없습니다")
		}
		if strings.TrimSpace(app.AppKey) == "" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Application['%s']의 API 키(app_key)가 설정되지 않았습니다", app.ID))
		}
	}

	return nil
}

// WSConfig 웹 서버 포트 및 TLS 설정
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return checkStruct(v, c, "CORS")
}

// RateLimitConfig IP 기반 요청 속도 제한. 기본적으로 비활성화되어 있습니다.
type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerSecond int  `json:"requests_per_second" validate:"required_if=Enabled true,omitempty,min=1"`
	Burst             int  `json:"burst" validate:"required_if=Enabled true,omitempty,min=1"`
}

// ApplicationConfig 알림 트리거 API 호출이 허용된 애플리케이션의 인증 정보
//
// 하나 이상 등록되면 /trigger 호출 시 X-Application-Id, X-App-Key 헤더가 필요합니다.
type ApplicationConfig struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AppKey      string `json:"app_key"`
}
