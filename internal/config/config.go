// Package config 애플리케이션 설정을 로드하고 검증합니다.
//
// 설정값은 다음 순서로 병합되며, 뒤의 것이 앞의 것을 덮어씁니다.
//
//  1. 코드에 정의된 기본값 (newDefaultConfig)
//  2. JSON 설정 파일 (기본: notify-trigger.json)
//  3. .env 파일과 프로세스 환경 변수 (접두사 NOTIFY_, 계층 구분자 "__")
//
// 알림 공급자의 비밀 키는 provider.secret_key 가 비어있을 때 NOVU_SECRET_KEY 환경 변수에서도 읽습니다.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션 식별자 (로그 파일명, 배너 등에 사용)
	AppName = "notify-trigger"

	// DefaultFilename 명시적인 경로가 없을 때 찾는 설정 파일명
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사
	// 예: NOTIFY_TRIGGER_API__WS__LISTEN_PORT -> trigger_api.ws.listen_port
	EnvPrefix = "NOTIFY_"

	// ProviderSecretKeyEnv 알림 공급자(Novu)의 비밀 키를 담는 관례적인 환경 변수명
	ProviderSecretKeyEnv = "NOVU_SECRET_KEY"

	DefaultProviderBaseURL          = "https://api.novu.co"
	DefaultProviderTimeout          = 10 * time.Second
	DefaultProviderMaxResponseBytes = 1 << 20
	DefaultListenPort               = 3000
	DefaultRequestTimeout           = 60 * time.Second
	DefaultRateLimitPerSecond       = 20
	DefaultRateLimitBurst           = 40
	DefaultLogDir                   = "logs"
	DefaultLogMaxAge                = 30
)

// dotEnvFilename 환경 변수로 적재할 .env 파일 경로 (테스트에서 교체)
var dotEnvFilename = ".env"

// newDefaultConfig 모든 항목이 기본값으로 채워진 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Dir:    DefaultLogDir,
			MaxAge: DefaultLogMaxAge,
		},
		Provider: ProviderConfig{
			BaseURL:          DefaultProviderBaseURL,
			Timeout:          DefaultProviderTimeout,
			MaxResponseBytes: DefaultProviderMaxResponseBytes,
		},
		TriggerAPI: TriggerAPIConfig{
			WS: WSConfig{
				ListenPort: DefaultListenPort,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRateLimitPerSecond,
				Burst:             DefaultRateLimitBurst,
			},
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// Load 기본 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 기본값과 환경 변수만 사용합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
		if !optional {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
	}

	// 3. .env 파일 (이미 설정된 환경 변수는 덮어쓰지 않음)
	if err := godotenv.Load(dotEnvFilename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf(".env 파일 로드 중 오류가 발생했습니다: '%s'", dotEnvFilename))
	}

	// 4. 환경 변수
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 5. 구조체 변환 (정의되지 않은 키가 있으면 실패)
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if appConfig.Provider.SecretKey == "" {
		appConfig.Provider.SecretKey = strings.TrimSpace(os.Getenv(ProviderSecretKeyEnv))
	}

	// 6. 정합성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수명을 설정 키 경로로 변환합니다.
// 예: NOTIFY_PROVIDER__SECRET_KEY -> provider.secret_key
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
