package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
	"github.com/darkkaiser/notify-trigger/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 설정 검증용 Validator 를 생성합니다.
// 에러 메시지에는 Go 필드명 대신 JSON 키 이름이 사용됩니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "base_url", func(fl validator.FieldLevel) bool {
		return validation.ValidateBaseURL(fl.Field().String()) == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 태그 규칙으로 검증하고 첫 번째 실패를 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !apperrors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정 검증 중 알 수 없는 오류가 발생했습니다", contextName))
	}

	fe := validationErrors[0]
	if fe.Tag() == "cors_origin" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	}

	switch fe.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "TLSCertFile", "TLSKeyFile":
		switch fe.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s 경로는 필수입니다", fe.Field()))
		case "file":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", fe.Field(), fe.Value()))
		}
	case "BaseURL":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("알림 공급자 기준 URL(base_url)이 올바르지 않습니다: '%v' (예: https://api.novu.co)", fe.Value()))
	case "Timeout":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("제한 시간(%s)은 0보다 커야 합니다: '%v'", fe.Field(), fe.Value()))
	case "RequestsPerSecond", "Burst":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 속도 제한 활성화 시 %s 는 1 이상이어야 합니다: '%v'", fe.Field(), fe.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag()))
}

// checkUniqueField 슬라이스 요소의 특정 필드 값이 서로 다른지 검사합니다.
func checkUniqueField(v *validator.Validate, data any, fieldName, contextName string) error {
	if err := v.Var(data, "unique="+fieldName); err != nil {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("중복된 %s %s가 존재합니다", contextName, fieldName))
	}
	return nil
}
