package handler

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator 요청 검증용 validator 인스턴스를 반환합니다.
// 검증 에러의 필드명에는 JSON 키 이름이 사용됩니다.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})

	return validate
}

// validateRequest 구조체의 validate 태그를 기반으로 검증을 수행합니다.
func validateRequest(req any) error {
	return getValidator().Struct(req)
}
