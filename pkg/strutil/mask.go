// Package strutil 로그 출력용 문자열 유틸리티를 제공합니다.
package strutil

import "unicode/utf8"

// Mask 토큰, 키 같은 민감한 값을 로그에 남길 수 있도록 일부만 노출합니다.
//
//	""                   -> ""
//	"abc"                -> "***"
//	"secret12"           -> "secr***"
//	"sk_live_1234567890" -> "sk_l***7890"
func Mask(s string) string {
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return ""
	case n <= 3:
		return "***"
	}

	r := []rune(s)
	if n <= 12 {
		return string(r[:4]) + "***"
	}
	return string(r[:4]) + "***" + string(r[n-4:])
}
