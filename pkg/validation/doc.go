// Package validation 설정 파일과 API 입력값에 쓰이는 형식 검증 함수를 제공합니다.
//
// 모든 함수는 상태를 갖지 않으므로 동시에 호출해도 안전합니다.
package validation
