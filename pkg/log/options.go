package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 초기화 옵션입니다.
type Options struct {
	Name  string // 로그 파일명에 사용할 애플리케이션 이름
	Dir   string // 로그 디렉토리 (빈 값: "logs")
	Level Level  // 최소 로그 레벨 (0 값이면 Info)

	MaxAge     int // 보관 일수 (0: 삭제하지 않음)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: 100MB)
	MaxBackups int // 로테이션 파일 보관 개수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상을 별도 파일(<name>.critical.log)에도 기록
	EnableVerboseLog  bool // DEBUG 이하를 메인 파일 대신 별도 파일(<name>.verbose.log)에 기록
	EnableConsoleLog  bool // 모든 레벨을 표준 출력에도 기록

	ReportCaller     bool   // 호출 위치(함수명:라인) 기록
	CallerPathPrefix string // 호출 위치 출력 시 잘라낼 패키지 경로 접두사
}

// Validate 옵션 값의 유효성을 검사합니다.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}
	if o.Dir != "" {
		if info, err := os.Stat(o.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", o.Dir)
		}
	}
	if o.MaxAge < 0 || o.MaxSizeMB < 0 || o.MaxBackups < 0 {
		return fmt.Errorf("로그 보관 정책 값은 0 이상이어야 합니다 (MaxAge: %d, MaxSizeMB: %d, MaxBackups: %d)", o.MaxAge, o.MaxSizeMB, o.MaxBackups)
	}
	return nil
}
