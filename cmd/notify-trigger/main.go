package main

import (
	"fmt"
	"os"
)

// @title Notify Trigger API
// @version 1.0.0
// @description 외부 알림 공급자(Novu)의 워크플로우를 실행하는 알림 트리거 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 워크플로우 ID와 수신자 ID로 알림 워크플로우 실행 (POST /trigger)
// @description - 워크플로우 템플릿에 전달할 임의의 payload 지원
// @description - 헬스체크, 버전 정보, Prometheus 지표
// @description
// @description ## 인증
// @description 설정 파일(notify-trigger.json)의 trigger_api.applications 에 애플리케이션을 등록하면
// @description /trigger 호출 시 X-Application-Id 와 X-App-Key 헤더가 필요합니다.
// @description 등록된 애플리케이션이 없으면 인증 없이 호출할 수 있습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-App-Key
// @description Application Key for authentication

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}
