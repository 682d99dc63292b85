package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/notify-trigger/internal/config"
	"github.com/darkkaiser/notify-trigger/internal/pkg/metrics"
	"github.com/darkkaiser/notify-trigger/internal/pkg/version"
	"github.com/darkkaiser/notify-trigger/internal/service/api"
	"github.com/darkkaiser/notify-trigger/internal/service/provider/novu"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/spf13/cobra"
)

const banner = `
  _   _         _    _   __         _____       _
 | \ | |  ___  | |_ (_) / _| _   _ |_   _| _ __(_)  __ _   __ _   ___  _ __
 |  \| | / _ \ | __|| || |_ | | | |  | |  | '__| | / _` + "`" + ` | / _` + "`" + ` | / _ \| '__|
 | |\  || (_) || |_ | ||  _|| |_| |  | |  | |  | || (_| || (_| ||  __/| |
 |_| \_| \___/  \__||_||_|   \__, |  |_|  |_|  |_| \__, | \__, | \___||_|
                             |___/                 |___/  |___/   %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

func newServeCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "알림 트리거 API 서버를 구동합니다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, *configFlag)
		},
	}
}

func runServe(cmd *cobra.Command, configPath string) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	// 2. 로그 시스템 초기화
	logCloser, err := setupLogging(appConfig)
	if err != nil {
		return fmt.Errorf("로그 시스템 초기화 실패. 서버 구동을 중단합니다: %w", err)
	}
	defer logCloser.Close()

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Fprintf(cmd.OutOrStdout(), banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 3. 서비스 생성
	triggerer := newTriggerer(appConfig)
	apiService := api.NewService(appConfig, triggerer, metrics.New(), buildInfo)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 4. 서비스 시작
	serviceStopWG.Add(1)
	if err := apiService.Start(serviceStopCtx, serviceStopWG); err != nil {
		cancel()
		serviceStopWG.Wait()
		return fmt.Errorf("서비스 초기화 실패: %w", err)
	}

	applog.WithComponent("main").Info("서버 가동 완료")

	// 5. 종료 신호 또는 API 서비스의 조기 종료 대기
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent("main").Info("종료 신호를 수신하였습니다")
	case <-apiService.Done():
		applog.WithComponent("main").Error("API 서비스가 중단되어 서버를 종료합니다")
	}

	cancel()
	serviceStopWG.Wait()

	if err := apiService.Err(); err != nil {
		return fmt.Errorf("API 서비스 비정상 종료: %w", err)
	}

	return nil
}

func setupLogging(appConfig *config.AppConfig) (io.Closer, error) {
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}
	logOpts.Dir = appConfig.Log.Dir
	logOpts.MaxAge = appConfig.Log.MaxAge

	closer, err := applog.Setup(logOpts)
	if err != nil {
		return nil, err
	}

	applog.SetDebugMode(appConfig.Debug)

	return closer, nil
}

// newTriggerer 설정값으로 알림 공급자 클라이언트를 생성합니다. 프로세스 전체에서 하나만 생성하여 공유합니다.
func newTriggerer(appConfig *config.AppConfig) *novu.Client {
	return novu.New(novu.Config{
		BaseURL:          appConfig.Provider.BaseURL,
		SecretKey:        appConfig.Provider.SecretKey,
		Timeout:          appConfig.Provider.Timeout,
		MaxResponseBytes: appConfig.Provider.MaxResponseBytes,
		UserAgent:        config.AppName + "/" + version.Get().Version,
	})
}
