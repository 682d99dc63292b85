package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/notify-trigger/docs"
	"github.com/darkkaiser/notify-trigger/internal/config"
	apperrors "github.com/darkkaiser/notify-trigger/internal/pkg/errors"
	"github.com/darkkaiser/notify-trigger/internal/pkg/metrics"
	"github.com/darkkaiser/notify-trigger/internal/pkg/version"
	"github.com/darkkaiser/notify-trigger/internal/service/api/auth"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/handler/system"
	"github.com/darkkaiser/notify-trigger/internal/service/api/trigger"
	triggerhandler "github.com/darkkaiser/notify-trigger/internal/service/api/trigger/handler"
	"github.com/darkkaiser/notify-trigger/internal/service/contract"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 알림 트리거 API 서버의 생명주기를 관리하는 서비스입니다.
//
// 이 서비스는 다음과 같은 역할을 수행합니다:
//   - Echo 기반 HTTP/HTTPS 서버 시작 및 종료
//   - 미들웨어 체인 및 전역 에러 핸들러 설정
//   - 애플리케이션 인증 구성 (등록된 애플리케이션이 있을 때만)
//   - 라우팅 설정 (/trigger, /health, /version, /metrics, /swagger)
//   - Graceful Shutdown 지원
//
// Start() 로 시작하고, 전달한 context 가 취소되면 종료됩니다.
// 포트 바인딩 실패 등으로 서버가 먼저 종료되면 Done() 채널이 닫히고 Err() 로 원인을 확인할 수 있습니다.
type Service struct {
	appConfig *config.AppConfig

	triggerer contract.Triggerer

	metrics *metrics.Metrics

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex

	// done 마지막으로 시작한 서비스 루프가 종료되면 닫힙니다.
	done chan struct{}

	// serverErr HTTP 서버가 종료 요청 없이 중단된 원인
	serverErr error
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, triggerer contract.Triggerer, m *metrics.Metrics, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if triggerer == nil {
		panic(constants.PanicMsgTriggererRequired)
	}
	if m == nil {
		panic(constants.PanicMsgMetricsRequired)
	}

	return &Service{
		appConfig: appConfig,

		triggerer: triggerer,

		metrics: m,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 서버는 별도의 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done() 이 호출됩니다.
// 이미 실행 중이면 경고 로그만 남기고 serviceStopWG.Done() 을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true
	s.done = make(chan struct{})
	s.serverErr = nil

	go s.runServiceLoop(serviceStopCtx, serviceStopWG, s.done)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, done chan struct{}) {
	defer serviceStopWG.Done()
	defer close(done)

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	authenticator := auth.NewAuthenticator(s.appConfig)

	systemHandler := system.NewHandler(s.triggerer, s.buildInfo)
	triggerHandler := triggerhandler.NewHandler(s.triggerer, s.metrics)

	apiConfig := s.appConfig.TriggerAPI
	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       apiConfig.CORS.AllowOrigins,
		RequestTimeout:     apiConfig.RequestTimeout,
		EnableHSTS:         apiConfig.WS.TLSServer,
		RateLimitEnabled:   apiConfig.RateLimit.Enabled,
		RateLimitPerSecond: apiConfig.RateLimit.RequestsPerSecond,
		RateLimitBurst:     apiConfig.RateLimit.Burst,
		Metrics:            s.metrics,
	})

	RegisterRoutes(e, systemHandler, s.metrics)
	trigger.RegisterRoutes(e, triggerHandler, authenticator)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작하고, 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.TriggerAPI.WS
	address := fmt.Sprintf(":%d", ws.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	if fatalErr := s.handleServerError(err); fatalErr != nil {
		s.setServerErr(fatalErr)
	}
}

// handleServerError HTTP 서버가 반환한 에러를 처리하고, 비정상 종료의 원인이면 그대로 반환합니다.
// http.ErrServerClosed 는 정상 종료이므로 Info 레벨로 기록하고 nil 을 반환합니다.
func (s *Service) handleServerError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return nil
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.TriggerAPI.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)

	return err
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 Graceful Shutdown 을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		if s.Err() == nil {
			s.setServerErr(apperrors.New(apperrors.System, constants.LogMsgServiceUnexpectedExit))
		}

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// Done 서비스 루프가 종료되면 닫히는 채널을 반환합니다. Start 전에는 nil 을 반환합니다.
func (s *Service) Done() <-chan struct{} {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.done
}

// Err 종료 요청 없이 HTTP 서버가 중단된 경우 그 원인을 반환합니다. 정상 종료했거나 실행 중이면 nil 입니다.
func (s *Service) Err() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.serverErr
}

func (s *Service) setServerErr(err error) {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	s.serverErr = err
}

// Running 서비스 실행 여부를 반환합니다.
func (s *Service) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}
