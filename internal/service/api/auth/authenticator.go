// Package auth 트리거 API 호출 애플리케이션의 인증을 담당합니다.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/darkkaiser/notify-trigger/internal/config"
	"github.com/darkkaiser/notify-trigger/internal/service/api/constants"
	"github.com/darkkaiser/notify-trigger/internal/service/api/model/domain"
	applog "github.com/darkkaiser/notify-trigger/pkg/log"
	"github.com/darkkaiser/notify-trigger/pkg/strutil"
)

// registeredApplication 인증 대상 애플리케이션과 App Key 해시
type registeredApplication struct {
	app        *domain.Application
	appKeyHash [sha256.Size]byte
}

// Authenticator 설정에 등록된 애플리케이션의 ID와 App Key를 검증합니다.
//
// 생성 이후 읽기 전용이므로 여러 고루틴에서 동시에 Authenticate 를 호출해도 안전합니다.
// App Key 는 SHA-256 해시로만 보관하고 상수 시간으로 비교합니다.
type Authenticator struct {
	applications map[string]registeredApplication
}

// NewAuthenticator 설정에서 애플리케이션을 로드하여 Authenticator를 생성합니다.
func NewAuthenticator(appConfig *config.AppConfig) *Authenticator {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	applications := make(map[string]registeredApplication, len(appConfig.TriggerAPI.Applications))
	for _, application := range appConfig.TriggerAPI.Applications {
		applications[application.ID] = registeredApplication{
			app: &domain.Application{
				ID:          application.ID,
				Title:       application.Title,
				Description: application.Description,
			},
			appKeyHash: sha256.Sum256([]byte(application.AppKey)),
		}
	}

	return &Authenticator{
		applications: applications,
	}
}

// Enabled 등록된 애플리케이션이 하나 이상이면 true 를 반환합니다.
// 등록된 애플리케이션이 없으면 트리거 API는 인증 없이 공개됩니다.
func (a *Authenticator) Enabled() bool {
	return len(a.applications) > 0
}

// Authenticate 애플리케이션을 찾고 App Key를 검증합니다.
// 성공 시 Application 객체를, 실패 시 401 에러를 반환합니다.
func (a *Authenticator) Authenticate(applicationID, appKey string) (*domain.Application, error) {
	registered, ok := a.applications[applicationID]
	if !ok {
		return nil, NewErrInvalidApplicationID(applicationID)
	}

	appKeyHash := sha256.Sum256([]byte(appKey))
	if subtle.ConstantTimeCompare(registered.appKeyHash[:], appKeyHash[:]) != 1 {
		applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
			"application_id":   applicationID,
			"app_title":        registered.app.Title,
			"received_app_key": strutil.Mask(appKey),
		}).Warn("인증 실패: App Key 불일치")

		return nil, NewErrInvalidAppKey(applicationID)
	}

	return registered.app, nil
}
