// Package version 빌드 시점에 주입된 버전 정보를 제공합니다.
//
// 값은 -ldflags 로 주입합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/notify-trigger/internal/pkg/version.appVersion=v1.2.0 \
//	  -X github.com/darkkaiser/notify-trigger/internal/pkg/version.buildNumber=42"
//
// 주입되지 않은 값은 runtime/debug.ReadBuildInfo 의 VCS 정보로 보완합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

var current atomic.Value

// 테스트에서 교체할 수 있도록 변수로 둡니다.
var readBuildInfo = debug.ReadBuildInfo

var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

func init() {
	bi := Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}

	current.Store(enrich(bi))
}

// Info 애플리케이션 빌드 정보
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 프로세스의 빌드 정보를 반환합니다.
func Get() Info {
	if bi, ok := current.Load().(Info); ok {
		return bi
	}
	return Info{Version: unknown, Commit: unknown, BuildDate: unknown, BuildNumber: "0"}
}

func enrich(bi Info) Info {
	if bi.GoVersion == "" {
		bi.GoVersion = runtime.Version()
	}
	if bi.OS == "" {
		bi.OS = runtime.GOOS
	}
	if bi.Arch == "" {
		bi.Arch = runtime.GOARCH
	}

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					bi.DirtyBuild = true
				}
			}
		}
		if bi.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			bi.Version = info.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}

	return bi
}

// ToMap 구조화 로깅의 필드로 사용할 수 있도록 맵으로 변환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String 배너와 CLI 출력용 한 줄 요약을 반환합니다.
// 예: "v1.2.0+dirty (commit: f25b8bf, build: 42, go: go1.24.0, linux/amd64)"
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		details = append(details, "commit: "+shortCommit(i.Commit))
	}
	if i.BuildNumber != "" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if i.BuildDate != "" && i.BuildDate != unknown {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, "go: "+i.GoVersion)
	}
	if i.OS != "" && i.Arch != "" {
		details = append(details, i.OS+"/"+i.Arch)
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
