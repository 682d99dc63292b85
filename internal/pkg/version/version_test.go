package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrich(t *testing.T) {
	original := readBuildInfo
	t.Cleanup(func() { readBuildInfo = original })

	tests := []struct {
		name      string
		input     Info
		buildInfo *debug.BuildInfo
		expected  Info
	}{
		{
			name:      "성공: 빌드 정보가 없으면 unknown 으로 채운다",
			input:     Info{},
			buildInfo: nil,
			expected: Info{
				Version: unknown, Commit: unknown, BuildDate: unknown,
				GoVersion: runtime.Version(), OS: runtime.GOOS, Arch: runtime.GOARCH,
			},
		},
		{
			name:  "성공: VCS 정보로 비어있는 값을 보완한다",
			input: Info{BuildNumber: "7"},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.0.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abcdef1234567"},
					{Key: "vcs.time", Value: "2025-01-01T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			expected: Info{
				Version: "v1.0.0", Commit: "abcdef1234567", BuildDate: "2025-01-01T00:00:00Z", BuildNumber: "7",
				GoVersion: runtime.Version(), OS: runtime.GOOS, Arch: runtime.GOARCH, DirtyBuild: true,
			},
		},
		{
			name:  "성공: ldflags 로 주입된 값이 우선한다",
			input: Info{Version: "v2.0.0", Commit: "1111111"},
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "2222222"}},
			},
			expected: Info{
				Version: "v2.0.0", Commit: "1111111", BuildDate: unknown,
				GoVersion: runtime.Version(), OS: runtime.GOOS, Arch: runtime.GOARCH,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return tt.buildInfo, tt.buildInfo != nil
			}

			assert.Equal(t, tt.expected, enrich(tt.input))
		})
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	bi := Info{
		Version: "v1.2.0", Commit: "f25b8bf0123", BuildNumber: "42",
		BuildDate: unknown, GoVersion: "go1.24.0", OS: "linux", Arch: "amd64", DirtyBuild: true,
	}

	assert.Equal(t, "v1.2.0+dirty (commit: f25b8bf, build: 42, go: go1.24.0, linux/amd64)", bi.String())
	assert.Equal(t, unknown, Info{}.String())
}

func TestGet(t *testing.T) {
	t.Parallel()

	bi := Get()
	assert.NotEmpty(t, bi.Version)
	assert.Equal(t, runtime.GOOS, bi.OS)
	assert.Equal(t, "linux", Info{OS: "linux"}.ToMap()["os"])
}
