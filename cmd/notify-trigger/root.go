package main

import (
	"github.com/darkkaiser/notify-trigger/internal/config"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "알림 공급자(Novu)의 워크플로우를 실행하는 알림 트리거 서버",
		SilenceUsage:  true,
		SilenceErrors: true,
		// 하위 명령 없이 실행하면 서버를 구동합니다.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "설정 파일 경로 (기본값: ./"+config.DefaultFilename+", 없으면 기본값과 환경 변수만 사용)")

	rootCmd.AddCommand(newServeCommand(&configFlag))
	rootCmd.AddCommand(newTriggerCommand(&configFlag))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadConfig 경로가 지정되면 해당 파일을, 아니면 기본 설정 파일(없어도 됨)을 읽습니다.
func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadWithFile(path)
}
