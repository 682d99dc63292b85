package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/darkkaiser/notify-trigger/internal/service/contract"
	"github.com/spf13/cobra"
)

func newTriggerCommand(configFlag *string) *cobra.Command {
	var (
		workflowID   string
		subscriberID string
		payloadJSON  string
	)

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "알림 워크플로우를 한 번 실행하고 알림 공급자의 응답을 출력합니다",
		Example: `  notify-trigger trigger --workflow welcome --subscriber user-42
  notify-trigger trigger --workflow welcome --subscriber user-42 --payload '{"name":"홍길동"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workflowID == "" || subscriberID == "" {
				return errors.New("--workflow 와 --subscriber 는 필수입니다")
			}

			var payload map[string]any
			if strings.TrimSpace(payloadJSON) != "" {
				if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
					return fmt.Errorf("--payload 는 JSON 객체여야 합니다: %w", err)
				}
			}

			appConfig, err := loadConfig(*configFlag)
			if err != nil {
				return fmt.Errorf("환경설정 로드 실패: %w", err)
			}

			event := contract.NewTriggerEvent(workflowID, subscriberID, payload)
			result, err := newTriggerer(appConfig).Trigger(cmd.Context(), event)
			if err != nil {
				return fmt.Errorf("알림 트리거 실패: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&workflowID, "workflow", "w", "", "워크플로우(템플릿) 식별자")
	cmd.Flags().StringVarP(&subscriberID, "subscriber", "s", "", "수신자(Subscriber) 식별자")
	cmd.Flags().StringVarP(&payloadJSON, "payload", "p", "", "워크플로우에 전달할 JSON 객체")

	return cmd
}
