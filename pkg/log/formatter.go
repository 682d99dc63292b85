package log

// silentFormatter 포맷팅을 하지 않는 포맷터입니다.
// 실제 출력은 hook 이 담당하므로 기본 출력 경로의 포맷팅 비용을 없앱니다.
type silentFormatter struct{}

func (silentFormatter) Format(*Entry) ([]byte, error) {
	return nil, nil
}
