package lostark

import "time"

// Config 로스트아크 오픈 API 클라이언트 설정
type Config struct {
	// BaseURL API 베이스 URL (기본: https://developer-lostark.game.onstove.com)
	BaseURL string

	// APIKey 스토브 개발자 센터에서 발급받은 API 키
	APIKey string

	// Timeout HTTP 요청 타임아웃
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
