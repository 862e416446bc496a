package db

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/wednes/wednes-backend/pkg/logger"
)

const (
	retryAttempts = 3
	retryBackoff  = 100 * time.Millisecond
)

// WithRetry 일시적 커넥션 오류에 한해 재시도하는 영속성 호출 데코레이터.
// 마지막 시도까지 실패하면 마지막 오류를 그대로 반환한다.
func WithRetry(op func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return err
		}
		if attempt < retryAttempts {
			logger.Warn("Transient database error, retrying", map[string]interface{}{
				"attempt": attempt,
				"error":   err.Error(),
			})
			time.Sleep(retryBackoff * time.Duration(attempt))
		}
	}
	return err
}

// isTransient 커넥션 단절 계열 오류만 재시도 대상으로 본다
func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "unexpected eof")
}
