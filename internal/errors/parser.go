package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환.
// 내부 상세는 숨기되 호출자가 문제를 구분할 수 있는 수준으로 매핑한다.
func ParseError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    MarketSearchFailed,
			Message: "요청한 데이터를 찾을 수 없습니다",
		}
	}

	// Unique constraint violation
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "이미 존재하는 데이터입니다",
		}
	}

	// 네트워크/연결 에러 (업스트림 또는 DB)
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "외부 서비스 연결에 실패했습니다. 잠시 후 다시 시도해주세요",
		}
	}

	if strings.Contains(errStr, "lostark_api_key") {
		return ErrorInfo{
			Code:    InternalConfigError,
			Message: "API 키가 설정되지 않았습니다",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "서버 오류가 발생했습니다",
	}
}
