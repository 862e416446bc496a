package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식

	// ==================== 거래소 (MARKET_) ====================
	MarketSearchFailed    = "MARKET_SEARCH_FAILED"    // 거래소 조회 실패
	MarketInvalidCategory = "MARKET_INVALID_CATEGORY" // 잘못된 카테고리 코드
	MarketExportFailed    = "MARKET_EXPORT_FAILED"    // 엑셀 내보내기 실패

	// ==================== 배치 (BATCH_) ====================
	BatchNotDue       = "BATCH_NOT_DUE"       // 아직 실행 시간 아님
	BatchInProgress   = "BATCH_IN_PROGRESS"   // 이미 실행 중
	BatchFailed       = "BATCH_FAILED"        // 수집 실패
	BatchStatusFailed = "BATCH_STATUS_FAILED" // 상태 확인 실패

	// ==================== 콘텐츠 (CONTENT_) ====================
	ContentFetchFailed = "CONTENT_FETCH_FAILED" // 콘텐츠 조회 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // 외부 API 오류
	InternalConfigError   = "INTERNAL_CONFIG_ERROR"   // 설정 오류
)
