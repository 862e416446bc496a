package model

import "time"

// ApiLog API 호출 감사 로그. 삽입만 하고 수정/삭제하지 않는다.
// 배치 수집 엔드포인트의 마지막 행이 곧 스케줄러 상태 저장소다.
type ApiLog struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Endpoint     string    `gorm:"type:varchar(100);not null;index" json:"endpoint"`
	Method       string    `gorm:"type:varchar(10);not null" json:"method"`
	StatusCode   int       `gorm:"not null" json:"status_code"`
	ResponseTime int64     `gorm:"not null" json:"response_time"` // ms
	ErrorMessage *string   `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (ApiLog) TableName() string {
	return "api_logs"
}

// BatchCollectEndpoint 배치 수집 로그가 기록되는 endpoint 값
const BatchCollectEndpoint = "/api/batch/collect"
