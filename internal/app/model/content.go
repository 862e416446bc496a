package model

import "time"

// Notice 공지사항 미러 (/news/notices)
type Notice struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Date      string    `gorm:"type:varchar(40)" json:"date"`
	Link      string    `gorm:"type:varchar(255)" json:"link"`
	Thumbnail string    `gorm:"type:varchar(255)" json:"thumbnail"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notice) TableName() string {
	return "notices"
}

// Event 이벤트 미러 (/news/events)
type Event struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Thumbnail  string    `gorm:"type:varchar(255)" json:"thumbnail"`
	Link       string    `gorm:"type:varchar(255)" json:"link"`
	StartDate  string    `gorm:"type:varchar(40)" json:"start_date"`
	EndDate    string    `gorm:"type:varchar(40)" json:"end_date"`
	RewardDate *string   `gorm:"type:varchar(40)" json:"reward_date,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

// Alarm 알람 미러 (/news/alarms)
type Alarm struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AlarmType string    `gorm:"type:varchar(50)" json:"alarm_type"`
	Contents  string    `gorm:"type:text" json:"contents"`
	StartDate string    `gorm:"type:varchar(40)" json:"start_date"`
	EndDate   *string   `gorm:"type:varchar(40)" json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Alarm) TableName() string {
	return "alarms"
}

// GameContent 게임 콘텐츠 캘린더 미러 (/gamecontents/calendar).
// StartTimes와 RewardItems는 업스트림이 안정적인 키를 주지 않아
// JSON 텍스트 그대로 보관하고 읽기 시 역직렬화한다.
type GameContent struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CategoryName string    `gorm:"type:varchar(50)" json:"category_name"`
	ContentsName string    `gorm:"type:varchar(100)" json:"contents_name"`
	ContentsIcon string    `gorm:"type:varchar(255)" json:"contents_icon"`
	MinItemLevel float64   `json:"min_item_level"`
	StartTimes   string    `gorm:"type:text" json:"start_times"`  // JSON array of RFC3339 strings
	Location     string    `gorm:"type:varchar(100)" json:"location"`
	RewardItems  string    `gorm:"type:text" json:"reward_items"` // JSON array
	CreatedAt    time.Time `json:"created_at"`
}

func (GameContent) TableName() string {
	return "game_contents"
}
