package lostark

// MarketSearchRequest /markets/items 검색 요청 바디
type MarketSearchRequest struct {
	Sort           string `json:"Sort"`
	CategoryCode   int    `json:"CategoryCode"`
	CharacterClass string `json:"CharacterClass"`
	ItemTier       *int   `json:"ItemTier"`
	ItemGrade      string `json:"ItemGrade"`
	ItemName       string `json:"ItemName"`
	PageNo         int    `json:"PageNo"`
	PageSize       int    `json:"PageSize,omitempty"`
	SortCondition  string `json:"SortCondition"`
}

// MarketItem 업스트림이 반환하는 거래소 아이템 원본 레코드
type MarketItem struct {
	ID               int     `json:"Id"`
	Name             string  `json:"Name"`
	Grade            string  `json:"Grade"`
	Icon             string  `json:"Icon"`
	BundleCount      int     `json:"BundleCount"`
	TradeRemainCount *int    `json:"TradeRemainCount"`
	YDayAvgPrice     float64 `json:"YDayAvgPrice"`
	RecentPrice      float64 `json:"RecentPrice"`
	CurrentMinPrice  int64   `json:"CurrentMinPrice"`
}

// MarketSearchResponse /markets/items 응답
type MarketSearchResponse struct {
	PageNo     int          `json:"PageNo"`
	PageSize   int          `json:"PageSize"`
	TotalCount int          `json:"TotalCount"`
	Items      []MarketItem `json:"Items"`
}

// Notice /news/notices 공지사항
type Notice struct {
	Title     string `json:"Title"`
	Date      string `json:"Date"`
	Link      string `json:"Link"`
	Thumbnail string `json:"Thumbnail"`
}

// Event /news/events 진행 중 이벤트
type Event struct {
	Title      string  `json:"Title"`
	Thumbnail  string  `json:"Thumbnail"`
	Link       string  `json:"Link"`
	StartDate  string  `json:"StartDate"`
	EndDate    string  `json:"EndDate"`
	RewardDate *string `json:"RewardDate"`
}

// Alarm /news/alarms 알람 항목
type Alarm struct {
	AlarmType string  `json:"AlarmType"`
	Contents  string  `json:"Contents"`
	StartDate string  `json:"StartDate"`
	EndDate   *string `json:"EndDate"`
}

// AlarmResponse /news/alarms 응답
type AlarmResponse struct {
	RequirePolling bool    `json:"RequirePolling"`
	Alarms         []Alarm `json:"Alarms"`
}

// GameContentRewardItem 캘린더 보상 아이템
type GameContentRewardItem struct {
	Name       string   `json:"Name"`
	Icon       string   `json:"Icon"`
	Grade      string   `json:"Grade"`
	StartTimes []string `json:"StartTimes,omitempty"`
}

// GameContentItemLevel 아이템 레벨 구간별 보상
type GameContentItemLevel struct {
	ItemLevel float64                 `json:"ItemLevel"`
	Items     []GameContentRewardItem `json:"Items"`
}

// GameContent /gamecontents/calendar 게임 콘텐츠
type GameContent struct {
	CategoryName string                 `json:"CategoryName"`
	ContentsName string                 `json:"ContentsName"`
	ContentsIcon string                 `json:"ContentsIcon"`
	MinItemLevel float64                `json:"MinItemLevel"`
	StartTimes   []string               `json:"StartTimes"`
	Location     string                 `json:"Location"`
	RewardItems  []GameContentItemLevel `json:"RewardItems"`
}
