package model

import (
	"time"
)

// ItemGrade 아이템 등급 (업스트림 표기 그대로 저장)
const (
	GradeNormal    = "일반"
	GradeUncommon  = "고급"
	GradeRare      = "희귀"
	GradeEpic      = "영웅"
	GradeLegendary = "전설"
	GradeRelic     = "유물"
	GradeAncient   = "고대"
)

// MarketItem 거래소 아이템 미러 행.
// 식별 키는 (item_id, name) 쌍이다. 업스트림이 같은 숫자 ID를 서로 다른
// 이름의 아이템에 재사용하는 경우가 있어 item_id 단독으로는 유일하지 않다.
// 최초 발견 시 전체 삽입되고, 이후에는 시세 필드와 updated_at만 갱신된다.
type MarketItem struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	ItemID          int     `gorm:"not null;uniqueIndex:idx_market_items_item_id_name" json:"item_id"`
	Name            string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_market_items_item_id_name" json:"name"`
	Grade           string  `gorm:"type:varchar(20);not null;default:일반" json:"grade"`
	Icon            *string `gorm:"type:varchar(255)" json:"icon"`
	CurrentMinPrice int64   `gorm:"not null;default:0" json:"current_min_price"`
	RecentPrice     float64 `gorm:"not null;default:0" json:"recent_price"`
	AvgPrice        float64 `gorm:"not null;default:0" json:"avg_price"`
	CategoryCode    int     `gorm:"not null;index" json:"category_code"`

	// 제작(생활) 부가 정보. 업스트림 거래소 응답에는 없고 별도 수집/입력으로
	// 채워지며, 한 번 채워진 뒤에는 코어 경로에서 덮어쓰지 않는다.
	ItemType            *string `gorm:"type:varchar(50)" json:"item_type"`
	ItemUnit            *int    `gorm:"column:item_unit" json:"item_unit"`
	ItemEnergy          *int    `gorm:"column:item_energy" json:"item_energy"`
	ItemProductionTime  *int    `gorm:"column:item_production_time" json:"item_production_time"`
	ItemProductionPrice *int    `gorm:"column:item_production_price" json:"item_production_price"`
	ItemCharge          *int    `gorm:"column:item_charge" json:"item_charge"`

	// 제작 재료 슬롯 1~6. 재료는 업스트림에 안정적인 키가 없어
	// 다른 아이템의 name과의 동등 비교로만 연결된다 (읽기 시 self-join).
	ItemSub1     *string `gorm:"column:item_sub1;type:varchar(100)" json:"item_sub1"`
	ItemSub1Num  *int    `gorm:"column:item_sub1_num" json:"item_sub1_num"`
	ItemSub1Unit *int    `gorm:"column:item_sub1_unit" json:"item_sub1_unit"`
	ItemSub2     *string `gorm:"column:item_sub2;type:varchar(100)" json:"item_sub2"`
	ItemSub2Num  *int    `gorm:"column:item_sub2_num" json:"item_sub2_num"`
	ItemSub2Unit *int    `gorm:"column:item_sub2_unit" json:"item_sub2_unit"`
	ItemSub3     *string `gorm:"column:item_sub3;type:varchar(100)" json:"item_sub3"`
	ItemSub3Num  *int    `gorm:"column:item_sub3_num" json:"item_sub3_num"`
	ItemSub3Unit *int    `gorm:"column:item_sub3_unit" json:"item_sub3_unit"`
	ItemSub4     *string `gorm:"column:item_sub4;type:varchar(100)" json:"item_sub4"`
	ItemSub4Num  *int    `gorm:"column:item_sub4_num" json:"item_sub4_num"`
	ItemSub4Unit *int    `gorm:"column:item_sub4_unit" json:"item_sub4_unit"`
	ItemSub5     *string `gorm:"column:item_sub5;type:varchar(100)" json:"item_sub5"`
	ItemSub5Num  *int    `gorm:"column:item_sub5_num" json:"item_sub5_num"`
	ItemSub5Unit *int    `gorm:"column:item_sub5_unit" json:"item_sub5_unit"`
	ItemSub6     *string `gorm:"column:item_sub6;type:varchar(100)" json:"item_sub6"`
	ItemSub6Num  *int    `gorm:"column:item_sub6_num" json:"item_sub6_num"`
	ItemSub6Unit *int    `gorm:"column:item_sub6_unit" json:"item_sub6_unit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MarketItem) TableName() string {
	return "market_items"
}

// MarketSearchCondition 거래소 조회 조건
type MarketSearchCondition struct {
	Keyword      string
	CategoryCode int // 0이면 전체 카테고리
	Categories   []MarketCategory
}

// MarketItemRow 조합(self-join) 조회 결과 한 행. JSON 필드명은 업스트림
// API 응답 형태를 따른다 (프론트가 업스트림 포맷을 그대로 소비).
type MarketItemRow struct {
	ItemID          int     `gorm:"column:item_id" json:"Id"`
	Name            string  `gorm:"column:name" json:"Name"`
	Grade           string  `gorm:"column:grade" json:"Grade"`
	Icon            string  `gorm:"column:icon" json:"Icon"`
	CurrentMinPrice int64   `gorm:"column:current_min_price" json:"CurrentMinPrice"`
	RecentPrice     float64 `gorm:"column:recent_price" json:"RecentPrice"`
	AvgPrice        float64 `gorm:"column:avg_price" json:"YDayAvgPrice"`
	CategoryCode    int     `gorm:"column:category_code" json:"category_code"`

	ItemType            string `gorm:"column:item_type" json:"item_type"`
	ItemUnit            int    `gorm:"column:item_unit" json:"item_unit"`
	ItemEnergy          int    `gorm:"column:item_energy" json:"item_energy"`
	ItemProductionTime  int    `gorm:"column:item_production_time" json:"item_production_time"`
	ItemProductionPrice int    `gorm:"column:item_production_price" json:"item_production_price"`
	ItemCharge          int    `gorm:"column:item_charge" json:"item_charge"`

	ItemSub1      string  `gorm:"column:item_sub1" json:"item_sub1"`
	ItemSub1Num   int     `gorm:"column:item_sub1_num" json:"item_sub1_num"`
	ItemSub1Unit  int     `gorm:"column:item_sub1_unit" json:"item_sub1_unit"`
	ItemSub1Icon  string  `gorm:"column:item_sub1_icon" json:"item_sub1_icon"`
	ItemSub1Price float64 `gorm:"column:item_sub1_price" json:"item_sub1_price"`
	ItemSub2      string  `gorm:"column:item_sub2" json:"item_sub2"`
	ItemSub2Num   int     `gorm:"column:item_sub2_num" json:"item_sub2_num"`
	ItemSub2Unit  int     `gorm:"column:item_sub2_unit" json:"item_sub2_unit"`
	ItemSub2Icon  string  `gorm:"column:item_sub2_icon" json:"item_sub2_icon"`
	ItemSub2Price float64 `gorm:"column:item_sub2_price" json:"item_sub2_price"`
	ItemSub3      string  `gorm:"column:item_sub3" json:"item_sub3"`
	ItemSub3Num   int     `gorm:"column:item_sub3_num" json:"item_sub3_num"`
	ItemSub3Unit  int     `gorm:"column:item_sub3_unit" json:"item_sub3_unit"`
	ItemSub3Icon  string  `gorm:"column:item_sub3_icon" json:"item_sub3_icon"`
	ItemSub3Price float64 `gorm:"column:item_sub3_price" json:"item_sub3_price"`
	ItemSub4      string  `gorm:"column:item_sub4" json:"item_sub4"`
	ItemSub4Num   int     `gorm:"column:item_sub4_num" json:"item_sub4_num"`
	ItemSub4Unit  int     `gorm:"column:item_sub4_unit" json:"item_sub4_unit"`
	ItemSub4Icon  string  `gorm:"column:item_sub4_icon" json:"item_sub4_icon"`
	ItemSub4Price float64 `gorm:"column:item_sub4_price" json:"item_sub4_price"`
	ItemSub5      string  `gorm:"column:item_sub5" json:"item_sub5"`
	ItemSub5Num   int     `gorm:"column:item_sub5_num" json:"item_sub5_num"`
	ItemSub5Unit  int     `gorm:"column:item_sub5_unit" json:"item_sub5_unit"`
	ItemSub5Icon  string  `gorm:"column:item_sub5_icon" json:"item_sub5_icon"`
	ItemSub5Price float64 `gorm:"column:item_sub5_price" json:"item_sub5_price"`
	ItemSub6      string  `gorm:"column:item_sub6" json:"item_sub6"`
	ItemSub6Num   int     `gorm:"column:item_sub6_num" json:"item_sub6_num"`
	ItemSub6Unit  int     `gorm:"column:item_sub6_unit" json:"item_sub6_unit"`
	ItemSub6Icon  string  `gorm:"column:item_sub6_icon" json:"item_sub6_icon"`
	ItemSub6Price float64 `gorm:"column:item_sub6_price" json:"item_sub6_price"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// MarketSearchResult 조회 API 응답
type MarketSearchResult struct {
	TotalCount int             `json:"TotalCount"`
	Items      []MarketItemRow `json:"Items"`
}
