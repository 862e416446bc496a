package model

import "strings"

// 거래소 카테고리 코드
const (
	CategoryEnhancement = 50000 // 강화재료
	CategoryBattleItem  = 60000 // 배틀아이템
	CategoryCooking     = 70000 // 요리
	CategoryEstate      = 90000 // 영지
)

// MarketCategory 수집/조회가 공유하는 카테고리 정책 한 줄.
// RequiredSubstring이 비어 있지 않으면 해당 카테고리의 아이템은
// 이름에 그 문자열을 포함해야만 저장/노출된다.
type MarketCategory struct {
	Code              int    `json:"code"`
	Name              string `json:"name"`
	RequiredSubstring string `json:"required_substring,omitempty"`
}

// Matches 카테고리 정책 기준으로 저장 가능한 이름인지 확인
func (c MarketCategory) Matches(name string) bool {
	if c.RequiredSubstring == "" {
		return true
	}
	return strings.Contains(name, c.RequiredSubstring)
}

// MarketCategories 수집 대상 카테고리 목록.
// enhancementFilter는 강화재료(50000) 카테고리의 필수 포함 문자열이다.
func MarketCategories(enhancementFilter string) []MarketCategory {
	return []MarketCategory{
		{Code: CategoryEnhancement, Name: "enhancement", RequiredSubstring: enhancementFilter},
		{Code: CategoryBattleItem, Name: "battle"},
		{Code: CategoryCooking, Name: "cooking"},
		{Code: CategoryEstate, Name: "estate"},
	}
}

// CategoryByCode 코드로 카테고리 조회, 없으면 ok=false
func CategoryByCode(categories []MarketCategory, code int) (MarketCategory, bool) {
	for _, c := range categories {
		if c.Code == code {
			return c, true
		}
	}
	return MarketCategory{}, false
}
