package repository

import (
	"fmt"
	"strings"

	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/db"
	"github.com/wednes/wednes-backend/pkg/logger"
	"gorm.io/gorm"
)

// searchResultLimit 조회 API 결과 상한
const searchResultLimit = 500

// MarketItemRepository 거래소 아이템 저장소 인터페이스
type MarketItemRepository interface {
	FindByItemIDAndName(itemID int, name string) (*model.MarketItem, error)
	Create(item *model.MarketItem) error
	UpdatePrices(itemID int, name string, currentMinPrice int64, recentPrice, avgPrice float64) error
	Search(cond model.MarketSearchCondition) ([]model.MarketItemRow, error)
	CountByCategory(categoryCode int) (int64, error)
}

type marketItemRepository struct {
	db *gorm.DB
}

// NewMarketItemRepository 거래소 아이템 저장소 생성
func NewMarketItemRepository(database *gorm.DB) MarketItemRepository {
	return &marketItemRepository{db: database}
}

// FindByItemIDAndName (item_id, name) 쌍으로 조회. 없으면 (nil, nil)
func (r *marketItemRepository) FindByItemIDAndName(itemID int, name string) (*model.MarketItem, error) {
	var item model.MarketItem
	if err := r.db.Where("item_id = ? AND name = ?", itemID, name).
		First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		logger.Error("Failed to find market item", err, map[string]interface{}{
			"item_id": itemID,
			"name":    name,
		})
		return nil, err
	}
	return &item, nil
}

// Create 신규 아이템 전체 삽입
func (r *marketItemRepository) Create(item *model.MarketItem) error {
	if err := db.WithRetry(func() error {
		return r.db.Create(item).Error
	}); err != nil {
		logger.Error("Failed to create market item", err, map[string]interface{}{
			"item_id": item.ItemID,
			"name":    item.Name,
		})
		return err
	}
	return nil
}

// UpdatePrices 시세 필드만 갱신. 등급/아이콘/제작 정보는 건드리지 않는다.
func (r *marketItemRepository) UpdatePrices(itemID int, name string, currentMinPrice int64, recentPrice, avgPrice float64) error {
	if err := db.WithRetry(func() error {
		return r.db.Model(&model.MarketItem{}).
			Where("item_id = ? AND name = ?", itemID, name).
			Updates(map[string]interface{}{
				"current_min_price": currentMinPrice,
				"recent_price":      recentPrice,
				"avg_price":         avgPrice,
			}).Error
	}); err != nil {
		logger.Error("Failed to update market item prices", err, map[string]interface{}{
			"item_id": itemID,
			"name":    name,
		})
		return err
	}
	return nil
}

// Search 로컬 미러 조회. 제작 재료 슬롯은 name 동등 비교 self-join으로
// 현재 아이콘/최저가를 함께 해석한다.
func (r *marketItemRepository) Search(cond model.MarketSearchCondition) ([]model.MarketItemRow, error) {
	query, params := buildSearchQuery(cond)

	var rows []model.MarketItemRow
	if err := r.db.Raw(query, params...).Scan(&rows).Error; err != nil {
		logger.Error("Failed to search market items", err, map[string]interface{}{
			"keyword":       cond.Keyword,
			"category_code": cond.CategoryCode,
		})
		return nil, err
	}
	return rows, nil
}

// CountByCategory 카테고리별 행 수 (0이면 전체)
func (r *marketItemRepository) CountByCategory(categoryCode int) (int64, error) {
	var count int64
	q := r.db.Model(&model.MarketItem{})
	if categoryCode != 0 {
		q = q.Where("category_code = ?", categoryCode)
	}
	if err := q.Count(&count).Error; err != nil {
		logger.Error("Failed to count market items", err)
		return 0, err
	}
	return count, nil
}

func buildSearchQuery(cond model.MarketSearchCondition) (string, []interface{}) {
	selects := []string{
		"m.item_id",
		"m.name",
		"m.grade",
		"COALESCE(m.icon, '') AS icon",
		"m.current_min_price",
		"m.recent_price",
		"m.avg_price",
		"m.category_code",
		"COALESCE(m.item_type, '') AS item_type",
		"COALESCE(m.item_unit, 0) AS item_unit",
		"COALESCE(m.item_energy, 0) AS item_energy",
		"COALESCE(m.item_production_time, 0) AS item_production_time",
		"COALESCE(m.item_production_price, 0) AS item_production_price",
		"COALESCE(m.item_charge, 0) AS item_charge",
	}
	var joins []string
	for i := 1; i <= 6; i++ {
		selects = append(selects,
			fmt.Sprintf("COALESCE(m.item_sub%d, '') AS item_sub%d", i, i),
			fmt.Sprintf("COALESCE(m.item_sub%d_num, 0) AS item_sub%d_num", i, i),
			fmt.Sprintf("COALESCE(m.item_sub%d_unit, 0) AS item_sub%d_unit", i, i),
			fmt.Sprintf("COALESCE(sub%d.icon, '') AS item_sub%d_icon", i, i),
			fmt.Sprintf("COALESCE(sub%d.current_min_price, 0) AS item_sub%d_price", i, i),
		)
		joins = append(joins,
			fmt.Sprintf("LEFT JOIN market_items sub%d ON m.item_sub%d = sub%d.name", i, i, i))
	}
	selects = append(selects, "m.created_at", "m.updated_at")

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(selects, ", "))
	sb.WriteString(" FROM market_items m ")
	sb.WriteString(strings.Join(joins, " "))
	sb.WriteString(" WHERE 1=1")

	var params []interface{}

	if cond.CategoryCode != 0 {
		sb.WriteString(" AND m.category_code = ?")
		params = append(params, cond.CategoryCode)
		if cat, ok := model.CategoryByCode(cond.Categories, cond.CategoryCode); ok && cat.RequiredSubstring != "" {
			sb.WriteString(" AND m.name LIKE ?")
			params = append(params, "%"+cat.RequiredSubstring+"%")
		}
	} else {
		// 전체 카테고리 조회에서도 필수 포함 문자열 정책은 유지된다.
		// 정책 위반 행이 "전체" 뷰로 새어나가지 않게 한다.
		for _, cat := range cond.Categories {
			if cat.RequiredSubstring == "" {
				continue
			}
			sb.WriteString(" AND (m.category_code != ? OR m.name LIKE ?)")
			params = append(params, cat.Code, "%"+cat.RequiredSubstring+"%")
		}
	}

	if keyword := strings.TrimSpace(cond.Keyword); keyword != "" {
		sb.WriteString(" AND m.name LIKE ?")
		params = append(params, "%"+keyword+"%")
	}

	sb.WriteString(" ORDER BY m.grade ASC, m.name ASC")
	sb.WriteString(fmt.Sprintf(" LIMIT %d", searchResultLimit))

	return sb.String(), params
}
