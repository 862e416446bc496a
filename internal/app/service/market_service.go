package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/app/repository"
	"github.com/wednes/wednes-backend/internal/cache"
	"github.com/wednes/wednes-backend/pkg/logger"
	"github.com/wednes/wednes-backend/pkg/lostark"
	"github.com/xuri/excelize/v2"
)

var (
	ErrMarketSearchFailed = errors.New("거래소 데이터를 조회하는데 실패했습니다")
)

// maxPagesPerCategory 카테고리당 페이지 수 안전 상한.
// 종료 조건은 빈 페이지/짧은 페이지지만, 업스트림 이상 동작 시
// 비용이 무한히 늘지 않도록 상한을 둔다.
const maxPagesPerCategory = 50

// MarketAPI 업스트림 거래소 검색 인터페이스
type MarketAPI interface {
	SearchMarketItems(ctx context.Context, req lostark.MarketSearchRequest) (*lostark.MarketSearchResponse, error)
}

// CategoryCollectResult 카테고리 한 건의 수집 결과
type CategoryCollectResult struct {
	CategoryCode int    `json:"category_code"`
	CategoryName string `json:"category_name"`
	Pages        int    `json:"pages"`
	Processed    int    `json:"processed"`
	Inserted     int    `json:"inserted"`
	Updated      int    `json:"updated"`
	PriceChanged int    `json:"price_changed"`
	Skipped      int    `json:"skipped"`
	Error        string `json:"error,omitempty"`
}

// CollectResult 전체 카테고리 수집 집계.
// 일부 카테고리가 실패해도 나머지는 계속 진행한다 (부분 성공).
type CollectResult struct {
	Processed    int                     `json:"processed"`
	Inserted     int                     `json:"inserted"`
	Updated      int                     `json:"updated"`
	PriceChanged int                     `json:"price_changed"`
	Skipped      int                     `json:"skipped"`
	Categories   []CategoryCollectResult `json:"categories"`
}

// MarketServiceConfig 거래소 서비스 설정
type MarketServiceConfig struct {
	PageSize          int
	PageDelay         time.Duration
	CacheTTL          time.Duration
	EnhancementFilter string
	Clock             func() time.Time
}

// MarketService 거래소 수집/조회 서비스 인터페이스
type MarketService interface {
	Categories() []model.MarketCategory
	CollectAll(ctx context.Context) *CollectResult
	CollectCategory(ctx context.Context, category model.MarketCategory, pageSize int) CategoryCollectResult
	SearchItems(ctx context.Context, keyword string, categoryCode int) (*model.MarketSearchResult, error)
	ExportItems(keyword string, categoryCode int) (*excelize.File, error)
}

type marketService struct {
	repo       repository.MarketItemRepository
	api        MarketAPI
	cache      *cache.TTLCache
	categories []model.MarketCategory
	pageSize   int
	pageDelay  time.Duration
	clock      func() time.Time
}

// NewMarketService 거래소 서비스 생성
func NewMarketService(repo repository.MarketItemRepository, api MarketAPI, cfg MarketServiceConfig) MarketService {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &marketService{
		repo:       repo,
		api:        api,
		cache:      cache.New(cfg.CacheTTL, clock),
		categories: model.MarketCategories(cfg.EnhancementFilter),
		pageSize:   pageSize,
		pageDelay:  cfg.PageDelay,
		clock:      clock,
	}
}

// Categories 수집 대상 카테고리 목록
func (s *marketService) Categories() []model.MarketCategory {
	return s.categories
}

// CollectAll 전체 카테고리 수집. 카테고리별로 병렬 실행하며 공유 상태는
// 데이터베이스뿐이다. 카테고리 간 순서는 보장하지 않는다.
func (s *marketService) CollectAll(ctx context.Context) *CollectResult {
	results := make([]CategoryCollectResult, len(s.categories))

	var wg sync.WaitGroup
	for i, category := range s.categories {
		wg.Add(1)
		go func(idx int, cat model.MarketCategory) {
			defer wg.Done()
			results[idx] = s.CollectCategory(ctx, cat, s.pageSize)
		}(i, category)
	}
	wg.Wait()

	total := &CollectResult{Categories: results}
	for _, r := range results {
		total.Processed += r.Processed
		total.Inserted += r.Inserted
		total.Updated += r.Updated
		total.PriceChanged += r.PriceChanged
		total.Skipped += r.Skipped
	}

	logger.Info("Market collection completed", map[string]interface{}{
		"processed":     total.Processed,
		"inserted":      total.Inserted,
		"updated":       total.Updated,
		"price_changed": total.PriceChanged,
	})
	return total
}

// CollectCategory 한 카테고리의 페이지네이션 수집.
// 페이지는 1부터 오름차순으로만 진행한다. 빈 페이지면 종료하고,
// 요청한 크기보다 적게 돌아온 페이지는 이전 페이지에서 요청 크기가
// 그대로 반환된 적이 있을 때만 마지막 페이지로 간주한다
// (업스트림이 페이지 크기를 말없이 줄일 수 있기 때문).
func (s *marketService) CollectCategory(ctx context.Context, category model.MarketCategory, pageSize int) CategoryCollectResult {
	result := CategoryCollectResult{
		CategoryCode: category.Code,
		CategoryName: category.Name,
	}

	sizeHonored := false
	for pageNo := 1; pageNo <= maxPagesPerCategory; pageNo++ {
		if pageNo > 1 {
			if err := s.wait(ctx); err != nil {
				result.Error = err.Error()
				return result
			}
		}

		resp, err := s.api.SearchMarketItems(ctx, lostark.MarketSearchRequest{
			Sort:          "GRADE",
			CategoryCode:  category.Code,
			ItemName:      category.RequiredSubstring,
			PageNo:        pageNo,
			PageSize:      pageSize,
			SortCondition: "ASC",
		})
		if err != nil {
			logger.Error("Failed to fetch market page, aborting category", err, map[string]interface{}{
				"category": category.Name,
				"page":     pageNo,
			})
			result.Error = err.Error()
			return result
		}
		result.Pages++

		for _, raw := range resp.Items {
			// 업스트림 측 ItemName 필터와 별개로 클라이언트 측에서도
			// 카테고리 정책을 강제한다 (정책 위반 행은 저장 전에 걸러냄)
			if !category.Matches(raw.Name) {
				result.Skipped++
				continue
			}
			action, priceChanged, err := s.reconcileItem(raw, category.Code)
			if err != nil {
				logger.Error("Failed to reconcile market item", err, map[string]interface{}{
					"item_id": raw.ID,
					"name":    raw.Name,
				})
				continue
			}
			switch action {
			case reconcileInserted:
				result.Inserted++
				result.Processed++
			case reconcileUpdated:
				result.Updated++
				result.Processed++
				if priceChanged {
					result.PriceChanged++
				}
			case reconcileSkipped:
				result.Skipped++
			}
		}

		if len(resp.Items) == 0 {
			break
		}
		if len(resp.Items) < pageSize {
			if sizeHonored {
				break
			}
			// 요청 크기가 한 번도 그대로 반환된 적이 없으면 업스트림이
			// 크기를 줄여 응답했을 수 있다. 다음 페이지가 비어 있는지로
			// 종료를 확정한다.
			continue
		}
		sizeHonored = true
	}

	return result
}

type reconcileAction int

const (
	reconcileSkipped reconcileAction = iota
	reconcileInserted
	reconcileUpdated
)

// reconcileItem 업스트림 레코드 한 건을 로컬 미러와 대조한다.
// (item_id, name) 쌍으로 기존 행을 찾아 있으면 시세 필드만 갱신하고,
// 없으면 전체 삽입한다. 같은 레코드를 두 번 적용해도 결과는 같다.
func (s *marketService) reconcileItem(raw lostark.MarketItem, categoryCode int) (reconcileAction, bool, error) {
	if strings.TrimSpace(raw.Name) == "" {
		logger.Warn("Skipping market item without name", map[string]interface{}{
			"item_id":       raw.ID,
			"category_code": categoryCode,
		})
		return reconcileSkipped, false, nil
	}

	existing, err := s.repo.FindByItemIDAndName(raw.ID, raw.Name)
	if err != nil {
		return reconcileSkipped, false, err
	}

	if existing != nil {
		priceChanged := existing.CurrentMinPrice != raw.CurrentMinPrice
		if priceChanged {
			logger.Debug("Market price changed", map[string]interface{}{
				"name":      raw.Name,
				"old_price": existing.CurrentMinPrice,
				"new_price": raw.CurrentMinPrice,
			})
		}
		if err := s.repo.UpdatePrices(raw.ID, raw.Name, raw.CurrentMinPrice, raw.RecentPrice, raw.YDayAvgPrice); err != nil {
			return reconcileSkipped, false, err
		}
		return reconcileUpdated, priceChanged, nil
	}

	item := &model.MarketItem{
		ItemID:          raw.ID,
		Name:            raw.Name,
		Grade:           raw.Grade,
		CurrentMinPrice: raw.CurrentMinPrice,
		RecentPrice:     raw.RecentPrice,
		AvgPrice:        raw.YDayAvgPrice,
		CategoryCode:    categoryCode,
	}
	if item.Grade == "" {
		item.Grade = model.GradeNormal
	}
	if raw.Icon != "" {
		icon := raw.Icon
		item.Icon = &icon
	}
	if err := s.repo.Create(item); err != nil {
		return reconcileSkipped, false, err
	}
	return reconcileInserted, false, nil
}

// SearchItems 로컬 미러 조회. 조회 전에 시간 버킷 기반으로 카테고리
// 하나를 골라 기회적으로 갱신해 배치 트리거 없이도 데이터가 크게
// 묵지 않게 한다. 갱신 실패는 조회 실패가 아니다.
func (s *marketService) SearchItems(ctx context.Context, keyword string, categoryCode int) (*model.MarketSearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	cacheKey := fmt.Sprintf("market:%d:%s", categoryCode, keyword)

	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*model.MarketSearchResult), nil
	}

	s.refreshRotatingCategory(ctx)

	rows, err := s.repo.Search(model.MarketSearchCondition{
		Keyword:      keyword,
		CategoryCode: categoryCode,
		Categories:   s.categories,
	})
	if err != nil {
		logger.Error("Failed to search market items", err)
		return nil, ErrMarketSearchFailed
	}

	result := &model.MarketSearchResult{
		TotalCount: len(rows),
		Items:      rows,
	}
	s.cache.Set(cacheKey, result)
	return result, nil
}

// refreshRotatingCategory 분 단위 시간 버킷으로 카테고리 하나를 골라
// 한 번의 제한된 수집을 수행한다. 모든 읽기가 전체 수집 비용을 내는
// 대신 시간이 지나며 staleness가 카테고리 전체에 분산된다.
func (s *marketService) refreshRotatingCategory(ctx context.Context) {
	if len(s.categories) == 0 {
		return
	}
	bucket := s.clock().Unix() / 60
	category := s.categories[int(bucket)%len(s.categories)]

	result := s.CollectCategory(ctx, category, s.pageSize)
	if result.Error != "" {
		logger.Warn("Opportunistic refresh failed, serving local mirror", map[string]interface{}{
			"category": category.Name,
			"error":    result.Error,
		})
		return
	}
	logger.Debug("Opportunistic refresh completed", map[string]interface{}{
		"category":      category.Name,
		"processed":     result.Processed,
		"price_changed": result.PriceChanged,
	})
}

// ExportItems 조회 결과를 엑셀 파일로 빌드한다. 미러만 읽는다.
func (s *marketService) ExportItems(keyword string, categoryCode int) (*excelize.File, error) {
	rows, err := s.repo.Search(model.MarketSearchCondition{
		Keyword:      strings.TrimSpace(keyword),
		CategoryCode: categoryCode,
		Categories:   s.categories,
	})
	if err != nil {
		return nil, ErrMarketSearchFailed
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"아이템 ID", "이름", "등급", "카테고리", "최저가", "최근 거래가", "전일 평균가", "갱신 시각"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		categoryName := fmt.Sprintf("%d", row.CategoryCode)
		if cat, ok := model.CategoryByCode(s.categories, row.CategoryCode); ok {
			categoryName = cat.Name
		}
		values := []interface{}{
			row.ItemID,
			row.Name,
			row.Grade,
			categoryName,
			row.CurrentMinPrice,
			row.RecentPrice,
			row.AvgPrice,
			row.UpdatedAt.Format(time.RFC3339),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

// wait 페이지 요청 사이의 의도적 대기. 업스트림 rate limit 보호용이다.
func (s *marketService) wait(ctx context.Context) error {
	if s.pageDelay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.pageDelay):
		return nil
	}
}
