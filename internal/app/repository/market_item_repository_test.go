package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/db"
	"gorm.io/gorm"
)

func setupMarketItemTest(t *testing.T) (*gorm.DB, MarketItemRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewMarketItemRepository(testDB)
	return testDB, repo
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMarketItemRepository_Create(t *testing.T) {
	testDB, repo := setupMarketItemTest(t)
	defer db.CleanupTestDB(testDB)

	item := &model.MarketItem{
		ItemID:          6861008,
		Name:            "심연의 융화 재료",
		Grade:           model.GradeRare,
		Icon:            strPtr("https://cdn.example.com/icon1.png"),
		CurrentMinPrice: 87,
		RecentPrice:     86.5,
		AvgPrice:        85.2,
		CategoryCode:    model.CategoryEnhancement,
	}

	err := repo.Create(item)
	assert.NoError(t, err)
	assert.NotZero(t, item.ID)
}

func TestMarketItemRepository_PairUniqueness(t *testing.T) {
	testDB, repo := setupMarketItemTest(t)
	defer db.CleanupTestDB(testDB)

	base := &model.MarketItem{
		ItemID:       6861008,
		Name:         "심연의 융화 재료",
		Grade:        model.GradeRare,
		CategoryCode: model.CategoryEnhancement,
	}
	require.NoError(t, repo.Create(base))

	// 같은 (item_id, name) 쌍은 거부된다
	dup := &model.MarketItem{
		ItemID:       6861008,
		Name:         "심연의 융화 재료",
		Grade:        model.GradeRare,
		CategoryCode: model.CategoryEnhancement,
	}
	assert.Error(t, repo.Create(dup))

	// 같은 item_id라도 이름이 다르면 별개의 행이다
	other := &model.MarketItem{
		ItemID:       6861008,
		Name:         "빛나는 융화 재료",
		Grade:        model.GradeEpic,
		CategoryCode: model.CategoryEnhancement,
	}
	assert.NoError(t, repo.Create(other))
}

func TestMarketItemRepository_FindByItemIDAndName(t *testing.T) {
	testDB, repo := setupMarketItemTest(t)
	defer db.CleanupTestDB(testDB)

	item := &model.MarketItem{
		ItemID:       6882101,
		Name:         "최상급 오레하 융화 재료",
		Grade:        model.GradeEpic,
		CategoryCode: model.CategoryEnhancement,
	}
	require.NoError(t, repo.Create(item))

	found, err := repo.FindByItemIDAndName(6882101, "최상급 오레하 융화 재료")
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, item.ID, found.ID)

	// 없는 쌍은 오류 없이 nil
	missing, err := repo.FindByItemIDAndName(6882101, "없는 아이템")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMarketItemRepository_UpdatePrices(t *testing.T) {
	testDB, repo := setupMarketItemTest(t)
	defer db.CleanupTestDB(testDB)

	item := &model.MarketItem{
		ItemID:          6861008,
		Name:            "심연의 융화 재료",
		Grade:           model.GradeRare,
		Icon:            strPtr("https://cdn.example.com/icon1.png"),
		CurrentMinPrice: 87,
		RecentPrice:     86.5,
		AvgPrice:        85.2,
		CategoryCode:    model.CategoryEnhancement,
		ItemType:        strPtr("제작"),
		ItemSub1:        strPtr("들꽃"),
		ItemSub1Num:     intPtr(52),
	}
	require.NoError(t, repo.Create(item))

	err := repo.UpdatePrices(6861008, "심연의 융화 재료", 91, 90.3, 88.7)
	assert.NoError(t, err)

	updated, err := repo.FindByItemIDAndName(6861008, "심연의 융화 재료")
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, int64(91), updated.CurrentMinPrice)
	assert.Equal(t, 90.3, updated.RecentPrice)
	assert.Equal(t, 88.7, updated.AvgPrice)

	// 시세 외 필드는 보존된다
	assert.Equal(t, model.GradeRare, updated.Grade)
	require.NotNil(t, updated.Icon)
	assert.Equal(t, "https://cdn.example.com/icon1.png", *updated.Icon)
	require.NotNil(t, updated.ItemType)
	assert.Equal(t, "제작", *updated.ItemType)
	require.NotNil(t, updated.ItemSub1)
	assert.Equal(t, "들꽃", *updated.ItemSub1)
	require.NotNil(t, updated.ItemSub1Num)
	assert.Equal(t, 52, *updated.ItemSub1Num)
}

func TestMarketItemRepository_SearchByCategoryAndKeyword(t *testing.T) {
	testDB, repo := setupMarketItemTest(t)
	defer db.CleanupTestDB(testDB)

	categories := model.MarketCategories("융화")

	items := []*model.MarketItem{
		{ItemID: 1, Name: "심연의 융화 재료", Grade: model.GradeRare, CategoryCode: model.CategoryEnhancement},
		{ItemID: 2, Name: "파괴석 결정", Grade: model.GradeNormal, CategoryCode: model.CategoryEnhancement},
		{ItemID: 3, Name: "회복약", Grade: model.GradeNormal, CategoryCode: model.CategoryBattleItem},
		{ItemID: 4, Name: "모닥불 스테이크", Grade: model.GradeUncommon, CategoryCode: model.CategoryCooking},
	}
	for _, item := range items {
		require.NoError(t, repo.Create(item))
	}

	// 강화재료 카테고리 조회는 필수 포함 문자열을 강제한다
	rows, err := repo.Search(model.MarketSearchCondition{
		CategoryCode: model.CategoryEnhancement,
		Categories:   categories,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "심연의 융화 재료", rows[0].Name)

	// 전체 카테고리 조회에서도 정책 위반 행은 새어나가지 않는다
	rows, err = repo.Search(model.MarketSearchCondition{
		Categories: categories,
	})
	require.NoError(t, err)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	assert.NotContains(t, names, "파괴석 결정")
	assert.Contains(t, names, "심연의 융화 재료")
	assert.Contains(t, names, "회복약")
	assert.Contains(t, names, "모닥불 스테이크")

	// 키워드는 부분 일치
	rows, err = repo.Search(model.MarketSearchCondition{
		Keyword:    "스테이크",
		Categories: categories,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "모닥불 스테이크", rows[0].Name)
}

func TestMarketItemRepository_SearchResolvesCraftingSlots(t *testing.T) {
	testDB, repo := setupMarketItemTest(t)
	defer db.CleanupTestDB(testDB)

	categories := model.MarketCategories("융화")

	// 재료로 쓰이는 아이템
	ingredient := &model.MarketItem{
		ItemID:          101,
		Name:            "들꽃",
		Grade:           model.GradeNormal,
		Icon:            strPtr("https://cdn.example.com/flower.png"),
		CurrentMinPrice: 3,
		CategoryCode:    model.CategoryCooking,
	}
	require.NoError(t, repo.Create(ingredient))

	// 재료 슬롯 하나가 채워진 제작 아이템
	crafted := &model.MarketItem{
		ItemID:       102,
		Name:         "모닥불 스테이크",
		Grade:        model.GradeUncommon,
		CategoryCode: model.CategoryCooking,
		ItemSub1:     strPtr("들꽃"),
		ItemSub1Num:  intPtr(52),
		ItemSub1Unit: intPtr(1),
	}
	require.NoError(t, repo.Create(crafted))

	rows, err := repo.Search(model.MarketSearchCondition{
		Keyword:    "스테이크",
		Categories: categories,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "들꽃", row.ItemSub1)
	assert.Equal(t, 52, row.ItemSub1Num)
	assert.Equal(t, "https://cdn.example.com/flower.png", row.ItemSub1Icon)
	assert.Equal(t, float64(3), row.ItemSub1Price)

	// 미등록 재료 슬롯은 빈 값으로 해석된다
	assert.Equal(t, "", row.ItemSub2)
	assert.Equal(t, float64(0), row.ItemSub2Price)
}

func TestMarketItemRepository_CountByCategory(t *testing.T) {
	testDB, repo := setupMarketItemTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(&model.MarketItem{ItemID: 1, Name: "회복약", Grade: model.GradeNormal, CategoryCode: model.CategoryBattleItem}))
	require.NoError(t, repo.Create(&model.MarketItem{ItemID: 2, Name: "수류탄", Grade: model.GradeNormal, CategoryCode: model.CategoryBattleItem}))
	require.NoError(t, repo.Create(&model.MarketItem{ItemID: 3, Name: "들꽃", Grade: model.GradeNormal, CategoryCode: model.CategoryCooking}))

	count, err := repo.CountByCategory(model.CategoryBattleItem)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	total, err := repo.CountByCategory(0)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
