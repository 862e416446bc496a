package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wednes/wednes-backend/internal/app/repository"
	"github.com/wednes/wednes-backend/internal/db"
	"github.com/wednes/wednes-backend/pkg/lostark"
	"gorm.io/gorm"
)

// stubContentAPI 소스별 응답/실패를 설정할 수 있는 업스트림 스텁
type stubContentAPI struct {
	notices  []lostark.Notice
	events   []lostark.Event
	alarms   []lostark.Alarm
	calendar []lostark.GameContent

	noticesErr  error
	eventsErr   error
	alarmsErr   error
	calendarErr error
}

func (s *stubContentAPI) GetNotices(ctx context.Context) ([]lostark.Notice, error) {
	return s.notices, s.noticesErr
}

func (s *stubContentAPI) GetEvents(ctx context.Context) ([]lostark.Event, error) {
	return s.events, s.eventsErr
}

func (s *stubContentAPI) GetAlarms(ctx context.Context) ([]lostark.Alarm, error) {
	return s.alarms, s.alarmsErr
}

func (s *stubContentAPI) GetGameCalendar(ctx context.Context) ([]lostark.GameContent, error) {
	return s.calendar, s.calendarErr
}

func setupContentServiceTest(t *testing.T, api ContentAPI) (*gorm.DB, ContentService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := repository.NewContentRepository(testDB)
	return testDB, NewContentService(repo, api)
}

func TestContentService_CollectAll(t *testing.T) {
	api := &stubContentAPI{
		notices: []lostark.Notice{{Title: "점검 안내", Date: "2026-08-27"}},
		events:  []lostark.Event{{Title: "여름 이벤트", StartDate: "2026-08-01", EndDate: "2026-08-31"}},
		alarms:  []lostark.Alarm{{AlarmType: "점검", Contents: "서버 점검", StartDate: "2026-08-27"}},
		calendar: []lostark.GameContent{{
			CategoryName: "카오스게이트",
			ContentsName: "카오스게이트",
			MinItemLevel: 1415,
			StartTimes:   []string{"2026-08-30T21:00:00"},
		}},
	}

	testDB, svc := setupContentServiceTest(t, api)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, svc.CollectAll(context.Background()))

	notices, err := svc.GetNotices()
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "점검 안내", notices[0].Title)

	events, err := svc.GetEvents()
	require.NoError(t, err)
	assert.Len(t, events, 1)

	alarms, err := svc.GetAlarms()
	require.NoError(t, err)
	assert.Len(t, alarms, 1)

	calendar, err := svc.GetCalendar()
	require.NoError(t, err)
	require.Len(t, calendar, 1)
	assert.Equal(t, `["2026-08-30T21:00:00"]`, calendar[0].StartTimes)
}

func TestContentService_CollectAll_SourceFailureKeepsMirror(t *testing.T) {
	api := &stubContentAPI{
		notices: []lostark.Notice{{Title: "점검 안내", Date: "2026-08-27"}},
		events:  []lostark.Event{{Title: "여름 이벤트"}},
	}

	testDB, svc := setupContentServiceTest(t, api)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, svc.CollectAll(context.Background()))

	// 공지 소스만 죽은 두 번째 수집
	api.noticesErr = errors.New("upstream unavailable")
	api.events = []lostark.Event{{Title: "가을 이벤트"}}

	require.NoError(t, svc.CollectAll(context.Background()))

	// 실패한 소스의 미러는 그대로, 성공한 소스는 교체된다
	notices, err := svc.GetNotices()
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "점검 안내", notices[0].Title)

	events, err := svc.GetEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "가을 이벤트", events[0].Title)
}

func TestContentService_CollectAll_TruncatesToLimit(t *testing.T) {
	var notices []lostark.Notice
	for i := 0; i < contentFetchLimit+10; i++ {
		notices = append(notices, lostark.Notice{Title: "공지", Date: "2026-08-27"})
	}
	api := &stubContentAPI{notices: notices}

	testDB, svc := setupContentServiceTest(t, api)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, svc.CollectAll(context.Background()))

	stored, err := svc.GetNotices()
	require.NoError(t, err)
	assert.Len(t, stored, contentFetchLimit)
}
