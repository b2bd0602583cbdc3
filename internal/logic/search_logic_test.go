package logic

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/andrew21-mch/crowdfunding-api/internal/cache"
	"github.com/stretchr/testify/assert"
)

func searchRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(
		[]string{"id", "created_at", "updated_at", "title", "description", "goal_amount", "current_amount", "user_id"}).
		AddRow(int64(1), now, now, "Clean Water", "Build wells", float64(5000), float64(120), nil)
}

func TestFingerprintDistinguishesFilterFields(t *testing.T) {
	// 同一个值出现在不同过滤字段上必须得到不同的键
	assert.NotEqual(t, Fingerprint("water", ""), Fingerprint("", "water"))
	assert.Equal(t, Fingerprint("water", "wells"), Fingerprint("water", "wells"))
}

func TestSearchCampaignsCachesResult(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	// 只预期一次查询，第二次调用必须命中缓存
	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE title ILIKE (.+)`).
		WillReturnRows(searchRows())

	l := NewSearchLogic(db, cache.New(), time.Minute)

	first, err := l.SearchCampaigns("water", "")
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := l.SearchCampaigns("water", "")
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCampaignsDistinctFiltersDistinctEntries(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE title ILIKE (.+)`).
		WillReturnRows(searchRows())
	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE description ILIKE (.+)`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "created_at", "updated_at", "title", "description", "goal_amount", "current_amount", "user_id"}))

	l := NewSearchLogic(db, cache.New(), time.Minute)

	byTitle, err := l.SearchCampaigns("water", "")
	assert.NoError(t, err)
	assert.Len(t, byTitle, 1)

	byDescription, err := l.SearchCampaigns("", "water")
	assert.NoError(t, err)
	assert.Len(t, byDescription, 0)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCampaignsRecomputesAfterExpiry(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE title ILIKE (.+)`).
		WillReturnRows(searchRows())
	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE title ILIKE (.+)`).
		WillReturnRows(searchRows())

	l := NewSearchLogic(db, cache.New(), 10*time.Millisecond)

	_, err := l.SearchCampaigns("water", "")
	assert.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = l.SearchCampaigns("water", "")
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCampaignsNoFilters(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign"`).
		WillReturnRows(searchRows())

	l := NewSearchLogic(db, cache.New(), time.Minute)

	campaigns, err := l.SearchCampaigns("", "")
	assert.NoError(t, err)
	assert.Len(t, campaigns, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
