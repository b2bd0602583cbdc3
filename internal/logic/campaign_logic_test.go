package logic

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCreateCampaignValidation(t *testing.T) {
	sqlDB, db, _ := dbMock(t)
	defer sqlDB.Close()

	l := NewCampaignLogic(db)

	cases := []struct {
		name        string
		title       string
		description string
		goalAmount  float64
	}{
		{"空标题", "", "description", 100},
		{"空描述", "title", "", 100},
		{"负目标金额", "title", "description", -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.CreateCampaign(1, tc.title, tc.description, tc.goalAmount)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "campaign" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	l := NewCampaignLogic(db)
	campaign, err := l.CreateCampaign(1, "Clean Water", "Build wells", 5000)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), campaign.Id)
	assert.Equal(t, float64(0), campaign.CurrentAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCampaignNotFound(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	l := NewCampaignLogic(db)
	_, err := l.GetCampaign(99)

	assert.ErrorIs(t, err, ErrCampaignNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCampaignKeepsCurrentAmount(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "created_at", "updated_at", "title", "description", "goal_amount", "current_amount", "user_id"}).
			AddRow(int64(3), now, now, "Old title", "Old description", float64(100), float64(40), nil))
	mock.ExpectBegin()
	// 只更新 title、description、goal_amount
	mock.ExpectExec(`UPDATE "campaign" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	l := NewCampaignLogic(db)
	campaign, err := l.UpdateCampaign(3, "New title", "New description", 200)

	assert.NoError(t, err)
	assert.Equal(t, float64(40), campaign.CurrentAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCampaignCascadesDonations(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "created_at", "updated_at", "title", "description", "goal_amount", "current_amount", "user_id"}).
			AddRow(int64(3), now, now, "title", "description", float64(100), float64(40), nil))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "donation" WHERE campaign_id (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "campaign" WHERE (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	l := NewCampaignLogic(db)
	err := l.DeleteCampaign(3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCampaignNotFound(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	l := NewCampaignLogic(db)
	err := l.DeleteCampaign(42)

	assert.ErrorIs(t, err, ErrCampaignNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
