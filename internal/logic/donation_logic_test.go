package logic

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func campaignRow(id int64, currentAmount float64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(
		[]string{"id", "created_at", "updated_at", "title", "description", "goal_amount", "current_amount", "user_id"}).
		AddRow(id, now, now, "title", "description", float64(1000), currentAmount, nil)
}

func TestDonateNegativeAmount(t *testing.T) {
	sqlDB, db, _ := dbMock(t)
	defer sqlDB.Close()

	l := NewDonationLogic(db)
	_, err := l.Donate(1, -5, nil)

	assert.True(t, IsValidation(err))
}

func TestDonateCampaignNotFound(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	l := NewDonationLogic(db)
	_, err := l.Donate(99, 50, nil)

	assert.ErrorIs(t, err, ErrCampaignNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonateIncrementsCurrentAmount(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE (.+)`).
		WillReturnRows(campaignRow(3, 40))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donation" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	// 金额累加由数据库执行
	mock.ExpectExec(`UPDATE "campaign" SET (.+)current_amount(.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	userId := int64(5)
	l := NewDonationLogic(db)
	donation, err := l.Donate(3, 25, &userId)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), donation.Id)
	assert.Equal(t, int64(3), donation.CampaignId)
	assert.Equal(t, &userId, donation.UserId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonateAnonymous(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE (.+)`).
		WillReturnRows(campaignRow(3, 0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donation" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(`UPDATE "campaign" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	l := NewDonationLogic(db)
	donation, err := l.Donate(3, 10, nil)

	assert.NoError(t, err)
	assert.Nil(t, donation.UserId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonateRollsBackOnUpdateFailure(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "campaign" WHERE (.+)`).
		WillReturnRows(campaignRow(3, 40))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "donation" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(`UPDATE "campaign" SET (.+)`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	l := NewDonationLogic(db)
	_, err := l.Donate(3, 25, nil)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
