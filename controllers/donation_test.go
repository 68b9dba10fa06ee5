package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func donationRow(id, charityID uint, amount float64, status string) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "charity_id", "charity_name", "amount", "status"}).
		AddRow(id, charityID, "Nepal Animal Shelter", amount, status)
}

func TestVerifyDonationSuccessRefreshesCampaign(t *testing.T) {
	app, mock := newTestApp(t)
	app.Post("/charity/verify", VerifyDonation)

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(donationRow(3, 9, 1000, "pending"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "charities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "goal", "raised"}).
			AddRow(9, "Nepal Animal Shelter", 50000, 2500))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3500))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "charities" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, body := doJSON(t, app, http.MethodPost, "/charity/verify", map[string]interface{}{
		"donation_id": 3,
		"status":      "success",
		"ref_id":      "0007XYZ",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "0007XYZ", body["esewa_ref_id"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyDonationFailureDoesNotTouchCampaign(t *testing.T) {
	app, mock := newTestApp(t)
	app.Post("/charity/verify", VerifyDonation)

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(donationRow(4, 9, 1000, "pending"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, body := doJSON(t, app, http.MethodPost, "/charity/verify", map[string]interface{}{
		"donation_id": 4,
		"status":      "failure",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "failed", body["status"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyDonationUnknownID(t *testing.T) {
	app, mock := newTestApp(t)
	app.Post("/charity/verify", VerifyDonation)

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, _ := doJSON(t, app, http.MethodPost, "/charity/verify", map[string]interface{}{
		"donation_id": 99,
		"status":      "success",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
