package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petconnect/petconnect/db"
)

// newTestApp wires the appointment handlers against a sqlmock-backed gorm
// connection so booking logic runs without a live database.
func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	db.DB = gdb

	app := fiber.New()
	app.Get("/appointments/availability", GetAvailability)
	app.Post("/appointments", CreateAppointment)
	return app, mock
}

func doctorRows(availability string, duration int) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "first_name", "last_name", "availability", "appointment_duration", "booking_fee", "is_active"}).
		AddRow(1, "Asha", "Karki", availability, duration, 500.0, true)
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func slotStrings(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	raw, ok := body["slots"].([]interface{})
	require.True(t, ok, "response has no slots list: %v", body)
	slots := make([]string, 0, len(raw))
	for _, s := range raw {
		slots = append(slots, s.(string))
	}
	return slots
}

func TestGetAvailabilityExcludesBookedSlots(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(doctorRows(`["Monday 9-17"]`, 30))
	mock.ExpectQuery(`SELECT "time_slot" FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"time_slot"}).AddRow("09:00-09:30"))

	// 2025-06-02 is a Monday
	resp, body := doJSON(t, app, http.MethodGet, "/appointments/availability?doctorId=1&date=2025-06-02", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	slots := slotStrings(t, body)
	assert.Len(t, slots, 15) // 16 theoretical slots minus the booked one
	assert.NotContains(t, slots, "09:00-09:30")
	assert.Contains(t, slots, "09:30-10:00")
	assert.Equal(t, "09:30-10:00", slots[0])
	assert.Equal(t, "16:30-17:00", slots[len(slots)-1])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailabilityUnavailableDayYieldsEmptyNotError(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(doctorRows(`["Monday 9-17"]`, 30))

	// 2025-06-03 is a Tuesday; no entry matches
	resp, body := doJSON(t, app, http.MethodGet, "/appointments/availability?doctorId=1&date=2025-06-03", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, slotStrings(t, body))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailabilitySkipsMalformedEntries(t *testing.T) {
	app, mock := newTestApp(t)

	// The garbage entry silently vanishes; the valid Monday entry still works.
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(doctorRows(`["whenever I feel like it", "Monday 10-12"]`, 60))
	mock.ExpectQuery(`SELECT "time_slot" FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"time_slot"}))

	resp, body := doJSON(t, app, http.MethodGet, "/appointments/availability?doctorId=1&date=2025-06-02", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, slotStrings(t, body))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailabilityInvalidInput(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/appointments/availability?doctorId=1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/appointments/availability?doctorId=1&date=junk", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAvailabilityDoctorNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, _ := doJSON(t, app, http.MethodGet, "/appointments/availability?doctorId=99&date=2025-06-02", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func bookingInput(slot string) map[string]interface{} {
	return map[string]interface{}{
		"user":                2,
		"doctor":              1,
		"date":                "2025-06-02",
		"time_slot":           slot,
		"pet_name":            "Bruno",
		"pet_type":            "dog",
		"reason":              "annual checkup",
		"location_preference": "clinic",
	}
}

func TestCreateAppointmentSuccess(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(doctorRows(`["Monday 9-17"]`, 30))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT\s+\*\s+FROM\s+appointments[\s\S]*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "first_name"}).
			AddRow(2, "owner@example.com", "Maya"))

	resp, body := doJSON(t, app, http.MethodPost, "/appointments", bookingInput("09:00-09:30"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	appointment, ok := body["appointment"].(map[string]interface{})
	require.True(t, ok, "response: %v", body)
	assert.Equal(t, "pending", appointment["status"])
	assert.Equal(t, "09:00-09:30", appointment["time_slot"])
	assert.Equal(t, float64(30), appointment["appointment_duration"])
	payment := appointment["payment"].(map[string]interface{})
	assert.Equal(t, "pending", payment["status"])
	assert.Equal(t, float64(500), payment["amount"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	input := bookingInput("09:00-09:30")
	delete(input, "pet_name")

	resp, _ := doJSON(t, app, http.MethodPost, "/appointments", input)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateAppointmentOutsideAvailability(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(doctorRows(`["Monday 9-17"]`, 30))

	// Well-formed label, but 20:00 is past the doctor's day
	resp, _ := doJSON(t, app, http.MethodPost, "/appointments", bookingInput("20:00-20:30"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateAppointmentUnavailableDay(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(doctorRows(`["Friday 9-17"]`, 30))

	resp, _ := doJSON(t, app, http.MethodPost, "/appointments", bookingInput("09:00-09:30"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateAppointmentConflict(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(doctorRows(`["Monday 9-17"]`, 30))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT\s+\*\s+FROM\s+appointments[\s\S]*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "time_slot"}).AddRow(7, "09:00-09:30"))
	mock.ExpectRollback()

	resp, body := doJSON(t, app, http.MethodPost, "/appointments", bookingInput("09:00-09:30"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, fmt.Sprint(body["message"]), "already booked")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentDuplicateKeyMapsToConflict(t *testing.T) {
	app, mock := newTestApp(t)

	// Both requests pass the conflict check; the loser of the race hits the
	// partial unique index and must still see 409, not 500.
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(doctorRows(`["Monday 9-17"]`, 30))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT\s+\*\s+FROM\s+appointments[\s\S]*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "udx_doctor_day_slot"})
	mock.ExpectRollback()

	resp, _ := doJSON(t, app, http.MethodPost, "/appointments", bookingInput("09:00-09:30"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}
