package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharityRaisedClampedToGoal(t *testing.T) {
	ch := &Charity{Goal: 50000, Raised: 60000}
	require.NoError(t, ch.BeforeSave(nil))
	assert.Equal(t, float64(50000), ch.Raised)

	ch = &Charity{Goal: 50000, Raised: 40000}
	require.NoError(t, ch.BeforeSave(nil))
	assert.Equal(t, float64(40000), ch.Raised)
}

func TestAppointmentDefaultsOnCreate(t *testing.T) {
	a := &Appointment{}
	require.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, PaymentPending, a.Payment.Status)

	a = &Appointment{Status: StatusConfirmed, Payment: Payment{Status: PaymentPaid}}
	require.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, StatusConfirmed, a.Status)
	assert.Equal(t, PaymentPaid, a.Payment.Status)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("rescheduled"))
	assert.False(t, ValidStatus(""))
}
