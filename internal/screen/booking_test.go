package screen_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campus-services-client/internal/model"
	"campus-services-client/internal/screen"
)

func validBooking() screen.BookingForm {
	return screen.BookingForm{
		FacultyID: "F1",
		Date:      "2026-09-10",
		Time:      "14:30",
		Duration:  30,
		Reason:    "thesis discussion",
	}
}

func TestBookingValidationBlocksNetwork(t *testing.T) {
	var hits atomic.Int64
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	b := screen.NewBooking(c, zap.NewNop())

	cases := []struct {
		name    string
		mutate  func(*screen.BookingForm)
		message string
	}{
		{"empty reason", func(f *screen.BookingForm) { f.Reason = "   " }, "Please enter a reason"},
		{"missing date", func(f *screen.BookingForm) { f.Date = "" }, "Please select a date"},
		{"bad date", func(f *screen.BookingForm) { f.Date = "10/09/2026" }, "Date must be in YYYY-MM-DD format"},
		{"missing time", func(f *screen.BookingForm) { f.Time = "" }, "Please select a time"},
		{"bad time", func(f *screen.BookingForm) { f.Time = "2pm" }, "Time must be in HH:MM format"},
		{"bad duration", func(f *screen.BookingForm) { f.Duration = 25 }, "Duration must be 15, 30, 45 or 60 minutes"},
		{"missing faculty", func(f *screen.BookingForm) { f.FacultyID = "" }, "Missing faculty reference"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validBooking()
			tc.mutate(&form)

			_, err := b.Submit(context.Background(), form)
			var verr *screen.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Message)
		})
	}
	assert.Zero(t, hits.Load(), "invalid bookings must never reach the network")
}

func TestBookingSubmit(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/appointments", r.URL.Path)
		writeOK(w, model.Appointment{ID: "A1", Status: model.AppointmentPending, Date: "2026-09-10"})
	}))

	a, err := screen.NewBooking(c, zap.NewNop()).Submit(context.Background(), validBooking())
	require.NoError(t, err)
	assert.Equal(t, "A1", a.ID)
	assert.Equal(t, model.AppointmentPending, a.Status)
}

func TestBookingServerRejection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFail(w, http.StatusConflict, "Faculty is not available at that time")
	}))

	_, err := screen.NewBooking(c, zap.NewNop()).Submit(context.Background(), validBooking())
	require.Error(t, err)
	assert.Equal(t, "Faculty is not available at that time", err.Error())
}
