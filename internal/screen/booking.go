package screen

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/model"
)

// BookingForm is the appointment-creation input. The faculty reference comes
// from the navigation parameter, not user input.
type BookingForm struct {
	FacultyID string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM, 24h
	Duration  int    // minutes
	Reason    string
}

// Validate performs presence/format checks only. Scheduling conflicts and
// faculty availability are the backend's business and come back through the
// envelope message.
func (f BookingForm) Validate() error {
	if f.FacultyID == "" {
		return &ValidationError{Field: "faculty", Message: "Missing faculty reference"}
	}
	if f.Date == "" {
		return &ValidationError{Field: "date", Message: "Please select a date"}
	}
	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		return &ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"}
	}
	if f.Time == "" {
		return &ValidationError{Field: "time", Message: "Please select a time"}
	}
	if _, err := time.Parse("15:04", f.Time); err != nil {
		return &ValidationError{Field: "time", Message: "Time must be in HH:MM format"}
	}
	if !model.ValidDuration(f.Duration) {
		return &ValidationError{Field: "duration", Message: "Duration must be 15, 30, 45 or 60 minutes"}
	}
	if strings.TrimSpace(f.Reason) == "" {
		return &ValidationError{Field: "reason", Message: "Please enter a reason"}
	}
	return nil
}

type Booking struct {
	api *api.Client
	log *zap.Logger
}

func NewBooking(c *api.Client, log *zap.Logger) *Booking {
	return &Booking{api: c, log: log}
}

// Submit validates locally first; an invalid form never reaches the network.
func (b *Booking) Submit(ctx context.Context, f BookingForm) (model.Appointment, error) {
	if err := f.Validate(); err != nil {
		return model.Appointment{}, err
	}
	return b.api.CreateAppointment(ctx, api.BookingRequest{
		FacultyID: f.FacultyID,
		Date:      f.Date,
		Time:      f.Time,
		Duration:  f.Duration,
		Reason:    strings.TrimSpace(f.Reason),
	})
}
