package screen

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/lifecycle"
	"campus-services-client/internal/model"
)

// AppointmentFilters are the list chips, in display order. "rejected" is a
// bucket that also surfaces cancelled entries.
var AppointmentFilters = []string{"all", "pending", "approved", "completed", "rejected", "cancelled"}

type AppointmentList struct {
	api *api.Client
	log *zap.Logger
	g   guard

	mu     sync.Mutex
	all    []model.Appointment
	filter string
}

func NewAppointmentList(c *api.Client, log *zap.Logger) *AppointmentList {
	return &AppointmentList{api: c, log: log}
}

// Load fetches the viewer's appointments, or every appointment when all is
// set (admin view).
func (s *AppointmentList) Load(ctx context.Context, all bool) error {
	gen := s.g.begin()
	var (
		apts []model.Appointment
		err  error
	)
	if all {
		apts, err = s.api.ListAppointments(ctx)
	} else {
		apts, err = s.api.MyAppointments(ctx)
	}
	if err != nil {
		return err
	}
	if !s.g.active(gen) {
		return ErrStale
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = apts
	return nil
}

func (s *AppointmentList) SetFilter(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

// Visible applies the current filter bucket.
func (s *AppointmentList) Visible() []model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lifecycle.FilterAppointments(s.all, s.filter)
}
