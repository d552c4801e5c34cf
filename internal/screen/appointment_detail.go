package screen

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/lifecycle"
	"campus-services-client/internal/model"
	"campus-services-client/internal/role"
)

type AppointmentDetail struct {
	api *api.Client
	log *zap.Logger
	g   guard

	mu     sync.Mutex
	appt   *model.Appointment
	viewer model.Role
}

func NewAppointmentDetail(c *api.Client, log *zap.Logger) *AppointmentDetail {
	return &AppointmentDetail{api: c, log: log}
}

// Load fetches the appointment and the current-user profile in parallel and
// joins both before resolving the viewer's role. A load superseded by a newer
// one returns ErrStale and leaves state alone.
func (s *AppointmentDetail) Load(ctx context.Context, id string) error {
	gen := s.g.begin()

	var (
		wg    sync.WaitGroup
		appt  model.Appointment
		apErr error
		me    model.User
		meErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		appt, apErr = s.api.GetAppointment(ctx, id)
	}()
	go func() {
		defer wg.Done()
		me, meErr = s.api.Me(ctx)
	}()
	wg.Wait()

	if apErr != nil {
		return apErr
	}
	var profile *model.User
	switch {
	case meErr == nil:
		profile = &me
	case errors.Is(meErr, api.ErrUnauthenticated) || errors.Is(meErr, api.ErrNoSession):
		// invalid session is not something to guess a role around
		return meErr
	default:
		// best-effort role inference only; fall back to the default
		s.log.Debug("profile fetch failed, defaulting role", zap.Error(meErr))
	}

	if !s.g.active(gen) {
		return ErrStale
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appt = &appt
	s.viewer = role.Resolve(profile, &appt)
	return nil
}

func (s *AppointmentDetail) Appointment() *model.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appt == nil {
		return nil
	}
	cp := *s.appt
	return &cp
}

func (s *AppointmentDetail) Viewer() model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewer
}

// Actions lists the transition buttons to show.
func (s *AppointmentDetail) Actions() []lifecycle.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appt == nil {
		return nil
	}
	return lifecycle.AppointmentActions(s.appt.Status, s.viewer)
}

// Banner is the read-only status line shown when no action applies.
func (s *AppointmentDetail) Banner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appt == nil {
		return ""
	}
	return lifecycle.AppointmentBanner(s.appt.Status)
}

// Apply requests a transition. On success the entity is re-fetched in full —
// approval may also populate meetingLink/facultyNotes server-side, so the
// server's representation is ground truth, never an optimistic local edit.
// On failure local state is unchanged.
func (s *AppointmentDetail) Apply(ctx context.Context, action lifecycle.Action) error {
	s.mu.Lock()
	appt := s.appt
	viewer := s.viewer
	s.mu.Unlock()

	if appt == nil {
		return errors.New("no appointment loaded")
	}
	target, ok := action.Target()
	if !ok {
		return fmt.Errorf("unknown action %q", action)
	}
	if !lifecycle.CanTransition(appt.Status, viewer, target) {
		return fmt.Errorf("%s is not available for a %s appointment as %s", action, appt.Status, viewer)
	}

	if _, err := s.api.UpdateAppointmentStatus(ctx, appt.ID, target); err != nil {
		return err
	}
	return s.Load(ctx, appt.ID)
}
