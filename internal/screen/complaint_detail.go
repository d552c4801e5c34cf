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

type ComplaintDetail struct {
	api *api.Client
	log *zap.Logger
	g   guard

	mu        sync.Mutex
	complaint *model.Complaint
	viewer    model.Role
	submitter bool
}

func NewComplaintDetail(c *api.Client, log *zap.Logger) *ComplaintDetail {
	return &ComplaintDetail{api: c, log: log}
}

// Load fetches the complaint and the current-user profile in parallel. The
// account role gates the transition controls; ownership is informational.
func (s *ComplaintDetail) Load(ctx context.Context, id string) error {
	gen := s.g.begin()

	var (
		wg    sync.WaitGroup
		cm    model.Complaint
		cmErr error
		me    model.User
		meErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cm, cmErr = s.api.GetComplaint(ctx, id)
	}()
	go func() {
		defer wg.Done()
		me, meErr = s.api.Me(ctx)
	}()
	wg.Wait()

	if cmErr != nil {
		return cmErr
	}
	var profile *model.User
	switch {
	case meErr == nil:
		profile = &me
	case errors.Is(meErr, api.ErrUnauthenticated) || errors.Is(meErr, api.ErrNoSession):
		return meErr
	default:
		s.log.Debug("profile fetch failed, defaulting role", zap.Error(meErr))
	}

	if !s.g.active(gen) {
		return ErrStale
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.complaint = &cm
	s.viewer = role.Account(profile)
	s.submitter = role.IsSubmitter(profile, &cm)
	return nil
}

func (s *ComplaintDetail) Complaint() *model.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.complaint == nil {
		return nil
	}
	cp := *s.complaint
	return &cp
}

func (s *ComplaintDetail) Viewer() model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewer
}

// IsSubmitter reports whether the viewer filed this complaint.
func (s *ComplaintDetail) IsSubmitter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitter
}

// CanUpdateStatus reports whether transition controls are shown. Submitters
// without a staff role only view.
func (s *ComplaintDetail) CanUpdateStatus() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lifecycle.CanManageComplaints(s.viewer)
}

func (s *ComplaintDetail) Transitions() []model.ComplaintStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lifecycle.ComplaintTransitions(s.viewer)
}

// SetStatus is fire-and-confirm: the confirm callback must accept the prompt
// before the PUT is issued. Declining is not an error. On success the entity
// is re-fetched; on failure local state is unchanged and there is no retry.
func (s *ComplaintDetail) SetStatus(ctx context.Context, target model.ComplaintStatus, confirm func(prompt string) bool) error {
	s.mu.Lock()
	cm := s.complaint
	viewer := s.viewer
	s.mu.Unlock()

	if cm == nil {
		return errors.New("no complaint loaded")
	}
	if !lifecycle.CanSetComplaintStatus(viewer, target) {
		return fmt.Errorf("setting status %q is not available as %s", target, viewer)
	}
	if confirm != nil && !confirm(lifecycle.ConfirmSetStatusPrompt(target)) {
		return nil
	}

	if _, err := s.api.UpdateComplaintStatus(ctx, cm.ID, target); err != nil {
		return err
	}
	return s.Load(ctx, cm.ID)
}
