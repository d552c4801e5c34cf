package screen

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/lifecycle"
	"campus-services-client/internal/model"
)

var ComplaintStatusFilters = []string{"all", "pending", "in_progress", "resolved", "closed"}

type ComplaintList struct {
	api *api.Client
	log *zap.Logger
	g   guard

	mu     sync.Mutex
	all    []model.Complaint
	status string
	ctype  string
}

func NewComplaintList(c *api.Client, log *zap.Logger) *ComplaintList {
	return &ComplaintList{api: c, log: log}
}

// Load fetches the viewer's complaints, or every complaint when all is set
// (staff view).
func (s *ComplaintList) Load(ctx context.Context, all bool) error {
	gen := s.g.begin()
	var (
		cs  []model.Complaint
		err error
	)
	if all {
		cs, err = s.api.ListComplaints(ctx)
	} else {
		cs, err = s.api.MyComplaints(ctx)
	}
	if err != nil {
		return err
	}
	if !s.g.active(gen) {
		return ErrStale
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = cs
	return nil
}

func (s *ComplaintList) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *ComplaintList) SetTypeFilter(ctype string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctype = ctype
}

// Visible applies both filters as exact matches.
func (s *ComplaintList) Visible() []model.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lifecycle.FilterComplaints(s.all, s.status, s.ctype)
}
