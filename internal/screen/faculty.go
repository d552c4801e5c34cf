package screen

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/model"
)

type FacultyDirectory struct {
	api *api.Client
	log *zap.Logger
	g   guard

	mu    sync.Mutex
	all   []model.Faculty
	query string
}

func NewFacultyDirectory(c *api.Client, log *zap.Logger) *FacultyDirectory {
	return &FacultyDirectory{api: c, log: log}
}

func (s *FacultyDirectory) Load(ctx context.Context) error {
	gen := s.g.begin()
	fs, err := s.api.ListFaculty(ctx)
	if err != nil {
		return err
	}
	if !s.g.active(gen) {
		return ErrStale
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = fs
	return nil
}

func (s *FacultyDirectory) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// Visible filters client-side over name, department, email and designation,
// case-insensitive substring.
func (s *FacultyDirectory) Visible() []model.Faculty {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(s.query))
	if q == "" {
		return s.all
	}
	var out []model.Faculty
	for _, f := range s.all {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Department), q) ||
			strings.Contains(strings.ToLower(f.Email), q) ||
			strings.Contains(strings.ToLower(f.Designation), q) {
			out = append(out, f)
		}
	}
	return out
}
