package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/model"
)

type ComplaintForm struct {
	Type        model.ComplaintType
	Title       string
	Description string
	Location    string
	Building    string
	Floor       string
	Priority    model.Priority // defaults to medium
}

func (f ComplaintForm) Validate() error {
	if f.Type == "" || !model.ValidComplaintType(f.Type) {
		return &ValidationError{Field: "type", Message: "Please select a complaint type"}
	}
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Message: "Please enter a title"}
	}
	if strings.TrimSpace(f.Description) == "" {
		return &ValidationError{Field: "description", Message: "Please enter a description"}
	}
	if strings.TrimSpace(f.Location) == "" {
		return &ValidationError{Field: "location", Message: "Please enter a location"}
	}
	if f.Priority != "" && !model.ValidPriority(f.Priority) {
		return &ValidationError{Field: "priority", Message: "Priority must be low, medium, high or urgent"}
	}
	return nil
}

type ComplaintCreate struct {
	api *api.Client
	log *zap.Logger
}

func NewComplaintCreate(c *api.Client, log *zap.Logger) *ComplaintCreate {
	return &ComplaintCreate{api: c, log: log}
}

// Submit validates locally first; an invalid form never reaches the network.
func (s *ComplaintCreate) Submit(ctx context.Context, f ComplaintForm) (model.Complaint, error) {
	if err := f.Validate(); err != nil {
		return model.Complaint{}, err
	}
	prio := f.Priority
	if prio == "" {
		prio = model.PriorityMedium
	}
	return s.api.CreateComplaint(ctx, api.ComplaintRequest{
		Type:        f.Type,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
		Building:    strings.TrimSpace(f.Building),
		Floor:       strings.TrimSpace(f.Floor),
		Priority:    prio,
	})
}
