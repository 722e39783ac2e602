package service

import (
	"context"
	"log"

	"github.com/asaskevich/EventBus"
	"github.com/washbook/washbook-api/internal/domain/entity"
	"github.com/washbook/washbook-api/internal/domain/repository"
	"github.com/washbook/washbook-api/internal/events"
	"github.com/washbook/washbook-api/pkg/pagination"
)

// ActivityService reads the audit log and records new entries off the
// request path.
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ListActivities returns the owner's audit log, newest first
func (s *ActivityService) ListActivities(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Activity], error) {
	activities, total, err := s.activityRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(activities, pag), nil
}

// Subscribe attaches the recorder to the event bus. Recording is
// fire-and-forget: the publishing request has already completed, so a failed
// insert is logged and dropped rather than surfaced.
func (s *ActivityService) Subscribe(bus EventBus.Bus) error {
	return bus.SubscribeAsync(events.TopicActivity, s.record, false)
}

func (s *ActivityService) record(event events.ActivityEvent) {
	activity := &entity.Activity{
		UserID:  event.UserID,
		Type:    event.Type,
		DocID:   event.DocID,
		Details: event.Details,
	}
	if err := s.activityRepo.Create(context.Background(), activity); err != nil {
		log.Printf("activity log write failed for %s: %v", event.Type, err)
	}
}
