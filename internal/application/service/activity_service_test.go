package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/enum"
	"github.com/washbook/washbook-api/internal/events"
	"github.com/washbook/washbook-api/pkg/pagination"
)

func TestActivityRecorderPersistsPublishedEvents(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo)
	bus := events.New()

	if err := svc.Subscribe(bus); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	ownerID := uuid.New()
	docID := uuid.New()
	bus.Publish(events.TopicActivity, events.ActivityEvent{
		UserID:  ownerID,
		Type:    enum.ActivityOrderCreated,
		DocID:   docID,
		Details: "Order ORD-1 created",
	})
	bus.WaitAsync()

	activities, total, err := repo.List(ownerContext(ownerID), pagination.DefaultPagination())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if activities[0].Type != enum.ActivityOrderCreated {
		t.Errorf("type = %v, want order.created", activities[0].Type)
	}
	if activities[0].DocID != docID {
		t.Errorf("doc id = %v, want %v", activities[0].DocID, docID)
	}
}
