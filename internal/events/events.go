package events

import (
	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/domain/enum"
)

// Topics for the in-process event bus. Mutating services publish on these;
// subscribers run off the request path.
const (
	// TopicActivity carries ActivityEvent for the audit log recorder.
	TopicActivity = "activity.recorded"
	// TopicCatalogChanged carries CatalogEvent for live price list watchers.
	TopicCatalogChanged = "catalog.changed"
)

// ActivityEvent describes a mutating action to be appended to the audit log.
// Recording is best-effort: a failed write never fails the action itself.
type ActivityEvent struct {
	UserID  uuid.UUID
	Type    enum.ActivityType
	DocID   uuid.UUID
	Details string
}

// CatalogEvent notifies watchers that an owner's price catalog changed.
type CatalogEvent struct {
	UserID uuid.UUID
	Action string // "created", "updated" or "deleted"
	ID     uuid.UUID
}

// New creates the process-wide event bus
func New() EventBus.Bus {
	return EventBus.New()
}
