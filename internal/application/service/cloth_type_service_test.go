package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/washbook/washbook-api/internal/events"
)

func TestCreateClothTypeValidation(t *testing.T) {
	svc := NewClothTypeService(newStubClothTypeRepo(), events.New())
	ctx := ownerContext(uuid.New())

	tests := []struct {
		name  string
		input CreateClothTypeInput
	}{
		{name: "empty name", input: CreateClothTypeInput{Name: "", UnitRate: 10}},
		{name: "zero rate", input: CreateClothTypeInput{Name: "Shirt", UnitRate: 0}},
		{name: "negative rate", input: CreateClothTypeInput{Name: "Shirt", UnitRate: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateClothType(ctx, &tt.input); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestClothTypeLifecyclePublishesCatalogEvents(t *testing.T) {
	bus := events.New()
	svc := NewClothTypeService(newStubClothTypeRepo(), bus)

	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	var mu sync.Mutex
	var actions []string
	if err := bus.Subscribe(events.TopicCatalogChanged, func(event events.CatalogEvent) {
		mu.Lock()
		defer mu.Unlock()
		actions = append(actions, event.Action)
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	clothType, err := svc.CreateClothType(ctx, &CreateClothTypeInput{Name: "Shirt", UnitRate: 10})
	if err != nil {
		t.Fatalf("CreateClothType: %v", err)
	}

	if _, err := svc.UpdateClothType(ctx, &UpdateClothTypeInput{ID: clothType.ID, Name: "Shirt", UnitRate: 12}); err != nil {
		t.Fatalf("UpdateClothType: %v", err)
	}

	if err := svc.DeleteClothType(ctx, clothType.ID); err != nil {
		t.Fatalf("DeleteClothType: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"created", "updated", "deleted"}
	if len(actions) != len(want) {
		t.Fatalf("actions = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, actions[i], want[i])
		}
	}
}

func TestUpdateClothTypeUnknownID(t *testing.T) {
	svc := NewClothTypeService(newStubClothTypeRepo(), events.New())
	ctx := ownerContext(uuid.New())

	if _, err := svc.UpdateClothType(ctx, &UpdateClothTypeInput{ID: uuid.New(), Name: "Shirt", UnitRate: 10}); err == nil {
		t.Error("expected not found error")
	}
}
