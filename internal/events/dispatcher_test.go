package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherPublishSubscribe(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventUserSignedUp, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.UserID)
		return nil
	})
	d.Subscribe(EventUserSignedUp, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.UserID)
		return nil
	})
	d.Subscribe(EventEmployeeDeleted, func(_ context.Context, e Event) error {
		got = append(got, "deleted")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserSignedUp, UserID: "u-1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	want := []string{"first:u-1", "second:u-1"}
	if len(got) != len(want) {
		t.Fatalf("handlers seen = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatcherHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	secondRan := false
	d.Subscribe(EventEmployeeCreated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventEmployeeCreated, func(context.Context, Event) error {
		secondRan = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventEmployeeCreated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !secondRan {
		t.Error("second handler skipped after first failed")
	}
}
