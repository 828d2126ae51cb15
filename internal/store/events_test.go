package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func eventDay(day int) time.Time {
	return time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateAndGetEvent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	e := &CalendarEvent{
		Owner:     "me",
		StartDate: eventDay(3),
		EndDate:   eventDay(5),
		Title:     "Deload week",
		Category:  CategoryFitness,
		Notes:     "light volume",
	}
	if err := db.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if e.ID == "" {
		t.Fatal("CreateEvent did not assign an ID")
	}

	got, err := db.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got.Title != "Deload week" {
		t.Errorf("Title = %q, want %q", got.Title, "Deload week")
	}
	if !got.StartDate.Equal(eventDay(3)) || !got.EndDate.Equal(eventDay(5)) {
		t.Errorf("range = [%v, %v], want [Apr 3, Apr 5]", got.StartDate, got.EndDate)
	}
	if got.Category != CategoryFitness {
		t.Errorf("Category = %q, want %q", got.Category, CategoryFitness)
	}
}

func TestGetEventNotFound(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.GetEvent(context.Background(), "missing")
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestListEventsByOwner(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	for _, e := range []*CalendarEvent{
		{Owner: "me", StartDate: eventDay(10), EndDate: eventDay(10), Title: "b", Category: CategoryLife},
		{Owner: "me", StartDate: eventDay(1), EndDate: eventDay(2), Title: "a", Category: CategoryDeepWork},
		{Owner: "other", StartDate: eventDay(5), EndDate: eventDay(5), Title: "c", Category: CategoryOther},
	} {
		if err := db.CreateEvent(ctx, e); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	mine, err := db.ListEvents(ctx, "me")
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d events for owner, want 2", len(mine))
	}
	if mine[0].Title != "a" || mine[1].Title != "b" {
		t.Errorf("events not ordered by start date: %q, %q", mine[0].Title, mine[1].Title)
	}

	all, err := db.ListEvents(ctx, "")
	if err != nil {
		t.Fatalf("ListEvents all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d events for all owners, want 3", len(all))
	}
}

func TestUpdateEventRange(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	e := &CalendarEvent{
		Owner:     "me",
		StartDate: eventDay(3),
		EndDate:   eventDay(5),
		Title:     "Ship it",
		Category:  CategoryShip,
	}
	if err := db.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := db.UpdateEventRange(ctx, e.ID, eventDay(7), eventDay(9)); err != nil {
		t.Fatalf("UpdateEventRange: %v", err)
	}

	got, err := db.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if !got.StartDate.Equal(eventDay(7)) || !got.EndDate.Equal(eventDay(9)) {
		t.Errorf("range = [%v, %v], want [Apr 7, Apr 9]", got.StartDate, got.EndDate)
	}
}

func TestUpdateEventRangeRejectsInvertedRange(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	e := &CalendarEvent{
		Owner:     "me",
		StartDate: eventDay(3),
		EndDate:   eventDay(5),
		Title:     "x",
		Category:  CategoryOther,
	}
	if err := db.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := db.UpdateEventRange(ctx, e.ID, eventDay(9), eventDay(7)); err == nil {
		t.Error("expected error for end before start")
	}

	// Unknown event reports not found
	err := db.UpdateEventRange(ctx, "missing", eventDay(1), eventDay(2))
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	e := &CalendarEvent{
		Owner:     "me",
		StartDate: eventDay(1),
		EndDate:   eventDay(1),
		Title:     "x",
		Category:  CategoryOther,
	}
	if err := db.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := db.DeleteEvent(ctx, e.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if _, err := db.GetEvent(ctx, e.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("err after delete = %v, want ErrEventNotFound", err)
	}
	if err := db.DeleteEvent(ctx, e.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("second delete err = %v, want ErrEventNotFound", err)
	}
}
