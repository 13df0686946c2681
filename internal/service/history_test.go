package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"unitdesk/internal/models"
)

func TestHistoryService_List_Delegates(t *testing.T) {
	t.Parallel()

	want := []models.HistoryEntry{
		{EntryID: "a", RecordedAt: time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC), Category: models.CategoryTemperature, Input: "100.00 C -> F", Result: "212.00"},
		{EntryID: "b", RecordedAt: time.Date(2025, time.August, 1, 9, 0, 1, 0, time.UTC), Category: models.CategoryCalculator, Input: "10.00 + 5.00", Result: "15.00"},
	}
	frepo := &fakeHistoryRepo{listOut: want}
	svc := NewHistoryService(frepo)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frepo.listCalls != 1 {
		t.Fatalf("repo List should be called once, got %d", frepo.listCalls)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestHistoryService_List_Empty(t *testing.T) {
	t.Parallel()

	svc := NewHistoryService(&fakeHistoryRepo{})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(got))
	}
}

func TestHistoryService_List_RepoErrorPropagation(t *testing.T) {
	t.Parallel()

	frepo := &fakeHistoryRepo{listErr: errors.New("db down")}
	svc := NewHistoryService(frepo)

	if _, err := svc.List(context.Background()); !errors.Is(err, frepo.listErr) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}
