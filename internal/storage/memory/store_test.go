package memory

import (
	"errors"
	"testing"

	"github.com/airtribe-projects/task-manager-api-akki772/internal/domain"
	"github.com/airtribe-projects/task-manager-api-akki772/internal/storage"
)

func TestStoreCreate_AssignsIncreasingIDs(t *testing.T) {
	s := New()
	a := s.Create("first", "one", false)
	b := s.Create("second", "two", true)
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}
	if _, err := s.Delete(b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c := s.Create("third", "three", false)
	if c.ID != 3 {
		t.Fatalf("expected id 3 after delete, got %d", c.ID)
	}
}

func TestStoreCreate_TrimsFields(t *testing.T) {
	s := New()
	got := s.Create("  padded  ", "\ttabbed\n", false)
	if got.Title != "padded" || got.Description != "tabbed" {
		t.Fatalf("expected trimmed fields, got %q / %q", got.Title, got.Description)
	}
}

func TestStoreList_InsertionOrderAndCopy(t *testing.T) {
	s := New()
	s.Create("a", "a", false)
	s.Create("b", "b", false)
	items := s.List()
	if len(items) != 2 || items[0].Title != "a" || items[1].Title != "b" {
		t.Fatalf("expected insertion order [a b], got %v", items)
	}
	items[0].Title = "mutated"
	fresh, err := s.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fresh.Title != "a" {
		t.Fatalf("expected stored task unchanged, got %q", fresh.Title)
	}
}

func TestStoreUpdate_ReplacesInPlace(t *testing.T) {
	s := New()
	s.Create("a", "a", false)
	s.Create("b", "b", false)
	got, err := s.Update(1, " new title ", "new desc", true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != 1 || got.Title != "new title" || !got.Completed {
		t.Fatalf("unexpected updated task %+v", got)
	}
	items := s.List()
	if items[0].ID != 1 || items[0].Title != "new title" {
		t.Fatalf("expected task updated in place at position 0, got %v", items)
	}
	if _, err := s.Update(99, "x", "y", false); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("update of absent id must not create, len=%d", s.Len())
	}
}

func TestStoreDelete_RemovesAndReturns(t *testing.T) {
	s := New()
	s.Create("a", "a", false)
	s.Create("b", "b", true)
	got, err := s.Delete(1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got.Title != "a" {
		t.Fatalf("expected deleted task a, got %+v", got)
	}
	if _, err := s.Get(1); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := s.Delete(1); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 task left, got %d", s.Len())
	}
}

func TestStoreSeed_SetsCounterPastMaxID(t *testing.T) {
	s := New()
	s.Seed([]domain.Task{
		{ID: 4, Title: "d", Description: "d"},
		{ID: 2, Title: "b", Description: "b"},
	})
	if s.Len() != 2 {
		t.Fatalf("expected 2 seeded tasks, got %d", s.Len())
	}
	got := s.Create("next", "next", false)
	if got.ID != 5 {
		t.Fatalf("expected id 5 after seed with max 4, got %d", got.ID)
	}
}

func TestStoreSeed_EmptyStartsAtOne(t *testing.T) {
	s := New()
	s.Seed(nil)
	if got := s.Create("x", "y", false); got.ID != 1 {
		t.Fatalf("expected id 1 on empty seed, got %d", got.ID)
	}
}
