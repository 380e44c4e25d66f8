package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/user-admin-panel/internal/model"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	u := model.User{ID: "id-1", Username: "alice", PasswordHash: "h", Role: model.RoleAdmin}
	if err := s.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Username != "alice" || got.Role != model.RoleAdmin {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not assigned on create")
	}

	byName, err := s.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != "id-1" {
		t.Fatalf("id mismatch: %q", byName.ID)
	}
}

func TestMemoryStore_DuplicateUsername(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, model.User{ID: "id-1", Username: "alice", Role: model.RoleUser}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := s.Create(ctx, model.User{ID: "id-2", Username: "alice", Role: model.RoleUser})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	// The first record must be unaffected.
	if _, err := s.GetByID(ctx, "id-1"); err != nil {
		t.Fatalf("first record lost: %v", err)
	}
}

func TestMemoryStore_UpdateRenameCollision(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.Create(ctx, model.User{ID: "id-1", Username: "alice", Role: model.RoleAdmin})
	_ = s.Create(ctx, model.User{ID: "id-2", Username: "bob", Role: model.RoleUser})

	u, _ := s.GetByID(ctx, "id-2")
	u.Username = "alice"
	if err := s.Update(ctx, u); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists on rename collision, got %v", err)
	}
}

func TestMemoryStore_UpdatePreservesCreatedAt(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.Create(ctx, model.User{ID: "id-1", Username: "alice", Role: model.RoleUser})
	before, _ := s.GetByID(ctx, "id-1")

	u := before
	u.Role = model.RoleAdmin
	if err := s.Update(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}
	after, _ := s.GetByID(ctx, "id-1")
	if after.Role != model.RoleAdmin {
		t.Fatalf("role not updated")
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("CreatedAt must not change on update")
	}
}

func TestMemoryStore_MissingRecords(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.GetByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetByUsername(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Update(ctx, model.User{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := s.Delete(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestMemoryStore_DeleteThenGone(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.Create(ctx, model.User{ID: "id-1", Username: "alice", Role: model.RoleUser})
	if err := s.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "id-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete must be ErrNotFound, got %v", err)
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d records", len(list))
	}
}
