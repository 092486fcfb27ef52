package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
)

func TestStudentLifecycle(t *testing.T) {
	repo := newFakeStudentRepo()
	c := newFakeCache()
	svc := NewStudentService(repo, c, time.Hour, nil)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, &entity.Student{Name: "Leidy"})
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}

	got, err := svc.GetStudentByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetStudentByID returned error: %v", err)
	}
	if got.Name != "Leidy" {
		t.Fatalf("expected name Leidy, got %q", got.Name)
	}
	if repo.getCalls != 0 {
		t.Fatalf("expected cache hit after create, store reads: %d", repo.getCalls)
	}

	name := "Ana"
	updated, err := svc.UpdateStudent(ctx, created.ID, entity.StudentPatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateStudent returned error: %v", err)
	}
	if updated.Name != "Ana" {
		t.Fatalf("expected updated name Ana, got %q", updated.Name)
	}

	if err := svc.DeleteStudent(ctx, created.ID); err != nil {
		t.Fatalf("DeleteStudent returned error: %v", err)
	}
	if _, ok := c.entries["student:1"]; ok {
		t.Fatal("expected cache entry to be removed on delete")
	}
	if _, err := svc.GetStudentByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStudentNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeCache(), time.Hour, nil)
	ctx := context.Background()

	if _, err := svc.GetStudentByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	name := "Ana"
	if _, err := svc.UpdateStudent(ctx, 42, entity.StudentPatch{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.DeleteStudent(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
