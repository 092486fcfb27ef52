package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Zackrieg/PruebaImagineApps/internal/cache"
	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
	"github.com/Zackrieg/PruebaImagineApps/internal/events"
)

type ClassRepository interface {
	CreateClass(ctx context.Context, class *entity.Class) (*entity.Class, error)
	GetClassByID(ctx context.Context, id int) (*entity.Class, error)
	UpdateClass(ctx context.Context, class *entity.Class) (*entity.Class, error)
	DeleteClass(ctx context.Context, id int) (int64, error)
}

type SubjectChecker interface {
	SubjectExists(ctx context.Context, id int) (bool, error)
}

// ClassService implements the class CRUD contract. Writes validate
// that the referenced subject exists before persisting.
type ClassService struct {
	repo     ClassRepository
	subjects SubjectChecker
	cache    cache.Cache
	cacheTTL time.Duration
	events   *events.Publisher
}

// NewClassService creates a new instance of ClassService.
func NewClassService(repo ClassRepository, subjects SubjectChecker, c cache.Cache, cacheTTL time.Duration, ev *events.Publisher) *ClassService {
	return &ClassService{
		repo:     repo,
		subjects: subjects,
		cache:    c,
		cacheTTL: cacheTTL,
		events:   ev,
	}
}

func (s *ClassService) CreateClass(ctx context.Context, class *entity.Class) (*entity.Class, error) {
	if err := s.checkSubject(ctx, class.SubjectID); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateClass(ctx, class)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating class")
		return nil, err
	}

	s.cacheSet(ctx, created)
	s.events.Publish(ctx, "class", "created", created.ID, created)

	return created, nil
}

func (s *ClassService) GetClassByID(ctx context.Context, id int) (*entity.Class, error) {
	key := cache.Key("class", id)
	cached, err := s.cache.Get(ctx, key)
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		logger.Error().Err(err).Msgf("Error getting class %d from cache", id)
	}
	if err == nil {
		var class entity.Class
		if jsonErr := json.Unmarshal([]byte(cached), &class); jsonErr == nil {
			return &class, nil
		}
		logger.Error().Msgf("Corrupt cache entry for class %d, falling through to store", id)
	}

	class, err := s.repo.GetClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting class by ID %d", id)
		return nil, err
	}

	s.cacheSet(ctx, class)
	return class, nil
}

func (s *ClassService) UpdateClass(ctx context.Context, id int, patch entity.ClassPatch) (*entity.Class, error) {
	class, err := s.repo.GetClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting class by ID %d", id)
		return nil, err
	}

	if patch.SubjectID != nil {
		if err := s.checkSubject(ctx, *patch.SubjectID); err != nil {
			return nil, err
		}
	}

	patch.Apply(class)

	updated, err := s.repo.UpdateClass(ctx, class)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating class %d", id)
		return nil, err
	}

	s.cacheSet(ctx, updated)
	s.events.Publish(ctx, "class", "updated", updated.ID, updated)

	return updated, nil
}

func (s *ClassService) DeleteClass(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteClass(ctx, id)

	if cerr := s.cache.Delete(ctx, cache.Key("class", id)); cerr != nil {
		logger.Error().Err(cerr).Msgf("Error deleting class %d from cache", id)
	}

	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting class %d", id)
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.events.Publish(ctx, "class", "deleted", id, map[string]int{"id": id})
	return nil
}

func (s *ClassService) checkSubject(ctx context.Context, subjectID int) error {
	ok, err := s.subjects.SubjectExists(ctx, subjectID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking subject %d", subjectID)
		return err
	}
	if !ok {
		return &ValidationError{
			Field:   "subject_id",
			Message: fmt.Sprintf("subject %d does not exist", subjectID),
		}
	}
	return nil
}

func (s *ClassService) cacheSet(ctx context.Context, class *entity.Class) {
	data, err := json.Marshal(class)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.Key("class", class.ID), string(data), s.cacheTTL); err != nil {
		logger.Error().Err(err).Msgf("Error setting class %d in cache", class.ID)
	}
}
