package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Zackrieg/PruebaImagineApps/internal/cache"
	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
	"github.com/Zackrieg/PruebaImagineApps/internal/events"
)

type SubjectRepository interface {
	CreateSubject(ctx context.Context, subject *entity.Subject) (*entity.Subject, error)
	GetSubjectByID(ctx context.Context, id int) (*entity.Subject, error)
	UpdateSubject(ctx context.Context, subject *entity.Subject) (*entity.Subject, error)
	DeleteSubject(ctx context.Context, id int) (int64, error)
}

// SubjectService implements the subject CRUD contract: the store is
// authoritative, the cache is a lookaside hint keyed by "subject:{id}".
type SubjectService struct {
	repo     SubjectRepository
	cache    cache.Cache
	cacheTTL time.Duration
	events   *events.Publisher
}

// NewSubjectService creates a new instance of SubjectService.
func NewSubjectService(repo SubjectRepository, c cache.Cache, cacheTTL time.Duration, ev *events.Publisher) *SubjectService {
	return &SubjectService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		events:   ev,
	}
}

// CreateSubject persists a new subject and populates its cache entry.
func (s *SubjectService) CreateSubject(ctx context.Context, subject *entity.Subject) (*entity.Subject, error) {
	created, err := s.repo.CreateSubject(ctx, subject)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating subject")
		return nil, err
	}

	s.cacheSet(ctx, created)
	s.events.Publish(ctx, "subject", "created", created.ID, created)

	return created, nil
}

// GetSubjectByID reads through the cache: a hit never touches the
// store, a miss falls through and repopulates the entry.
func (s *SubjectService) GetSubjectByID(ctx context.Context, id int) (*entity.Subject, error) {
	key := cache.Key("subject", id)
	cached, err := s.cache.Get(ctx, key)
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		logger.Error().Err(err).Msgf("Error getting subject %d from cache", id)
	}
	if err == nil {
		var subject entity.Subject
		if jsonErr := json.Unmarshal([]byte(cached), &subject); jsonErr == nil {
			return &subject, nil
		}
		logger.Error().Msgf("Corrupt cache entry for subject %d, falling through to store", id)
	}

	subject, err := s.repo.GetSubjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting subject by ID %d", id)
		return nil, err
	}

	s.cacheSet(ctx, subject)
	return subject, nil
}

// UpdateSubject applies a partial update. The pre-update image always
// comes from the store, never the cache.
func (s *SubjectService) UpdateSubject(ctx context.Context, id int, patch entity.SubjectPatch) (*entity.Subject, error) {
	subject, err := s.repo.GetSubjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting subject by ID %d", id)
		return nil, err
	}

	patch.Apply(subject)

	updated, err := s.repo.UpdateSubject(ctx, subject)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating subject %d", id)
		return nil, err
	}

	s.cacheSet(ctx, updated)
	s.events.Publish(ctx, "subject", "updated", updated.ID, updated)

	return updated, nil
}

// DeleteSubject removes the row and invalidates the cache entry. Both
// are attempted regardless of the other's outcome.
func (s *SubjectService) DeleteSubject(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteSubject(ctx, id)

	if cerr := s.cache.Delete(ctx, cache.Key("subject", id)); cerr != nil {
		logger.Error().Err(cerr).Msgf("Error deleting subject %d from cache", id)
	}

	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting subject %d", id)
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.events.Publish(ctx, "subject", "deleted", id, map[string]int{"id": id})
	return nil
}

func (s *SubjectService) cacheSet(ctx context.Context, subject *entity.Subject) {
	data, err := json.Marshal(subject)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.Key("subject", subject.ID), string(data), s.cacheTTL); err != nil {
		logger.Error().Err(err).Msgf("Error setting subject %d in cache", subject.ID)
	}
}
