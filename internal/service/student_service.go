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

type StudentRepository interface {
	CreateStudent(ctx context.Context, student *entity.Student) (*entity.Student, error)
	GetStudentByID(ctx context.Context, id int) (*entity.Student, error)
	UpdateStudent(ctx context.Context, student *entity.Student) (*entity.Student, error)
	DeleteStudent(ctx context.Context, id int) (int64, error)
}

type StudentService struct {
	repo     StudentRepository
	cache    cache.Cache
	cacheTTL time.Duration
	events   *events.Publisher
}

// NewStudentService creates a new instance of StudentService.
func NewStudentService(repo StudentRepository, c cache.Cache, cacheTTL time.Duration, ev *events.Publisher) *StudentService {
	return &StudentService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		events:   ev,
	}
}

func (s *StudentService) CreateStudent(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	created, err := s.repo.CreateStudent(ctx, student)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating student")
		return nil, err
	}

	s.cacheSet(ctx, created)
	s.events.Publish(ctx, "student", "created", created.ID, created)

	return created, nil
}

func (s *StudentService) GetStudentByID(ctx context.Context, id int) (*entity.Student, error) {
	key := cache.Key("student", id)
	cached, err := s.cache.Get(ctx, key)
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		logger.Error().Err(err).Msgf("Error getting student %d from cache", id)
	}
	if err == nil {
		var student entity.Student
		if jsonErr := json.Unmarshal([]byte(cached), &student); jsonErr == nil {
			return &student, nil
		}
		logger.Error().Msgf("Corrupt cache entry for student %d, falling through to store", id)
	}

	student, err := s.repo.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting student by ID %d", id)
		return nil, err
	}

	s.cacheSet(ctx, student)
	return student, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, id int, patch entity.StudentPatch) (*entity.Student, error) {
	student, err := s.repo.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting student by ID %d", id)
		return nil, err
	}

	patch.Apply(student)

	updated, err := s.repo.UpdateStudent(ctx, student)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating student %d", id)
		return nil, err
	}

	s.cacheSet(ctx, updated)
	s.events.Publish(ctx, "student", "updated", updated.ID, updated)

	return updated, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteStudent(ctx, id)

	if cerr := s.cache.Delete(ctx, cache.Key("student", id)); cerr != nil {
		logger.Error().Err(cerr).Msgf("Error deleting student %d from cache", id)
	}

	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting student %d", id)
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.events.Publish(ctx, "student", "deleted", id, map[string]int{"id": id})
	return nil
}

func (s *StudentService) cacheSet(ctx context.Context, student *entity.Student) {
	data, err := json.Marshal(student)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.Key("student", student.ID), string(data), s.cacheTTL); err != nil {
		logger.Error().Err(err).Msgf("Error setting student %d in cache", student.ID)
	}
}
