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

type StudentClassRepository interface {
	CreateStudentClass(ctx context.Context, sc *entity.StudentClass) (*entity.StudentClass, error)
	GetStudentClassByID(ctx context.Context, id int) (*entity.StudentClass, error)
	UpdateStudentClass(ctx context.Context, sc *entity.StudentClass) (*entity.StudentClass, error)
	DeleteStudentClass(ctx context.Context, id int) (int64, error)
}

type StudentChecker interface {
	StudentExists(ctx context.Context, id int) (bool, error)
}

type ClassChecker interface {
	ClassExists(ctx context.Context, id int) (bool, error)
}

// StudentClassService implements CRUD for the student-class enrollment
// join. Both foreign keys are validated on write. Cache entries use the
// row id key "studentclass:{id}" only; no composite key family.
type StudentClassService struct {
	repo     StudentClassRepository
	students StudentChecker
	classes  ClassChecker
	cache    cache.Cache
	cacheTTL time.Duration
	events   *events.Publisher
}

// NewStudentClassService creates a new instance of StudentClassService.
func NewStudentClassService(repo StudentClassRepository, students StudentChecker, classes ClassChecker, c cache.Cache, cacheTTL time.Duration, ev *events.Publisher) *StudentClassService {
	return &StudentClassService{
		repo:     repo,
		students: students,
		classes:  classes,
		cache:    c,
		cacheTTL: cacheTTL,
		events:   ev,
	}
}

func (s *StudentClassService) CreateStudentClass(ctx context.Context, sc *entity.StudentClass) (*entity.StudentClass, error) {
	if err := s.checkStudent(ctx, sc.StudentID); err != nil {
		return nil, err
	}
	if err := s.checkClass(ctx, sc.ClassID); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateStudentClass(ctx, sc)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating student class")
		return nil, err
	}

	s.cacheSet(ctx, created)
	s.events.Publish(ctx, "studentclass", "created", created.ID, created)

	return created, nil
}

func (s *StudentClassService) GetStudentClassByID(ctx context.Context, id int) (*entity.StudentClass, error) {
	key := cache.Key("studentclass", id)
	cached, err := s.cache.Get(ctx, key)
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		logger.Error().Err(err).Msgf("Error getting student class %d from cache", id)
	}
	if err == nil {
		var sc entity.StudentClass
		if jsonErr := json.Unmarshal([]byte(cached), &sc); jsonErr == nil {
			return &sc, nil
		}
		logger.Error().Msgf("Corrupt cache entry for student class %d, falling through to store", id)
	}

	sc, err := s.repo.GetStudentClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting student class by ID %d", id)
		return nil, err
	}

	s.cacheSet(ctx, sc)
	return sc, nil
}

func (s *StudentClassService) UpdateStudentClass(ctx context.Context, id int, patch entity.StudentClassPatch) (*entity.StudentClass, error) {
	sc, err := s.repo.GetStudentClassByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting student class by ID %d", id)
		return nil, err
	}

	if patch.StudentID != nil {
		if err := s.checkStudent(ctx, *patch.StudentID); err != nil {
			return nil, err
		}
	}
	if patch.ClassID != nil {
		if err := s.checkClass(ctx, *patch.ClassID); err != nil {
			return nil, err
		}
	}

	patch.Apply(sc)

	updated, err := s.repo.UpdateStudentClass(ctx, sc)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating student class %d", id)
		return nil, err
	}

	s.cacheSet(ctx, updated)
	s.events.Publish(ctx, "studentclass", "updated", updated.ID, updated)

	return updated, nil
}

func (s *StudentClassService) DeleteStudentClass(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteStudentClass(ctx, id)

	if cerr := s.cache.Delete(ctx, cache.Key("studentclass", id)); cerr != nil {
		logger.Error().Err(cerr).Msgf("Error deleting student class %d from cache", id)
	}

	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting student class %d", id)
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.events.Publish(ctx, "studentclass", "deleted", id, map[string]int{"id": id})
	return nil
}

func (s *StudentClassService) checkStudent(ctx context.Context, studentID int) error {
	ok, err := s.students.StudentExists(ctx, studentID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking student %d", studentID)
		return err
	}
	if !ok {
		return &ValidationError{
			Field:   "student_id",
			Message: fmt.Sprintf("student %d does not exist", studentID),
		}
	}
	return nil
}

func (s *StudentClassService) checkClass(ctx context.Context, classID int) error {
	ok, err := s.classes.ClassExists(ctx, classID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking class %d", classID)
		return err
	}
	if !ok {
		return &ValidationError{
			Field:   "class_id",
			Message: fmt.Sprintf("class %d does not exist", classID),
		}
	}
	return nil
}

func (s *StudentClassService) cacheSet(ctx context.Context, sc *entity.StudentClass) {
	data, err := json.Marshal(sc)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.Key("studentclass", sc.ID), string(data), s.cacheTTL); err != nil {
		logger.Error().Err(err).Msgf("Error setting student class %d in cache", sc.ID)
	}
}
