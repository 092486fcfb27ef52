package api

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Zackrieg/PruebaImagineApps/internal/auth"
	"github.com/Zackrieg/PruebaImagineApps/internal/cache"
	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
)

type fakeUsers struct {
	users map[string]*entity.User
}

func (f *fakeUsers) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func newFakeUsers(t *testing.T, username, password string) *fakeUsers {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &fakeUsers{users: map[string]*entity.User{
		username: {ID: 1, Username: username, Password: hash},
	}}
}

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	val, ok := c.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return val, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

type fakeSubjectRepo struct {
	subjects map[int]entity.Subject
	nextID   int
	getCalls int
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[int]entity.Subject)}
}

func (r *fakeSubjectRepo) CreateSubject(_ context.Context, subject *entity.Subject) (*entity.Subject, error) {
	r.nextID++
	subject.ID = r.nextID
	r.subjects[subject.ID] = *subject
	return subject, nil
}

func (r *fakeSubjectRepo) GetSubjectByID(_ context.Context, id int) (*entity.Subject, error) {
	r.getCalls++
	subject, ok := r.subjects[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &subject, nil
}

func (r *fakeSubjectRepo) UpdateSubject(_ context.Context, subject *entity.Subject) (*entity.Subject, error) {
	r.subjects[subject.ID] = *subject
	return subject, nil
}

func (r *fakeSubjectRepo) DeleteSubject(_ context.Context, id int) (int64, error) {
	if _, ok := r.subjects[id]; !ok {
		return 0, nil
	}
	delete(r.subjects, id)
	return 1, nil
}

func (r *fakeSubjectRepo) SubjectExists(_ context.Context, id int) (bool, error) {
	_, ok := r.subjects[id]
	return ok, nil
}

type fakeClassRepo struct {
	classes map[int]entity.Class
	nextID  int
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: make(map[int]entity.Class)}
}

func (r *fakeClassRepo) CreateClass(_ context.Context, class *entity.Class) (*entity.Class, error) {
	r.nextID++
	class.ID = r.nextID
	r.classes[class.ID] = *class
	return class, nil
}

func (r *fakeClassRepo) GetClassByID(_ context.Context, id int) (*entity.Class, error) {
	class, ok := r.classes[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &class, nil
}

func (r *fakeClassRepo) UpdateClass(_ context.Context, class *entity.Class) (*entity.Class, error) {
	r.classes[class.ID] = *class
	return class, nil
}

func (r *fakeClassRepo) DeleteClass(_ context.Context, id int) (int64, error) {
	if _, ok := r.classes[id]; !ok {
		return 0, nil
	}
	delete(r.classes, id)
	return 1, nil
}

func (r *fakeClassRepo) ClassExists(_ context.Context, id int) (bool, error) {
	_, ok := r.classes[id]
	return ok, nil
}

type fakeStudentRepo struct {
	students map[int]entity.Student
	nextID   int
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int]entity.Student)}
}

func (r *fakeStudentRepo) CreateStudent(_ context.Context, student *entity.Student) (*entity.Student, error) {
	r.nextID++
	student.ID = r.nextID
	r.students[student.ID] = *student
	return student, nil
}

func (r *fakeStudentRepo) GetStudentByID(_ context.Context, id int) (*entity.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &student, nil
}

func (r *fakeStudentRepo) UpdateStudent(_ context.Context, student *entity.Student) (*entity.Student, error) {
	r.students[student.ID] = *student
	return student, nil
}

func (r *fakeStudentRepo) DeleteStudent(_ context.Context, id int) (int64, error) {
	if _, ok := r.students[id]; !ok {
		return 0, nil
	}
	delete(r.students, id)
	return 1, nil
}

func (r *fakeStudentRepo) StudentExists(_ context.Context, id int) (bool, error) {
	_, ok := r.students[id]
	return ok, nil
}

type fakeStudentClassRepo struct {
	enrollments map[int]entity.StudentClass
	nextID      int
}

func newFakeStudentClassRepo() *fakeStudentClassRepo {
	return &fakeStudentClassRepo{enrollments: make(map[int]entity.StudentClass)}
}

func (r *fakeStudentClassRepo) CreateStudentClass(_ context.Context, sc *entity.StudentClass) (*entity.StudentClass, error) {
	r.nextID++
	sc.ID = r.nextID
	r.enrollments[sc.ID] = *sc
	return sc, nil
}

func (r *fakeStudentClassRepo) GetStudentClassByID(_ context.Context, id int) (*entity.StudentClass, error) {
	sc, ok := r.enrollments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &sc, nil
}

func (r *fakeStudentClassRepo) UpdateStudentClass(_ context.Context, sc *entity.StudentClass) (*entity.StudentClass, error) {
	r.enrollments[sc.ID] = *sc
	return sc, nil
}

func (r *fakeStudentClassRepo) DeleteStudentClass(_ context.Context, id int) (int64, error) {
	if _, ok := r.enrollments[id]; !ok {
		return 0, nil
	}
	delete(r.enrollments, id)
	return 1, nil
}
