package repository

import (
	"context"
	"database/sql"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
)

type SubjectRepository struct {
	db *sql.DB
}

func NewSubjectRepository(db *sql.DB) *SubjectRepository {
	return &SubjectRepository{db}
}

func (r *SubjectRepository) CreateSubject(ctx context.Context, subject *entity.Subject) (*entity.Subject, error) {
	query := `INSERT INTO subjects (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, query, subject.Name)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	subject.ID = int(id)
	return subject, nil
}

func (r *SubjectRepository) GetSubjectByID(ctx context.Context, id int) (*entity.Subject, error) {
	var subject entity.Subject
	query := `SELECT id, name FROM subjects WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&subject.ID, &subject.Name)
	if err != nil {
		return nil, err
	}

	return &subject, nil
}

func (r *SubjectRepository) UpdateSubject(ctx context.Context, subject *entity.Subject) (*entity.Subject, error) {
	query := `UPDATE subjects SET name = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, subject.Name, subject.ID)
	if err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject removes the row and reports how many rows matched, so
// callers can tell a delete of a missing id apart from a successful one.
func (r *SubjectRepository) DeleteSubject(ctx context.Context, id int) (int64, error) {
	query := `DELETE FROM subjects WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SubjectRepository) SubjectExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM subjects WHERE id = ?)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
