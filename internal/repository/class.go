package repository

import (
	"context"
	"database/sql"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
)

type ClassRepository struct {
	db *sql.DB
}

func NewClassRepository(db *sql.DB) *ClassRepository {
	return &ClassRepository{db}
}

func (r *ClassRepository) CreateClass(ctx context.Context, class *entity.Class) (*entity.Class, error) {
	query := `INSERT INTO classes (name, subject_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, class.Name, class.SubjectID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	class.ID = int(id)
	return class, nil
}

func (r *ClassRepository) GetClassByID(ctx context.Context, id int) (*entity.Class, error) {
	var class entity.Class
	query := `SELECT id, name, subject_id FROM classes WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&class.ID, &class.Name, &class.SubjectID)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *ClassRepository) UpdateClass(ctx context.Context, class *entity.Class) (*entity.Class, error) {
	query := `UPDATE classes SET name = ?, subject_id = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, class.Name, class.SubjectID, class.ID)
	if err != nil {
		return nil, err
	}
	return class, nil
}

func (r *ClassRepository) DeleteClass(ctx context.Context, id int) (int64, error) {
	query := `DELETE FROM classes WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ClassRepository) ClassExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM classes WHERE id = ?)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
