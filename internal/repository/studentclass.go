package repository

import (
	"context"
	"database/sql"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
)

type StudentClassRepository struct {
	db *sql.DB
}

func NewStudentClassRepository(db *sql.DB) *StudentClassRepository {
	return &StudentClassRepository{db}
}

func (r *StudentClassRepository) CreateStudentClass(ctx context.Context, sc *entity.StudentClass) (*entity.StudentClass, error) {
	query := `INSERT INTO student_classes (student_id, class_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, sc.StudentID, sc.ClassID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	sc.ID = int(id)
	return sc, nil
}

func (r *StudentClassRepository) GetStudentClassByID(ctx context.Context, id int) (*entity.StudentClass, error) {
	var sc entity.StudentClass
	query := `SELECT id, student_id, class_id FROM student_classes WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&sc.ID, &sc.StudentID, &sc.ClassID)
	if err != nil {
		return nil, err
	}

	return &sc, nil
}

func (r *StudentClassRepository) UpdateStudentClass(ctx context.Context, sc *entity.StudentClass) (*entity.StudentClass, error) {
	query := `UPDATE student_classes SET student_id = ?, class_id = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, sc.StudentID, sc.ClassID, sc.ID)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

func (r *StudentClassRepository) DeleteStudentClass(ctx context.Context, id int) (int64, error) {
	query := `DELETE FROM student_classes WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
