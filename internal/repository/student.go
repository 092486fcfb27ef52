package repository

import (
	"context"
	"database/sql"

	"github.com/Zackrieg/PruebaImagineApps/internal/entity"
)

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db}
}

func (r *StudentRepository) CreateStudent(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	query := `INSERT INTO students (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, query, student.Name)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	student.ID = int(id)
	return student, nil
}

func (r *StudentRepository) GetStudentByID(ctx context.Context, id int) (*entity.Student, error) {
	var student entity.Student
	query := `SELECT id, name FROM students WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&student.ID, &student.Name)
	if err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *StudentRepository) UpdateStudent(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	query := `UPDATE students SET name = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, student.Name, student.ID)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *StudentRepository) DeleteStudent(ctx context.Context, id int) (int64, error) {
	query := `DELETE FROM students WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *StudentRepository) StudentExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE id = ?)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
