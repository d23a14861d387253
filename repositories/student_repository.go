package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/pmsa-qul/artsfest/models"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Student, error)
}

type postgresStudentRepository struct {
	db *sql.DB
}

func NewPostgresStudentRepository(db *sql.DB) StudentRepository {
	return &postgresStudentRepository{db: db}
}

const studentColumns = `id, name, chest_number, team_id, section`

func (r *postgresStudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY name ASC`
	return r.list(ctx, query)
}

func (r *postgresStudentRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Student, error) {
	if len(ids) == 0 {
		return []models.Student{}, nil
	}
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ANY($1)`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *postgresStudentRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var s models.Student
		var chest, teamID, section sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &chest, &teamID, &section); err != nil {
			return nil, err
		}
		s.ChestNumber = nullableString(chest)
		s.TeamID = teamID.String
		s.Section = section.String
		students = append(students, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}
