package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pmsa-qul/artsfest/models"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

const eventColumns = `id, name, code, level, grading_category, is_individual`

func (r *postgresEventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		e, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *postgresEventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	var code, level, grading sql.NullString
	if err := row.Scan(&e.ID, &e.Name, &code, &level, &grading, &e.IsIndividual); err != nil {
		return nil, err
	}
	e.Code = code.String
	e.Level = level.String
	e.GradingCategory = models.GradingCategory(grading.String)
	return &e, nil
}
