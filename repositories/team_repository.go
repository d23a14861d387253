package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pmsa-qul/artsfest/models"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id string) (*models.Team, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

// GetAll возвращает команды в порядке id: этот порядок сохраняется при равенстве очков в зачёте.
func (r *postgresTeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	query := `SELECT id, name, slug, created_at FROM teams ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0, 4)
	for rows.Next() {
		team, scanErr := scanTeam(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, *team)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	query := `SELECT id, name, slug, created_at FROM teams WHERE id = $1`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var team models.Team
	var slug sql.NullString
	if err := row.Scan(&team.ID, &team.Name, &slug, &team.CreatedAt); err != nil {
		return nil, err
	}
	team.Slug = slug.String
	return &team, nil
}
