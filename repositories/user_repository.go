package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pmsa-qul/artsfest/models"
)

var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository - таблица admins, членство в которой даёт доступ к вводу результатов.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
}

type postgresAdminRepository struct {
	db *sql.DB
}

func NewPostgresAdminRepository(db *sql.DB) AdminRepository {
	return &postgresAdminRepository{db: db}
}

func (r *postgresAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT id, email, display_name, password_hash, created_at FROM admins WHERE lower(email) = lower($1)`
	return r.get(ctx, query, email)
}

func (r *postgresAdminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	query := `SELECT id, email, display_name, password_hash, created_at FROM admins WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *postgresAdminRepository) get(ctx context.Context, query string, arg string) (*models.Admin, error) {
	var a models.Admin
	var displayName sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&a.ID, &a.Email, &displayName, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	a.DisplayName = displayName.String
	return &a, nil
}
