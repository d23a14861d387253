package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/scoring"
)

var (
	ErrEventLocked         = errors.New("event already has published results")
	ErrResultWinnerInvalid = errors.New("result references an unknown student or team")
	ErrResultIDConflict    = errors.New("result id conflict")
)

type ResultRepository interface {
	ListPublished(ctx context.Context) ([]models.Result, error)
	ListPublishedByEvents(ctx context.Context, eventIDs []string) ([]models.Result, error)
	// PublishForEvent атомарно публикует набор результатов одного конкурса.
	// Конкурс блокируется на время транзакции, и если у него уже есть опубликованный
	// результат на призовом месте, возвращается ErrEventLocked.
	PublishForEvent(ctx context.Context, eventID string, results []*models.Result) error
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

const resultColumns = `id, event_id, student_id, team_id, position, grade, points, published, created_at`

// ListPublished возвращает опубликованные результаты, новые первыми.
func (r *postgresResultRepository) ListPublished(ctx context.Context) ([]models.Result, error) {
	query := `SELECT ` + resultColumns + ` FROM results WHERE published = TRUE ORDER BY created_at DESC, id ASC`
	return listResults(ctx, r.db, query)
}

func (r *postgresResultRepository) ListPublishedByEvents(ctx context.Context, eventIDs []string) ([]models.Result, error) {
	if len(eventIDs) == 0 {
		return []models.Result{}, nil
	}
	query := `SELECT ` + resultColumns + ` FROM results WHERE published = TRUE AND event_id = ANY($1) ORDER BY created_at DESC, id ASC`
	return listResults(ctx, r.db, query, pq.Array(eventIDs))
}

func (r *postgresResultRepository) PublishForEvent(ctx context.Context, eventID string, results []*models.Result) (err error) {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("PublishForEvent failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// Блокировка строки конкурса сериализует параллельный ввод от нескольких админов.
	var lockedID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to lock event %s: %w", eventID, err)
	}

	existing, err := listResults(ctx, tx,
		`SELECT `+resultColumns+` FROM results WHERE published = TRUE AND event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to load published results for event %s: %w", eventID, err)
	}
	if scoring.IsEventLocked(eventID, existing) {
		return ErrEventLocked
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (id, event_id, student_id, team_id, position, grade, points, published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("PublishForEvent failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, res := range results {
		if res.CreatedAt.IsZero() {
			res.CreatedAt = now
		}
		var grade *string
		if res.Grade != nil {
			g := string(*res.Grade)
			grade = &g
		}
		var inserted sql.Result
		inserted, err = stmt.ExecContext(ctx,
			res.ID, eventID, res.StudentID, res.TeamID, res.Position, grade, res.Points, res.Published, res.CreatedAt,
		)
		if err != nil {
			return mapResultInsertError(err)
		}
		// Совпавший id не вставляется, это видно по нулю затронутых строк.
		if err = checkAffectedRows(inserted, ErrResultIDConflict); err != nil {
			return err
		}
	}
	return nil
}

func mapResultInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			switch pqErr.Constraint {
			case "results_event_id_fkey":
				return ErrEventNotFound
			case "results_student_id_fkey", "results_team_id_fkey":
				return ErrResultWinnerInvalid
			}
		case "23514": // check_violation, results_single_winner_check
			return ErrResultWinnerInvalid
		}
	}
	return err
}

func listResults(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]models.Result, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.Result, 0)
	for rows.Next() {
		res, scanErr := scanResult(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		results = append(results, *res)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanResult(row rowScanner) (*models.Result, error) {
	var res models.Result
	var studentID, teamID, grade sql.NullString
	var position sql.NullInt64
	err := row.Scan(&res.ID, &res.EventID, &studentID, &teamID, &position, &grade, &res.Points, &res.Published, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	res.StudentID = nullableString(studentID)
	res.TeamID = nullableString(teamID)
	if position.Valid {
		p := int(position.Int64)
		res.Position = &p
	}
	if grade.Valid {
		g := models.Grade(grade.String)
		res.Grade = &g
	}
	return &res, nil
}
