package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmsa-qul/artsfest/models"
)

const (
	lockEventQuery        = `SELECT id FROM events WHERE id = \$1 FOR UPDATE`
	publishedForEvent     = `SELECT .+ FROM results WHERE published = TRUE AND event_id = \$1`
	insertResultStatement = `INSERT INTO results .+ ON CONFLICT \(id\) DO NOTHING`
)

var resultRowColumns = []string{"id", "event_id", "student_id", "team_id", "position", "grade", "points", "published", "created_at"}

func newMockResultRepo(t *testing.T) (ResultRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresResultRepository(db), mock
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func newResult(id, studentID string, position *int) *models.Result {
	grade := models.GradeA
	return &models.Result{
		ID:        id,
		EventID:   "E1",
		StudentID: strPtr(studentID),
		Position:  position,
		Grade:     &grade,
		Points:    17,
		Published: true,
	}
}

func expectEventLock(mock sqlmock.Sqlmock, eventID string) {
	mock.ExpectQuery(lockEventQuery).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(eventID))
}

func TestPublishForEvent_InsertsUnderEventLock(t *testing.T) {
	repo, mock := newMockResultRepo(t)

	mock.ExpectBegin()
	expectEventLock(mock, "E1")
	// Неразмещённый результат не блокирует конкурс.
	mock.ExpectQuery(publishedForEvent).
		WithArgs("E1").
		WillReturnRows(sqlmock.NewRows(resultRowColumns).
			AddRow("R0", "E1", "S9", nil, nil, "B", 3, true, time.Now()))
	prep := mock.ExpectPrepare(insertResultStatement)
	prep.ExpectExec().
		WithArgs("R1", "E1", "S1", nil, 1, "A", 17, true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs("R2", "E1", "S2", nil, 1, "A", 17, true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	results := []*models.Result{newResult("R1", "S1", intPtr(1)), newResult("R2", "S2", intPtr(1))}
	err := repo.PublishForEvent(context.Background(), "E1", results)

	require.NoError(t, err)
	assert.False(t, results[0].CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishForEvent_LockedEventRollsBackWithoutInsert(t *testing.T) {
	repo, mock := newMockResultRepo(t)

	mock.ExpectBegin()
	expectEventLock(mock, "E1")
	mock.ExpectQuery(publishedForEvent).
		WithArgs("E1").
		WillReturnRows(sqlmock.NewRows(resultRowColumns).
			AddRow("R0", "E1", "S9", nil, 2, "A", 13, true, time.Now()))
	mock.ExpectRollback()

	err := repo.PublishForEvent(context.Background(), "E1", []*models.Result{newResult("R1", "S1", intPtr(1))})

	assert.ErrorIs(t, err, ErrEventLocked)
	// Любой INSERT или Prepare сверх ожидаемого провалит эту проверку.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishForEvent_UnknownEvent(t *testing.T) {
	repo, mock := newMockResultRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockEventQuery).
		WithArgs("E404").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.PublishForEvent(context.Background(), "E404", []*models.Result{newResult("R1", "S1", intPtr(1))})

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishForEvent_DuplicateIDIsConflict(t *testing.T) {
	repo, mock := newMockResultRepo(t)

	mock.ExpectBegin()
	expectEventLock(mock, "E1")
	mock.ExpectQuery(publishedForEvent).
		WithArgs("E1").
		WillReturnRows(sqlmock.NewRows(resultRowColumns))
	mock.ExpectPrepare(insertResultStatement).
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.PublishForEvent(context.Background(), "E1", []*models.Result{newResult("R1", "S1", intPtr(1))})

	assert.ErrorIs(t, err, ErrResultIDConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishForEvent_ForeignKeyViolation(t *testing.T) {
	repo, mock := newMockResultRepo(t)

	mock.ExpectBegin()
	expectEventLock(mock, "E1")
	mock.ExpectQuery(publishedForEvent).
		WithArgs("E1").
		WillReturnRows(sqlmock.NewRows(resultRowColumns))
	mock.ExpectPrepare(insertResultStatement).
		ExpectExec().
		WillReturnError(&pq.Error{Code: "23503", Constraint: "results_student_id_fkey"})
	mock.ExpectRollback()

	err := repo.PublishForEvent(context.Background(), "E1", []*models.Result{newResult("R1", "ghost", intPtr(1))})

	assert.ErrorIs(t, err, ErrResultWinnerInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishForEvent_EmptyBatchSkipsDatabase(t *testing.T) {
	repo, mock := newMockResultRepo(t)

	require.NoError(t, repo.PublishForEvent(context.Background(), "E1", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapResultInsertError(t *testing.T) {
	other := errors.New("connection reset")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"student fk", &pq.Error{Code: "23503", Constraint: "results_student_id_fkey"}, ErrResultWinnerInvalid},
		{"team fk", &pq.Error{Code: "23503", Constraint: "results_team_id_fkey"}, ErrResultWinnerInvalid},
		{"event fk", &pq.Error{Code: "23503", Constraint: "results_event_id_fkey"}, ErrEventNotFound},
		{"single winner check", &pq.Error{Code: "23514", Constraint: "results_single_winner_check"}, ErrResultWinnerInvalid},
		{"unrelated pq error", &pq.Error{Code: "42601"}, nil},
		{"plain error", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapResultInsertError(tt.err)
			if tt.want == nil {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
