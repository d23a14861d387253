package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/repositories"
	"github.com/pmsa-qul/artsfest/scoring"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
	// maxWinnersPerSubmission ограничивает одну форму ввода; при равенстве мест строк может быть больше трёх.
	maxWinnersPerSubmission = 12
)

// EntryEvent - конкурс в списке админки с флагом блокировки повторного ввода.
type EntryEvent struct {
	models.Event
	Category       string `json:"category"`
	Locked         bool   `json:"locked"`
	TakenPositions []int  `json:"taken_positions"`
}

type StudentMatch struct {
	Student  models.Student `json:"student"`
	TeamName string         `json:"team_name,omitempty"`
}

type WinnerInput struct {
	StudentID *string      `json:"student_id,omitempty"`
	TeamID    *string      `json:"team_id,omitempty"`
	Position  *int         `json:"position,omitempty"`
	Grade     models.Grade `json:"grade,omitempty"`
}

type SubmitResultsInput struct {
	EventID string        `json:"event_id"`
	Winners []WinnerInput `json:"winners"`
}

type PointsPreview struct {
	Category       models.GradingCategory `json:"grading_category"`
	Position       *int                   `json:"position,omitempty"`
	Grade          models.Grade           `json:"grade"`
	PositionPoints int                    `json:"position_points"`
	GradeBonus     int                    `json:"grade_bonus"`
	Points         int                    `json:"points"`
}

type EntryService interface {
	ListEntryEvents(ctx context.Context, principal models.Principal) ([]EntryEvent, error)
	SearchStudents(ctx context.Context, principal models.Principal, query string, limit int) ([]StudentMatch, error)
	PreviewPoints(category models.GradingCategory, position *int, grade models.Grade) PointsPreview
	SubmitResults(ctx context.Context, principal models.Principal, input SubmitResultsInput) ([]models.Result, error)
}

// ResultsPublisher рассылает свежий рейтинг подключённым экранам.
type ResultsPublisher interface {
	PublishLatest(ctx context.Context) error
}

type entryService struct {
	teamRepo    repositories.TeamRepository
	eventRepo   repositories.EventRepository
	studentRepo repositories.StudentRepository
	resultRepo  repositories.ResultRepository
	publisher   ResultsPublisher
	logger      *slog.Logger
	newID       func() string
}

func NewEntryService(
	teamRepo repositories.TeamRepository,
	eventRepo repositories.EventRepository,
	studentRepo repositories.StudentRepository,
	resultRepo repositories.ResultRepository,
	publisher ResultsPublisher,
	logger *slog.Logger,
) EntryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &entryService{
		teamRepo:    teamRepo,
		eventRepo:   eventRepo,
		studentRepo: studentRepo,
		resultRepo:  resultRepo,
		publisher:   publisher,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

func (s *entryService) ListEntryEvents(ctx context.Context, principal models.Principal) ([]EntryEvent, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	published, err := s.resultRepo.ListPublishedByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get published results: %w", err)
	}

	out := make([]EntryEvent, len(events))
	for i, e := range events {
		taken := scoring.LockedPositions(e.ID, published)
		out[i] = EntryEvent{
			Event:          e,
			Category:       scoring.NormalizeCategory(e.Level),
			Locked:         len(taken) > 0,
			TakenPositions: taken,
		}
	}
	return out, nil
}

func (s *entryService) SearchStudents(ctx context.Context, principal models.Principal, query string, limit int) ([]StudentMatch, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []StudentMatch{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	picked := make([]int, 0, limit)
	seen := make(map[int]bool)

	// Совпадение по префиксу нагрудного номера стоит выше любого совпадения по имени.
	for i, st := range students {
		if chest := derefString(st.ChestNumber); chest != "" && strings.HasPrefix(strings.ToLower(chest), strings.ToLower(query)) {
			picked = append(picked, i)
			seen[i] = true
		}
	}

	names := make([]string, len(students))
	for i, st := range students {
		names[i] = st.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)
	for _, r := range ranks {
		if !seen[r.OriginalIndex] {
			picked = append(picked, r.OriginalIndex)
			seen[r.OriginalIndex] = true
		}
	}

	if len(picked) > limit {
		picked = picked[:limit]
	}
	matches := make([]StudentMatch, len(picked))
	for i, idx := range picked {
		st := students[idx]
		matches[i] = StudentMatch{Student: st, TeamName: teamNames[st.TeamID]}
	}
	return matches, nil
}

func (s *entryService) PreviewPoints(category models.GradingCategory, position *int, grade models.Grade) PointsPreview {
	category = scoring.NormalizeGradingCategory(category)
	grade = scoring.NormalizeGrade(grade)
	return PointsPreview{
		Category:       category,
		Position:       position,
		Grade:          grade,
		PositionPoints: scoring.PositionPoints(category, position),
		GradeBonus:     scoring.GradeBonus(grade),
		Points:         scoring.ComputePoints(category, position, grade),
	}
}

// SubmitResults проверяет форму ввода и публикует всех победителей одной транзакцией.
// Несколько победителей могут делить место, а конкурс с уже опубликованным
// призовым местом отклоняется с ErrEventLocked.
func (s *entryService) SubmitResults(ctx context.Context, principal models.Principal, input SubmitResultsInput) ([]models.Result, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		return nil, &ValidationError{Fields: map[string]string{"event_id": "is required"}}
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
	}

	if err := validateWinners(event, input.Winners); err != nil {
		return nil, err
	}
	if err := s.checkWinnersExist(ctx, input.Winners); err != nil {
		return nil, err
	}

	results := make([]*models.Result, len(input.Winners))
	for i, w := range input.Winners {
		grade := scoring.NormalizeGrade(w.Grade)
		results[i] = &models.Result{
			ID:        s.newID(),
			EventID:   event.ID,
			StudentID: trimmedOrNil(w.StudentID),
			TeamID:    trimmedOrNil(w.TeamID),
			Position:  w.Position,
			Grade:     &grade,
			Points:    scoring.ComputePoints(event.GradingCategory, w.Position, grade),
			Published: true,
		}
	}

	if err := s.resultRepo.PublishForEvent(ctx, event.ID, results); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEventLocked):
			return nil, ErrEventLocked
		case errors.Is(err, repositories.ErrEventNotFound):
			return nil, ErrEventNotFound
		case errors.Is(err, repositories.ErrResultWinnerInvalid):
			return nil, ErrUnknownWinner
		case errors.Is(err, repositories.ErrResultIDConflict):
			return nil, ErrResultConflict
		default:
			return nil, fmt.Errorf("failed to publish results for event %s: %w", event.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "results published",
		slog.String("event_id", event.ID),
		slog.Int("winners", len(results)),
		slog.String("admin_id", principal.AdminID))

	if s.publisher != nil {
		if err := s.publisher.PublishLatest(ctx); err != nil {
			s.logger.WarnContext(ctx, "failed to push live update", slog.Any("error", err))
		}
	}

	out := make([]models.Result, len(results))
	for i, r := range results {
		out[i] = *r
	}
	return out, nil
}

func validateWinners(event *models.Event, winners []WinnerInput) error {
	verr := &ValidationError{}
	if !scoring.ValidGradingCategory(event.GradingCategory) {
		verr.add("event_id", fmt.Sprintf("event has unknown grading category %q", event.GradingCategory))
	}
	if len(winners) == 0 {
		verr.add("winners", "at least one winner is required")
	}
	if len(winners) > maxWinnersPerSubmission {
		verr.add("winners", fmt.Sprintf("at most %d winners per submission", maxWinnersPerSubmission))
	}

	for i, w := range winners {
		field := fmt.Sprintf("winners[%d]", i)
		hasStudent := trimmedOrNil(w.StudentID) != nil
		hasTeam := trimmedOrNil(w.TeamID) != nil
		switch {
		case hasStudent == hasTeam:
			verr.add(field, "exactly one of student_id or team_id is required")
		case event.IsIndividual && !hasStudent:
			verr.add(field, "individual event requires student_id")
		case !event.IsIndividual && !hasTeam:
			verr.add(field, "group event requires team_id")
		}
		if w.Position != nil && (*w.Position < 1 || *w.Position > scoring.MaxScoredPosition) {
			verr.add(field+".position", fmt.Sprintf("must be between 1 and %d or omitted", scoring.MaxScoredPosition))
		}
		if !scoring.ValidGrade(w.Grade) {
			verr.add(field+".grade", "must be one of A, B, C, None")
		}
	}
	return verr.orNil()
}

func (s *entryService) checkWinnersExist(ctx context.Context, winners []WinnerInput) error {
	studentIDs := make([]string, 0, len(winners))
	teamIDs := make(map[string]bool)
	for _, w := range winners {
		if id := trimmedOrNil(w.StudentID); id != nil {
			studentIDs = append(studentIDs, *id)
		}
		if id := trimmedOrNil(w.TeamID); id != nil {
			teamIDs[*id] = true
		}
	}

	if len(studentIDs) > 0 {
		found, err := s.studentRepo.GetByIDs(ctx, studentIDs)
		if err != nil {
			return fmt.Errorf("failed to look up students: %w", err)
		}
		known := make(map[string]bool, len(found))
		for _, st := range found {
			known[st.ID] = true
		}
		for _, id := range studentIDs {
			if !known[id] {
				return fmt.Errorf("%w: student %s", ErrUnknownWinner, id)
			}
		}
	}

	for id := range teamIDs {
		if _, err := s.teamRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return fmt.Errorf("%w: team %s", ErrUnknownWinner, id)
			}
			return fmt.Errorf("failed to look up team %s: %w", id, err)
		}
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
