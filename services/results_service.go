package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pmsa-qul/artsfest/live"
	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/repositories"
	"github.com/pmsa-qul/artsfest/scoring"
	"golang.org/x/sync/errgroup"
)

// tvWinnersPerCard - сколько победителей показывает карточка на экране TV.
const tvWinnersPerCard = 3

type StandingsView struct {
	Standings   []models.Standing `json:"standings"`
	Categories  []string          `json:"categories"`
	LastUpdated time.Time         `json:"last_updated"`
}

type EventCardsView struct {
	Events      []models.EventCard `json:"events"`
	Category    string             `json:"category,omitempty"`
	LastUpdated time.Time          `json:"last_updated"`
}

type ResultsService interface {
	Snapshot(ctx context.Context) (*models.ResultsSnapshot, error)
	Teams(ctx context.Context) ([]models.Team, error)
	Standings(ctx context.Context) (*StandingsView, error)
	EventCards(ctx context.Context, category string) (*EventCardsView, error)
	TVFeed(ctx context.Context, batch int) (*models.TVFeed, error)
	// PublishLatest пересчитывает данные и рассылает их всем подключённым экранам.
	PublishLatest(ctx context.Context) error
	LiveMessage(ctx context.Context) (*live.Message, error)
}

// Broadcaster - часть live.Hub, нужная сервису результатов.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

type resultsService struct {
	teamRepo    repositories.TeamRepository
	eventRepo   repositories.EventRepository
	studentRepo repositories.StudentRepository
	resultRepo  repositories.ResultRepository
	highlights  HighlightService
	broadcaster Broadcaster
	ticker      []string
	logger      *slog.Logger
	now         func() time.Time
}

func NewResultsService(
	teamRepo repositories.TeamRepository,
	eventRepo repositories.EventRepository,
	studentRepo repositories.StudentRepository,
	resultRepo repositories.ResultRepository,
	highlights HighlightService,
	broadcaster Broadcaster,
	tickerMessages []string,
	logger *slog.Logger,
) ResultsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &resultsService{
		teamRepo:    teamRepo,
		eventRepo:   eventRepo,
		studentRepo: studentRepo,
		resultRepo:  resultRepo,
		highlights:  highlights,
		broadcaster: broadcaster,
		ticker:      tickerMessages,
		logger:      logger,
		now:         time.Now,
	}
}

// Snapshot параллельно читает команды, конкурсы, студентов и опубликованные результаты.
// Результаты, ссылающиеся не ровно на одного победителя, отбрасываются здесь,
// до агрегации.
func (s *resultsService) Snapshot(ctx context.Context) (*models.ResultsSnapshot, error) {
	snap := &models.ResultsSnapshot{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		teams, err := s.teamRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch teams: %w", err)
		}
		snap.Teams = withTeamColors(teams)
		return nil
	})
	g.Go(func() error {
		events, err := s.eventRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch events: %w", err)
		}
		snap.Events = events
		return nil
	})
	g.Go(func() error {
		students, err := s.studentRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch students: %w", err)
		}
		snap.Students = students
		return nil
	})
	g.Go(func() error {
		results, err := s.resultRepo.ListPublished(gCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch published results: %w", err)
		}
		snap.Results = s.sanitizeResults(ctx, results)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.FetchedAt = s.now()
	return snap, nil
}

func (s *resultsService) sanitizeResults(ctx context.Context, results []models.Result) []models.Result {
	clean := make([]models.Result, 0, len(results))
	for _, r := range results {
		if !r.HasSingleWinner() {
			s.logger.WarnContext(ctx, "skipping result without exactly one winner",
				slog.String("result_id", r.ID), slog.String("event_id", r.EventID))
			continue
		}
		clean = append(clean, r)
	}
	return clean
}

func (s *resultsService) Teams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return withTeamColors(teams), nil
}

func (s *resultsService) Standings(ctx context.Context) (*StandingsView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return standingsView(snap), nil
}

func (s *resultsService) EventCards(ctx context.Context, category string) (*EventCardsView, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	view := cardsView(snap)
	if category != "" {
		view.Category = scoring.NormalizeCategory(category)
		view.Events = scoring.FilterCardsByCategory(view.Events, category)
	}
	return view, nil
}

func (s *resultsService) TVFeed(ctx context.Context, batch int) (*models.TVFeed, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	cards := cardsView(snap).Events
	for i := range cards {
		if len(cards[i].Winners) > tvWinnersPerCard {
			cards[i].Winners = cards[i].Winners[:tvWinnersPerCard]
		}
	}

	feed := &models.TVFeed{
		Events:      cards,
		Standings:   standingsView(snap).Standings,
		Highlights:  []models.Highlight{},
		Ticker:      s.tickerMessages(),
		LastUpdated: snap.FetchedAt,
	}

	if s.highlights != nil {
		page, err := s.highlights.Batch(ctx, batch)
		if err != nil {
			// Без галереи результаты всё равно отображаются.
			s.logger.WarnContext(ctx, "failed to load highlight batch", slog.Int("batch", batch), slog.Any("error", err))
		} else {
			feed.Highlights = page.Highlights
			feed.Batch = page.Batch
			feed.BatchCount = page.BatchCount
		}
	}
	return feed, nil
}

func (s *resultsService) tickerMessages() []string {
	if s.ticker == nil {
		return []string{}
	}
	return s.ticker
}

func (s *resultsService) LiveMessage(ctx context.Context) (*live.Message, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &live.Message{
		Type: live.MessageResultsUpdated,
		Payload: map[string]interface{}{
			"standings":    standingsView(snap).Standings,
			"events":       cardsView(snap).Events,
			"last_updated": snap.FetchedAt,
		},
		RoomID: live.ResultsRoom,
	}, nil
}

func (s *resultsService) PublishLatest(ctx context.Context) error {
	if s.broadcaster == nil {
		return nil
	}
	msg, err := s.LiveMessage(ctx)
	if err != nil {
		return fmt.Errorf("failed to build live update: %w", err)
	}
	s.broadcaster.BroadcastToRoom(live.ResultsRoom, msg)
	return nil
}

func standingsView(snap *models.ResultsSnapshot) *StandingsView {
	return &StandingsView{
		Standings:   scoring.ComputeStandings(snap.Teams, snap.Events, snap.Results, snap.Students),
		Categories:  models.Categories,
		LastUpdated: snap.FetchedAt,
	}
}

func cardsView(snap *models.ResultsSnapshot) *EventCardsView {
	return &EventCardsView{
		Events:      scoring.GroupResultsByEvent(snap.Events, snap.Results, snap.Students, snap.Teams),
		LastUpdated: snap.FetchedAt,
	}
}
