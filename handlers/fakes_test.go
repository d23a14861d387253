package handlers

import (
	"context"
	"io"

	"github.com/pmsa-qul/artsfest/live"
	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/services"
)

type stubResultsService struct {
	err          error
	lastCategory string
	lastBatch    int
}

func (s *stubResultsService) Snapshot(ctx context.Context) (*models.ResultsSnapshot, error) {
	return &models.ResultsSnapshot{}, s.err
}

func (s *stubResultsService) Teams(ctx context.Context) ([]models.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	c := models.ColorForSlug("GR1")
	return []models.Team{{ID: "T1", Name: "Hormuz", Slug: "GR1", Color: &c}}, nil
}

func (s *stubResultsService) Standings(ctx context.Context) (*services.StandingsView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &services.StandingsView{
		Standings:  []models.Standing{{Team: models.Team{ID: "T1"}, Total: 17, PerCategory: map[string]int{"Junior": 17}}},
		Categories: models.Categories,
	}, nil
}

func (s *stubResultsService) EventCards(ctx context.Context, category string) (*services.EventCardsView, error) {
	s.lastCategory = category
	if s.err != nil {
		return nil, s.err
	}
	return &services.EventCardsView{Events: []models.EventCard{}, Category: category}, nil
}

func (s *stubResultsService) TVFeed(ctx context.Context, batch int) (*models.TVFeed, error) {
	s.lastBatch = batch
	if s.err != nil {
		return nil, s.err
	}
	return &models.TVFeed{Batch: batch, Ticker: []string{}}, nil
}

func (s *stubResultsService) PublishLatest(ctx context.Context) error { return s.err }

func (s *stubResultsService) LiveMessage(ctx context.Context) (*live.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &live.Message{
		Type:    live.MessageResultsUpdated,
		Payload: map[string]interface{}{"standings": []models.Standing{}},
		RoomID:  live.ResultsRoom,
	}, nil
}

type stubEntryService struct {
	err       error
	submitted *services.SubmitResultsInput
	principal models.Principal
	preview   struct {
		category models.GradingCategory
		position *int
		grade    models.Grade
	}
}

func (s *stubEntryService) ListEntryEvents(ctx context.Context, principal models.Principal) ([]services.EntryEvent, error) {
	s.principal = principal
	if s.err != nil {
		return nil, s.err
	}
	return []services.EntryEvent{{Event: models.Event{ID: "E1"}, Locked: true, TakenPositions: []int{1}}}, nil
}

func (s *stubEntryService) SearchStudents(ctx context.Context, principal models.Principal, query string, limit int) ([]services.StudentMatch, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []services.StudentMatch{{Student: models.Student{ID: "S1", Name: query}}}, nil
}

func (s *stubEntryService) PreviewPoints(category models.GradingCategory, position *int, grade models.Grade) services.PointsPreview {
	s.preview.category, s.preview.position, s.preview.grade = category, position, grade
	return services.PointsPreview{Category: category, Position: position, Grade: grade, Points: 17}
}

func (s *stubEntryService) SubmitResults(ctx context.Context, principal models.Principal, input services.SubmitResultsInput) ([]models.Result, error) {
	s.submitted = &input
	s.principal = principal
	if s.err != nil {
		return nil, s.err
	}
	return []models.Result{{ID: "res-1", EventID: input.EventID, Points: 17, Published: true}}, nil
}

type stubHighlightService struct {
	err         error
	uploaded    []byte
	contentType string
	deletedKey  string
}

func (s *stubHighlightService) List(ctx context.Context) ([]models.Highlight, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Highlight{{Key: "fest-highlights/a.jpg", URL: "https://cdn/a.jpg"}}, nil
}

func (s *stubHighlightService) Batch(ctx context.Context, n int) (*services.HighlightPage, error) {
	return &services.HighlightPage{}, s.err
}

func (s *stubHighlightService) Upload(ctx context.Context, principal models.Principal, reader io.Reader, contentType string) (*models.Highlight, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	s.uploaded = data
	s.contentType = contentType
	return &models.Highlight{Key: "fest-highlights/new.png", URL: "https://cdn/new.png"}, nil
}

func (s *stubHighlightService) Delete(ctx context.Context, principal models.Principal, key string) error {
	s.deletedKey = key
	return s.err
}

type stubAuthService struct {
	err error
}

func (s *stubAuthService) Login(ctx context.Context, input services.LoginInput) (*models.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Admin{ID: "admin-1", Email: input.Email, DisplayName: "Results Desk"}, nil
}

func (s *stubAuthService) Principal(ctx context.Context, adminID string) (models.Principal, error) {
	return models.Principal{AdminID: adminID, Role: models.RoleAdmin}, s.err
}
