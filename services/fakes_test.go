package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/repositories"
	"github.com/pmsa-qul/artsfest/scoring"
	"github.com/pmsa-qul/artsfest/storage"
)

var errBoom = errors.New("boom")

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func gradePtr(g models.Grade) *models.Grade { return &g }

var adminPrincipal = models.Principal{AdminID: "admin-1", Email: "desk@fest.local", Role: models.RoleAdmin}

type fakeTeamRepo struct {
	teams []models.Team
	err   error
}

func (f *fakeTeamRepo) GetAll(ctx context.Context) ([]models.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Team(nil), f.teams...), nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id string) (*models.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.teams {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

type fakeEventRepo struct {
	events []models.Event
	err    error
}

func (f *fakeEventRepo) GetAll(ctx context.Context) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Event(nil), f.events...), nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, repositories.ErrEventNotFound
}

type fakeStudentRepo struct {
	students []models.Student
	err      error
}

func (f *fakeStudentRepo) GetAll(ctx context.Context) ([]models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Student(nil), f.students...), nil
}

func (f *fakeStudentRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Student
	for _, st := range f.students {
		if want[st.ID] {
			out = append(out, st)
		}
	}
	return out, nil
}

// fakeResultRepo хранит строки в памяти и применяет то же правило блокировки,
// что и реализация на Postgres.
type fakeResultRepo struct {
	mu         sync.Mutex
	results    []models.Result
	listErr    error
	publishErr error
	published  int
}

func (f *fakeResultRepo) ListPublished(ctx context.Context) ([]models.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Result
	for _, r := range f.results {
		if r.Published {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) ListPublishedByEvents(ctx context.Context, eventIDs []string) ([]models.Result, error) {
	all, err := f.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(eventIDs))
	for _, id := range eventIDs {
		want[id] = true
	}
	var out []models.Result
	for _, r := range all {
		if want[r.EventID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) PublishForEvent(ctx context.Context, eventID string, results []*models.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	if scoring.IsEventLocked(eventID, f.results) {
		return repositories.ErrEventLocked
	}
	for _, r := range results {
		f.results = append(f.results, *r)
	}
	f.published++
	return nil
}

type fakeAdminRepo struct {
	admins []models.Admin
	err    error
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.admins {
		if a.Email == email {
			a := a
			return &a, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.admins {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, repositories.ErrAdminNotFound
}

type fakeBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	listErr error
	deleted []string
}

func newFakeBlobStore(keys ...string) *fakeBlobStore {
	s := &fakeBlobStore{objects: make(map[string][]byte)}
	for _, k := range keys {
		s.objects[k] = nil
	}
	return s
}

func (s *fakeBlobStore) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.objects[key] = buf.Bytes()
	s.mu.Unlock()
	return &storage.UploadResult{Key: key, Location: s.GetPublicURL(key)}, nil
}

func (s *fakeBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeBlobStore) List(ctx context.Context, prefix string) ([]storage.Object, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []storage.Object
	for k, v := range s.objects {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, storage.Object{Key: k, Size: int64(len(v))})
		}
	}
	return out, nil
}

func (s *fakeBlobStore) GetPublicURL(key string) string {
	return "https://cdn.fest.local/" + key
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	rooms    []string
	messages []interface{}
}

func (b *recordingBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms = append(b.rooms, roomID)
	b.messages = append(b.messages, message)
}

type countingPublisher struct {
	calls int
	err   error
}

func (p *countingPublisher) PublishLatest(ctx context.Context) error {
	p.calls++
	return p.err
}

func festTeams() []models.Team {
	return []models.Team{
		{ID: "T1", Name: "Hormuz", Slug: "GR1"},
		{ID: "T2", Name: "Aden", Slug: "GR2"},
		{ID: "T3", Name: "Zanzibar", Slug: "zz"},
	}
}

func festEvents() []models.Event {
	return []models.Event{
		{ID: "E1", Name: "Essay", Code: "ESS", Level: "Junior", GradingCategory: models.GradingA, IsIndividual: true},
		{ID: "E2", Name: "Group Song", Code: "GSG", Level: "sub-junior", GradingCategory: models.GradingC},
		{ID: "E3", Name: "Debate", Code: "DEB", Level: "", GradingCategory: models.GradingB, IsIndividual: true},
	}
}

func festStudents() []models.Student {
	return []models.Student{
		{ID: "S1", Name: "Althaf Rahman", ChestNumber: strPtr("101"), TeamID: "T3", Section: "HS"},
		{ID: "S2", Name: "Sanah Fathima", ChestNumber: strPtr("205"), TeamID: "T1", Section: "HSS"},
		{ID: "S3", Name: "Shahad Ali", ChestNumber: strPtr("310"), TeamID: "T2", Section: "HS"},
		{ID: "S4", Name: "Ameen", TeamID: "T1", Section: "UP"},
	}
}
