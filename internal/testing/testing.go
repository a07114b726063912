// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/elx/internal/models"
)

// MockGateway is a configurable test double for [services.Gateway].
//
// Each operation delegates to the corresponding function field when set and
// returns zero values otherwise. Calls is incremented per operation name so
// tests can assert on the number of network calls issued.
type MockGateway struct {
	LoginFn           func(ctx context.Context, email, password string) (*models.Session, error)
	RegisterFn        func(ctx context.Context, reg models.Registration) (*models.Session, error)
	ListCandidatesFn  func(ctx context.Context) ([]models.Candidate, error)
	CreateCandidateFn func(ctx context.Context, candidate models.Candidate) (*models.Candidate, error)
	ListCampaignsFn   func(ctx context.Context, candidateID string) ([]models.Campaign, error)
	CreateCampaignFn  func(ctx context.Context, campaign models.Campaign) (*models.Campaign, error)
	ListProgramsFn    func(ctx context.Context, candidateID string) ([]models.Program, error)
	CreateProgramFn   func(ctx context.Context, program models.Program) (*models.Program, error)
	GenerateProgramFn func(ctx context.Context, req models.ProgramRequest) (string, error)
	StatsFn           func(ctx context.Context) (*models.Stats, error)

	Calls map[string]int
}

func (m *MockGateway) record(op string) {
	if m.Calls == nil {
		m.Calls = map[string]int{}
	}
	m.Calls[op]++
}

func (m *MockGateway) Login(ctx context.Context, email, password string) (*models.Session, error) {
	m.record("Login")
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return &models.Session{}, nil
}

func (m *MockGateway) Register(ctx context.Context, reg models.Registration) (*models.Session, error) {
	m.record("Register")
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, reg)
	}
	return &models.Session{}, nil
}

func (m *MockGateway) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	m.record("ListCandidates")
	if m.ListCandidatesFn != nil {
		return m.ListCandidatesFn(ctx)
	}
	return nil, nil
}

func (m *MockGateway) CreateCandidate(ctx context.Context, candidate models.Candidate) (*models.Candidate, error) {
	m.record("CreateCandidate")
	if m.CreateCandidateFn != nil {
		return m.CreateCandidateFn(ctx, candidate)
	}
	return &candidate, nil
}

func (m *MockGateway) ListCampaigns(ctx context.Context, candidateID string) ([]models.Campaign, error) {
	m.record("ListCampaigns")
	if m.ListCampaignsFn != nil {
		return m.ListCampaignsFn(ctx, candidateID)
	}
	return nil, nil
}

func (m *MockGateway) CreateCampaign(ctx context.Context, campaign models.Campaign) (*models.Campaign, error) {
	m.record("CreateCampaign")
	if m.CreateCampaignFn != nil {
		return m.CreateCampaignFn(ctx, campaign)
	}
	return &campaign, nil
}

func (m *MockGateway) ListPrograms(ctx context.Context, candidateID string) ([]models.Program, error) {
	m.record("ListPrograms")
	if m.ListProgramsFn != nil {
		return m.ListProgramsFn(ctx, candidateID)
	}
	return nil, nil
}

func (m *MockGateway) CreateProgram(ctx context.Context, program models.Program) (*models.Program, error) {
	m.record("CreateProgram")
	if m.CreateProgramFn != nil {
		return m.CreateProgramFn(ctx, program)
	}
	return &program, nil
}

func (m *MockGateway) GenerateProgram(ctx context.Context, req models.ProgramRequest) (string, error) {
	m.record("GenerateProgram")
	if m.GenerateProgramFn != nil {
		return m.GenerateProgramFn(ctx, req)
	}
	return "", nil
}

func (m *MockGateway) Stats(ctx context.Context) (*models.Stats, error) {
	m.record("Stats")
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return &models.Stats{}, nil
}

// MemorySessionRepository is an in-memory session slot for store tests.
type MemorySessionRepository struct {
	Session  *models.Session
	LoadErr  error
	SaveErr  error
	ClearErr error
}

func (r *MemorySessionRepository) Load() (*models.Session, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	return r.Session, nil
}

func (r *MemorySessionRepository) Save(session models.Session) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Session = &session
	return nil
}

func (r *MemorySessionRepository) Clear() error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.Session = nil
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
