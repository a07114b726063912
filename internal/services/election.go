// Election backend implementation of [Gateway]
//
// Endpoint shapes follow the FastAPI service: every response is a JSON
// envelope {"success": bool, ...} with a per-endpoint payload field.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:8001"

// ElectionService implements [Gateway] over the election backend HTTP API.
type ElectionService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Gateway = (*ElectionService)(nil)

// NewElectionService creates a Gateway for the backend at baseURL.
//
// generateRPS throttles calls to the generation endpoint; values <= 0 fall
// back to one request every two seconds.
func NewElectionService(baseURL string, client *http.Client, generateRPS float64) *ElectionService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if generateRPS <= 0 {
		generateRPS = 0.5
	}

	return &ElectionService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(generateRPS), 1),
	}
}

// envelope is the common part of every backend response.
type envelope struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

// do performs a request and decodes the response into result.
//
// Transport failures wrap [shared.ErrConnection]; a non-2xx status or a
// success=false envelope wraps [shared.ErrRemoteRejected].
func (s *ElectionService) do(ctx context.Context, method, endpoint string, payload, result any) error {
	apiURL := s.baseURL + endpoint

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", shared.GenerateID())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrConnection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrConnection, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: malformed response: %v", shared.ErrRemoteRejected, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		if env.Detail != "" {
			return fmt.Errorf("%w: %s", shared.ErrRemoteRejected, env.Detail)
		}
		return fmt.Errorf("%w: status %d", shared.ErrRemoteRejected, resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", shared.ErrRemoteRejected, err)
		}
	}

	return nil
}

// sessionUser is the auth payload: a user record with its token inline.
type sessionUser struct {
	models.User
	Token string `json:"token"`
}

func (u sessionUser) session() *models.Session {
	return &models.Session{Token: u.Token, User: u.User}
}

// Login exchanges credentials for a (token, user) pair.
func (s *ElectionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	payload := map[string]string{"email": email, "password": password}

	var response struct {
		User sessionUser `json:"user"`
	}

	if err := s.do(ctx, http.MethodPost, "/api/auth/login", payload, &response); err != nil {
		return nil, err
	}

	return response.User.session(), nil
}

// Register creates an account with the role chosen at signup.
func (s *ElectionService) Register(ctx context.Context, reg models.Registration) (*models.Session, error) {
	var response struct {
		User sessionUser `json:"user"`
	}

	if err := s.do(ctx, http.MethodPost, "/api/auth/register", reg, &response); err != nil {
		return nil, err
	}

	return response.User.session(), nil
}

// ListCandidates retrieves all candidate profiles in backend order.
func (s *ElectionService) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	var response struct {
		Candidates []models.Candidate `json:"candidates"`
	}

	if err := s.do(ctx, http.MethodGet, "/api/candidates", nil, &response); err != nil {
		return nil, err
	}

	return response.Candidates, nil
}

// CreateCandidate adds a candidate profile.
func (s *ElectionService) CreateCandidate(ctx context.Context, candidate models.Candidate) (*models.Candidate, error) {
	var response struct {
		Candidate models.Candidate `json:"candidate"`
	}

	if err := s.do(ctx, http.MethodPost, "/api/candidates", candidate, &response); err != nil {
		return nil, err
	}

	return &response.Candidate, nil
}

// ListCampaigns retrieves the campaigns owned by candidateID.
func (s *ElectionService) ListCampaigns(ctx context.Context, candidateID string) ([]models.Campaign, error) {
	var response struct {
		Campaigns []models.Campaign `json:"campaigns"`
	}

	endpoint := fmt.Sprintf("/api/campaigns/%s", candidateID)
	if err := s.do(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	return response.Campaigns, nil
}

// CreateCampaign adds a campaign for a candidate.
func (s *ElectionService) CreateCampaign(ctx context.Context, campaign models.Campaign) (*models.Campaign, error) {
	if campaign.Events == nil {
		campaign.Events = []map[string]any{}
	}
	if campaign.Materials == nil {
		campaign.Materials = []map[string]any{}
	}

	var response struct {
		Campaign models.Campaign `json:"campaign"`
	}

	if err := s.do(ctx, http.MethodPost, "/api/campaigns", campaign, &response); err != nil {
		return nil, err
	}

	return &response.Campaign, nil
}

// ListPrograms retrieves the electoral programs of candidateID.
func (s *ElectionService) ListPrograms(ctx context.Context, candidateID string) ([]models.Program, error) {
	var response struct {
		Programs []models.Program `json:"programs"`
	}

	endpoint := fmt.Sprintf("/api/programs/%s", candidateID)
	if err := s.do(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	return response.Programs, nil
}

// CreateProgram persists an electoral program.
func (s *ElectionService) CreateProgram(ctx context.Context, program models.Program) (*models.Program, error) {
	var response struct {
		Program models.Program `json:"program"`
	}

	if err := s.do(ctx, http.MethodPost, "/api/programs", program, &response); err != nil {
		return nil, err
	}

	return &response.Program, nil
}

// GenerateProgram asks the backend to draft a program from structured preferences.
//
// The call is throttled by the service's rate limiter; the generated text is
// returned without being persisted.
func (s *ElectionService) GenerateProgram(ctx context.Context, req models.ProgramRequest) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrConnection, err)
	}

	var response struct {
		Program struct {
			Content string `json:"content"`
		} `json:"program"`
	}

	if err := s.do(ctx, http.MethodPost, "/api/generate-program", req, &response); err != nil {
		return "", err
	}

	return response.Program.Content, nil
}

// Stats retrieves the aggregate dashboard counters.
func (s *ElectionService) Stats(ctx context.Context) (*models.Stats, error) {
	var response struct {
		Stats models.Stats `json:"stats"`
	}

	if err := s.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &response); err != nil {
		return nil, err
	}

	return &response.Stats, nil
}
