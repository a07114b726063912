package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
	tu "github.com/desertthunder/elx/internal/testing"
)

func TestElectionService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			srv := NewElectionService("http://example.com", customClient, 1)

			if srv.baseURL != "http://example.com" {
				t.Errorf("expected baseURL 'http://example.com', got %s", srv.baseURL)
			}
			if srv.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			srv := NewElectionService("", nil, 0)

			if srv.baseURL != "http://localhost:8001" {
				t.Errorf("expected default baseURL 'http://localhost:8001', got %s", srv.baseURL)
			}
			if srv.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("Success Installs Token And User", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/auth/login" {
					t.Errorf("expected path /api/auth/login, got %s", r.URL.Path)
				}

				var creds map[string]string
				json.NewDecoder(r.Body).Decode(&creds)
				if creds["email"] != "a@b.com" || creds["password"] != "pw" {
					t.Errorf("unexpected credentials payload: %v", creds)
				}

				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"user": map[string]any{
						"id": "u1", "name": "Ada", "email": "a@b.com", "role": "candidate", "token": "tok-1",
					},
				})
			}))
			defer server.Close()

			srv := NewElectionService(server.URL, nil, 1)
			session, err := srv.Login(context.Background(), "a@b.com", "pw")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.Token != "tok-1" {
				t.Errorf("expected token tok-1, got %s", session.Token)
			}
			if session.User.Role != models.RoleCandidate {
				t.Errorf("expected role candidate, got %s", session.User.Role)
			}
		})

		t.Run("Rejection Maps To ErrRemoteRejected", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]any{"success": false, "detail": "Credenziali non valide"})
			}))
			defer server.Close()

			srv := NewElectionService(server.URL, nil, 1)
			_, err := srv.Login(context.Background(), "a@b.com", "wrong")

			if !errors.Is(err, shared.ErrRemoteRejected) {
				t.Errorf("expected ErrRemoteRejected, got %v", err)
			}
			if errors.Is(err, shared.ErrConnection) {
				t.Error("rejection must be distinguishable from a transport failure")
			}
		})

		t.Run("Transport Failure Maps To ErrConnection", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused")),
			}

			srv := NewElectionService("http://example.com", client, 1)
			_, err := srv.Login(context.Background(), "a@b.com", "pw")

			if !errors.Is(err, shared.ErrConnection) {
				t.Errorf("expected ErrConnection, got %v", err)
			}
		})
	})

	t.Run("GenerateProgram", func(t *testing.T) {
		t.Run("Sends Full Preferences Payload", func(t *testing.T) {
			var received models.ProgramRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/generate-program" {
					t.Errorf("expected path /api/generate-program, got %s", r.URL.Path)
				}
				json.NewDecoder(r.Body).Decode(&received)
				json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"program": map[string]any{"content": "PLAN TEXT"},
				})
			}))
			defer server.Close()

			req := models.ProgramRequest{
				CandidateName:  "Ada",
				ClassYear:      "5th Science",
				MainIssues:     []string{"A", "B", "C"},
				PersonalValues: []string{"X", "Y", "Z"},
				SchoolContext:  "small school",
			}

			srv := NewElectionService(server.URL, nil, 100)
			content, err := srv.GenerateProgram(context.Background(), req)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if content != "PLAN TEXT" {
				t.Errorf("expected content 'PLAN TEXT', got %q", content)
			}
			if !reflect.DeepEqual(received, req) {
				t.Errorf("payload mismatch: sent %+v, server saw %+v", req, received)
			}
		})

		t.Run("Rejection Returns Empty Content", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"success": false})
			}))
			defer server.Close()

			srv := NewElectionService(server.URL, nil, 100)
			content, err := srv.GenerateProgram(context.Background(), models.ProgramRequest{})

			if !errors.Is(err, shared.ErrRemoteRejected) {
				t.Errorf("expected ErrRemoteRejected, got %v", err)
			}
			if content != "" {
				t.Errorf("expected empty content on failure, got %q", content)
			}
		})
	})

	t.Run("ListCandidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET, got %s", r.Method)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"candidates": []map[string]any{
					{"id": "c1", "name": "Ada", "class_year": "5A"},
					{"id": "c2", "name": "Ben", "class_year": "4B"},
				},
			})
		}))
		defer server.Close()

		srv := NewElectionService(server.URL, nil, 1)
		candidates, err := srv.ListCandidates(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(candidates) != 2 {
			t.Fatalf("expected 2 candidates, got %d", len(candidates))
		}
		if candidates[0].ID != "c1" {
			t.Errorf("expected backend order preserved, got first id %s", candidates[0].ID)
		}
	})

	t.Run("CreateCampaign", func(t *testing.T) {
		t.Run("Defaults Empty Events And Materials", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var payload map[string]any
				json.NewDecoder(r.Body).Decode(&payload)

				if payload["events"] == nil {
					t.Error("expected events to be an empty array, got null")
				}
				if payload["materials"] == nil {
					t.Error("expected materials to be an empty array, got null")
				}

				json.NewEncoder(w).Encode(map[string]any{
					"success":  true,
					"campaign": map[string]any{"id": "cam1", "title": payload["title"], "status": "draft"},
				})
			}))
			defer server.Close()

			srv := NewElectionService(server.URL, nil, 1)
			created, err := srv.CreateCampaign(context.Background(), models.Campaign{
				CandidateID: "c1",
				Title:       "Better canteen",
				Status:      models.CampaignDraft,
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if created.ID != "cam1" {
				t.Errorf("expected id cam1, got %s", created.ID)
			}
		})
	})

	t.Run("Stats", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"stats": map[string]any{
					"total_candidates": 3,
					"active_campaigns": 1,
					"total_programs":   5,
					"total_campaigns":  4,
				},
			})
		}))
		defer server.Close()

		srv := NewElectionService(server.URL, nil, 1)
		stats, err := srv.Stats(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if stats.TotalCandidates != 3 || stats.ActiveCampaigns != 1 || stats.TotalPrograms != 5 || stats.TotalCampaigns != 4 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("Malformed Response Is A Rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway timeout</html>"))
		}))
		defer server.Close()

		srv := NewElectionService(server.URL, nil, 1)
		_, err := srv.ListCandidates(context.Background())

		if !errors.Is(err, shared.ErrRemoteRejected) {
			t.Errorf("expected ErrRemoteRejected for malformed body, got %v", err)
		}
	})
}
