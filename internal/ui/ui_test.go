package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
	"github.com/desertthunder/elx/internal/tasks"
	tu "github.com/desertthunder/elx/internal/testing"
)

func candidateSession() models.Session {
	return models.Session{
		Token: "tok-1",
		User:  models.User{ID: "u1", Name: "Ada", Email: "ada@school.it", Role: models.RoleCandidate},
	}
}

// preferencesModel returns a model on the wizard tab with the generation
// guards satisfied.
func preferencesModel(t *testing.T, gw *tu.MockGateway) *Model {
	t.Helper()
	m := NewModel(context.Background(), gw, candidateSession())
	if err := m.controller.Select(TabAIProgram); err != nil {
		t.Fatalf("failed to open wizard tab: %v", err)
	}
	m.wizard.SetClassYear("5° Liceo Scientifico")
	if err := m.wizard.Next(); err != nil {
		t.Fatalf("failed to reach preferences step: %v", err)
	}
	for _, issue := range tasks.IssueCatalog[:3] {
		m.wizard.ToggleIssue(issue)
	}
	for _, value := range tasks.ValueCatalog[:3] {
		m.wizard.ToggleValue(value)
	}
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelGeneration(t *testing.T) {
	t.Run("Command Never Mutates The Wizard Off The Update Loop", func(t *testing.T) {
		release := make(chan struct{})
		gw := &tu.MockGateway{
			GenerateProgramFn: func(ctx context.Context, req models.ProgramRequest) (string, error) {
				<-release
				return "DRAFT TEXT", nil
			},
		}
		m := preferencesModel(t, gw)

		req, err := m.wizard.BeginGenerate()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		done := make(chan tea.Msg, 1)
		go func() { done <- m.generate(req)() }()

		// Render while the call is in flight; the command goroutine must
		// only touch the gateway, never the model.
		for i := 0; i < 50; i++ {
			_ = m.View()
		}
		if m.wizard.Step() != tasks.StepPreferences {
			t.Errorf("expected preferences step while in flight, got %s", m.wizard.Step())
		}
		if m.wizard.Generated() != "" {
			t.Errorf("expected no generated text before the result message, got %q", m.wizard.Generated())
		}

		close(release)
		msg, ok := (<-done).(generationDoneMsg)
		if !ok {
			t.Fatalf("expected generationDoneMsg, got %T", msg)
		}

		updated, _ := m.Update(msg)
		m = updated.(*Model)
		if m.wizard.Busy() {
			t.Error("expected wizard idle after the result message")
		}
		if m.wizard.Step() != tasks.StepResult {
			t.Errorf("expected result step, got %s", m.wizard.Step())
		}
		if m.wizard.Generated() != "DRAFT TEXT" {
			t.Errorf("expected generated text, got %q", m.wizard.Generated())
		}
	})

	t.Run("Generate Key Starts Exactly One Call", func(t *testing.T) {
		gw := &tu.MockGateway{}
		m := preferencesModel(t, gw)

		_, cmd := m.handleKeys(runeKey("g"))
		if cmd == nil {
			t.Fatal("expected a generation command")
		}
		if !m.wizard.Busy() {
			t.Error("expected wizard busy once the command is issued")
		}

		// A second press while busy is ignored.
		if _, cmd := m.handleKeys(runeKey("g")); cmd != nil {
			t.Error("expected no command while a generation is in flight")
		}
		if gw.Calls["GenerateProgram"] != 0 {
			t.Errorf("expected the key handler to stay off the network, got %d calls", gw.Calls["GenerateProgram"])
		}
	})

	t.Run("Guard Failure Shows The Error Without A Command", func(t *testing.T) {
		gw := &tu.MockGateway{}
		m := preferencesModel(t, gw)
		m.wizard.ToggleIssue(tasks.IssueCatalog[0]) // deselect, dropping below the minimum

		_, cmd := m.handleKeys(runeKey("g"))
		if cmd != nil {
			t.Error("expected no command on a guard failure")
		}
		if !errors.Is(m.err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", m.err)
		}
		if m.wizard.Busy() {
			t.Error("expected wizard idle after a rejected begin")
		}
	})

	t.Run("Failure Message Keeps The Preferences Step", func(t *testing.T) {
		m := preferencesModel(t, &tu.MockGateway{})
		if _, err := m.wizard.BeginGenerate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		callErr := fmt.Errorf("%w: model unavailable", shared.ErrRemoteRejected)
		updated, _ := m.Update(generationDoneMsg{err: callErr})
		m = updated.(*Model)

		if !errors.Is(m.err, shared.ErrRemoteRejected) {
			t.Errorf("expected ErrRemoteRejected, got %v", m.err)
		}
		if m.wizard.Step() != tasks.StepPreferences {
			t.Errorf("expected to stay on preferences, got %s", m.wizard.Step())
		}
		if m.wizard.Busy() {
			t.Error("expected wizard idle after a failed call")
		}
	})
}
