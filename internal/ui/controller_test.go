package ui

import (
	"errors"
	"reflect"
	"testing"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
)

func TestController(t *testing.T) {
	t.Run("Tabs", func(t *testing.T) {
		t.Run("Visitor Sees Public Sections Only", func(t *testing.T) {
			c := NewController(models.RoleVisitor)

			want := []Tab{TabOverview, TabCandidates}
			if !reflect.DeepEqual(c.Tabs(), want) {
				t.Errorf("expected %v, got %v", want, c.Tabs())
			}
		})

		t.Run("Candidate Sees Every Section", func(t *testing.T) {
			c := NewController(models.RoleCandidate)

			want := []Tab{TabOverview, TabAIProgram, TabCampaigns, TabPrograms, TabCandidates}
			if !reflect.DeepEqual(c.Tabs(), want) {
				t.Errorf("expected %v, got %v", want, c.Tabs())
			}
		})

		t.Run("Admin Sees Every Section", func(t *testing.T) {
			c := NewController(models.RoleAdmin)

			if len(c.Tabs()) != 5 {
				t.Errorf("expected 5 tabs, got %v", c.Tabs())
			}
		})

		t.Run("Grafico Sees Public Sections Only", func(t *testing.T) {
			c := NewController(models.RoleGrafico)

			for _, tab := range c.Tabs() {
				if tab == TabAIProgram || tab == TabCampaigns || tab == TabPrograms {
					t.Errorf("grafico must not see %s", tab)
				}
			}
		})
	})

	t.Run("Select", func(t *testing.T) {
		t.Run("Starts On Overview", func(t *testing.T) {
			c := NewController(models.RoleVisitor)

			if c.Active() != TabOverview {
				t.Errorf("expected overview, got %s", c.Active())
			}
		})

		t.Run("Rejects Unauthorized Tab", func(t *testing.T) {
			c := NewController(models.RoleVisitor)

			err := c.Select(TabAIProgram)
			if !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
			if c.Active() != TabOverview {
				t.Errorf("expected active tab unchanged, got %s", c.Active())
			}
		})

		t.Run("Activates Authorized Tab", func(t *testing.T) {
			c := NewController(models.RoleCandidate)

			if err := c.Select(TabCampaigns); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if c.Active() != TabCampaigns {
				t.Errorf("expected campaigns, got %s", c.Active())
			}
		})
	})

	t.Run("Cycle", func(t *testing.T) {
		t.Run("Wraps Within Authorized Set", func(t *testing.T) {
			c := NewController(models.RoleVisitor)

			if got := c.Cycle(1); got != TabCandidates {
				t.Errorf("expected candidates, got %s", got)
			}
			if got := c.Cycle(1); got != TabOverview {
				t.Errorf("expected wrap to overview, got %s", got)
			}
		})

		t.Run("Backward Wraps Too", func(t *testing.T) {
			c := NewController(models.RoleVisitor)

			if got := c.Cycle(-1); got != TabCandidates {
				t.Errorf("expected candidates, got %s", got)
			}
		})

		t.Run("Never Lands On An Unauthorized Tab", func(t *testing.T) {
			c := NewController(models.RoleGrafico)

			for i := 0; i < 10; i++ {
				tab := c.Cycle(1)
				if !c.Authorized(tab) {
					t.Fatalf("cycle landed on unauthorized tab %s", tab)
				}
			}
		})
	})
}
