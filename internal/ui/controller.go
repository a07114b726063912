package ui

import (
	"fmt"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
)

// Tab identifies a dashboard section.
type Tab string

const (
	TabOverview   Tab = "overview"
	TabAIProgram  Tab = "ai-program"
	TabCampaigns  Tab = "campaigns"
	TabPrograms   Tab = "programs"
	TabCandidates Tab = "candidates"
)

func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabAIProgram:
		return "AI Program"
	case TabCampaigns:
		return "Campaigns"
	case TabPrograms:
		return "Programs"
	case TabCandidates:
		return "Candidates"
	default:
		return string(t)
	}
}

// Controller owns tab navigation and enforces the role gate.
//
// The authorized tab set is derived from the role once; every selection is
// checked against it, so an unauthorized section can be neither rendered nor
// reached.
type Controller struct {
	role   models.Role
	tabs   []Tab
	active Tab
}

// NewController creates a [Controller] for the role, starting on the overview.
func NewController(role models.Role) *Controller {
	caps := role.Capabilities()

	tabs := []Tab{TabOverview}
	if caps.GenerateProgram {
		tabs = append(tabs, TabAIProgram)
	}
	if caps.ManageCampaigns {
		tabs = append(tabs, TabCampaigns)
	}
	if caps.ManagePrograms {
		tabs = append(tabs, TabPrograms)
	}
	if caps.SeeCandidates {
		tabs = append(tabs, TabCandidates)
	}

	return &Controller{role: role, tabs: tabs, active: TabOverview}
}

// Tabs returns the authorized tabs in display order.
func (c *Controller) Tabs() []Tab { return c.tabs }

// Active returns the currently selected tab.
func (c *Controller) Active() Tab { return c.active }

// Authorized reports whether the role may open the tab.
func (c *Controller) Authorized(tab Tab) bool {
	for _, t := range c.tabs {
		if t == tab {
			return true
		}
	}
	return false
}

// Select activates the tab, rejecting sections outside the role's set. The
// active tab is unchanged on rejection.
func (c *Controller) Select(tab Tab) error {
	if !c.Authorized(tab) {
		return fmt.Errorf("%w: %s is not available to %s", shared.ErrForbidden, tab, c.role)
	}
	c.active = tab
	return nil
}

// Cycle moves the active tab forward (or backward) within the authorized set,
// wrapping around at the ends.
func (c *Controller) Cycle(delta int) Tab {
	idx := 0
	for i, t := range c.tabs {
		if t == c.active {
			idx = i
			break
		}
	}

	idx = (idx + delta) % len(c.tabs)
	if idx < 0 {
		idx += len(c.tabs)
	}

	c.active = c.tabs[idx]
	return c.active
}
