package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/elx/internal/models"
)

var (
	_ list.Item = candidateItem{}
	_ list.Item = campaignItem{}
	_ list.Item = programItem{}
)

// candidateItem wraps [models.Candidate] to implement [list.Item].
type candidateItem struct {
	candidate models.Candidate
}

func (i candidateItem) FilterValue() string { return i.candidate.Name }
func (i candidateItem) Title() string       { return i.candidate.Name }
func (i candidateItem) Description() string {
	desc := i.candidate.ClassYear
	if i.candidate.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.candidate.Description)
	}
	return desc
}

// campaignItem wraps [models.Campaign] to implement [list.Item].
type campaignItem struct {
	campaign models.Campaign
}

func (i campaignItem) FilterValue() string { return i.campaign.Title }
func (i campaignItem) Title() string       { return i.campaign.Title }
func (i campaignItem) Description() string {
	desc := string(i.campaign.Status)
	if i.campaign.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.campaign.Description)
	}
	return desc
}

// programItem wraps [models.Program] to implement [list.Item].
type programItem struct {
	program models.Program
}

func (i programItem) FilterValue() string { return i.program.Title }
func (i programItem) Title() string       { return i.program.Title }
func (i programItem) Description() string {
	if i.program.GeneratedByAI {
		return "AI generated"
	}
	return "manual"
}
