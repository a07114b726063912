package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/services"
	"github.com/desertthunder/elx/internal/tasks"
)

// Model represents the TUI application state.
//
// Navigation goes through the [Controller] so every rendered or selected tab
// has passed the role gate. Overview data is fetched eagerly at startup;
// campaigns and programs are fetched on first entry to their tab, keyed by the
// acting candidate.
type Model struct {
	ctx        context.Context
	gateway    services.Gateway
	session    models.Session
	controller *Controller
	wizard     *tasks.Wizard

	width  int
	height int
	help   help.Model
	keys   keyMap

	stats           *models.Stats
	candidateList   list.Model
	candidatesReady bool
	campaignList    list.Model
	campaignsFor    string
	programList     list.Model
	programsFor     string
	actingID        string

	classYear     textinput.Model
	schoolContext textinput.Model
	focusIdx      int
	cursor        int
	spin          spinner.Model
	savedTitle    string

	err error
}

// NewModel creates a TUI model for the given session.
func NewModel(ctx context.Context, gateway services.Gateway, session models.Session) *Model {
	classYear := textinput.New()
	classYear.Placeholder = "e.g. 5° Liceo Scientifico"
	classYear.Focus()

	schoolContext := textinput.New()
	schoolContext.Placeholder = "Describe your school (optional)"

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		ctx:           ctx,
		gateway:       gateway,
		session:       session,
		controller:    NewController(session.User.Role),
		wizard:        tasks.NewWizard(gateway, session.User.Name),
		help:          help.New(),
		keys:          newKeyMap(),
		classYear:     classYear,
		schoolContext: schoolContext,
		spin:          spin,
	}
}

// Init fetches the overview data. Stats and candidates load concurrently and
// may arrive in either order.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchStats(), m.fetchCandidates())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case statsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case candidatesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.candidates))
		for i, c := range msg.candidates {
			items[i] = candidateItem{candidate: c}
		}
		m.candidateList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.candidateList.Title = "Candidates"
		m.candidatesReady = true
		m.resizeLists()
		return m, nil

	case campaignsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.campaigns))
		for i, c := range msg.campaigns {
			items[i] = campaignItem{campaign: c}
		}
		m.campaignList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.campaignList.Title = "Campaigns"
		m.campaignsFor = msg.candidateID
		m.actingID = msg.candidateID
		m.resizeLists()
		return m, nil

	case programsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.programs))
		for i, p := range msg.programs {
			items[i] = programItem{program: p}
		}
		m.programList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.programList.Title = "Electoral Programs"
		m.programsFor = msg.candidateID
		m.actingID = msg.candidateID
		m.resizeLists()
		return m, nil

	case generationDoneMsg:
		m.err = m.wizard.FinishGenerate(msg.content, msg.err)
		return m, nil

	case programSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.savedTitle = msg.program.Title
		m.programsFor = ""
		return m, nil

	case spinner.TickMsg:
		if !m.wizard.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateLists(msg)
}

// View renders the UI based on the active tab.
func (m *Model) View() string {
	header := m.renderTabs()

	var body string
	switch m.controller.Active() {
	case TabOverview:
		body = m.renderOverview()
	case TabAIProgram:
		body = m.renderWizard()
	case TabCampaigns:
		body = m.renderCampaigns()
	case TabPrograms:
		body = m.renderPrograms()
	case TabCandidates:
		body = m.renderCandidates()
	}

	footer := m.help.ShortHelpView(m.helpKeys())
	if m.err != nil {
		footer = styles.err.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + footer
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", header, body, footer)
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.controller.Active() == TabAIProgram && m.wizard.Step() == tasks.StepBasics

	if !typing || msg.String() == "ctrl+c" {
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.nextTab):
			return m.enterTab(m.controller.Cycle(1))
		case key.Matches(msg, m.keys.prevTab):
			return m.enterTab(m.controller.Cycle(-1))
		}
	}

	if m.controller.Active() == TabAIProgram {
		return m.handleWizardKeys(msg)
	}

	return m.updateLists(msg)
}

// enterTab triggers the lazy fetch for tabs whose data has not been loaded
// for the acting candidate yet.
func (m *Model) enterTab(tab Tab) (tea.Model, tea.Cmd) {
	m.err = nil
	switch tab {
	case TabCampaigns:
		if m.campaignsFor == "" {
			return m, m.fetchCampaigns()
		}
	case TabPrograms:
		if m.programsFor == "" {
			return m, m.fetchPrograms()
		}
	}
	return m, nil
}

func (m *Model) handleWizardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.wizard.Busy() {
		return m, nil
	}

	switch m.wizard.Step() {
	case tasks.StepBasics:
		return m.handleBasicsKeys(msg)
	case tasks.StepPreferences:
		return m.handlePreferencesKeys(msg)
	case tasks.StepResult:
		return m.handleResultKeys(msg)
	}
	return m, nil
}

func (m *Model) handleBasicsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.focusIdx == 0 {
			m.focusIdx = 1
			m.classYear.Blur()
			return m, m.schoolContext.Focus()
		}
		m.wizard.SetClassYear(strings.TrimSpace(m.classYear.Value()))
		m.wizard.SetSchoolContext(strings.TrimSpace(m.schoolContext.Value()))
		if err := m.wizard.Next(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.cursor = 0
		return m, nil
	case "up", "down":
		if m.focusIdx == 0 {
			m.focusIdx = 1
			m.classYear.Blur()
			return m, m.schoolContext.Focus()
		}
		m.focusIdx = 0
		m.schoolContext.Blur()
		return m, m.classYear.Focus()
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.classYear, cmd = m.classYear.Update(msg)
	} else {
		m.schoolContext, cmd = m.schoolContext.Update(msg)
	}
	return m, cmd
}

func (m *Model) handlePreferencesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := len(tasks.IssueCatalog) + len(tasks.ValueCatalog)

	switch {
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.cursor < options-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.toggle):
		if m.cursor < len(tasks.IssueCatalog) {
			m.wizard.ToggleIssue(tasks.IssueCatalog[m.cursor])
		} else {
			m.wizard.ToggleValue(tasks.ValueCatalog[m.cursor-len(tasks.IssueCatalog)])
		}
	case key.Matches(msg, m.keys.back):
		if err := m.wizard.Back(); err == nil {
			m.err = nil
		}
	case key.Matches(msg, m.keys.generate):
		req, err := m.wizard.BeginGenerate()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		return m, tea.Batch(m.spin.Tick, m.generate(req))
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.save):
		return m, m.saveProgram()
	case key.Matches(msg, m.keys.restart):
		if err := m.wizard.Restart(); err == nil {
			m.err = nil
			m.savedTitle = ""
			m.focusIdx = 0
			m.schoolContext.Blur()
			return m, m.classYear.Focus()
		}
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.controller.Active() {
	case TabCandidates:
		if m.candidatesReady {
			m.candidateList, cmd = m.candidateList.Update(msg)
		}
	case TabCampaigns:
		if m.campaignsFor != "" {
			m.campaignList, cmd = m.campaignList.Update(msg)
		}
	case TabPrograms:
		if m.programsFor != "" {
			m.programList, cmd = m.programList.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) resizeLists() {
	w, h := m.width-4, m.height-8
	if w <= 0 || h <= 0 {
		return
	}
	if m.candidatesReady {
		m.candidateList.SetSize(w, h)
	}
	if m.campaignsFor != "" {
		m.campaignList.SetSize(w, h)
	}
	if m.programsFor != "" {
		m.programList.SetSize(w, h)
	}
}

func (m *Model) fetchStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.gateway.Stats(m.ctx)
		return statsFetchedMsg{stats: stats, err: err}
	}
}

func (m *Model) fetchCandidates() tea.Cmd {
	return func() tea.Msg {
		candidates, err := m.gateway.ListCandidates(m.ctx)
		return candidatesFetchedMsg{candidates: candidates, err: err}
	}
}

func (m *Model) fetchCampaigns() tea.Cmd {
	return func() tea.Msg {
		id, err := tasks.ResolveActingCandidate(m.ctx, m.gateway, m.session.User)
		if err != nil {
			return campaignsFetchedMsg{err: err}
		}
		campaigns, err := m.gateway.ListCampaigns(m.ctx, id)
		return campaignsFetchedMsg{candidateID: id, campaigns: campaigns, err: err}
	}
}

func (m *Model) fetchPrograms() tea.Cmd {
	return func() tea.Msg {
		id, err := tasks.ResolveActingCandidate(m.ctx, m.gateway, m.session.User)
		if err != nil {
			return programsFetchedMsg{err: err}
		}
		programs, err := m.gateway.ListPrograms(m.ctx, id)
		return programsFetchedMsg{candidateID: id, programs: programs, err: err}
	}
}

// generate runs only the gateway call; the wizard is mutated exclusively from
// Update so the command goroutine never touches model state.
func (m *Model) generate(req models.ProgramRequest) tea.Cmd {
	return func() tea.Msg {
		content, err := m.gateway.GenerateProgram(m.ctx, req)
		return generationDoneMsg{content: content, err: err}
	}
}

func (m *Model) saveProgram() tea.Cmd {
	return func() tea.Msg {
		id, err := tasks.ResolveActingCandidate(m.ctx, m.gateway, m.session.User)
		if err != nil {
			return programSavedMsg{err: err}
		}

		program := models.Program{
			CandidateID:   id,
			Title:         fmt.Sprintf("Electoral Program %s", time.Now().Format("2006-01-02")),
			Content:       m.wizard.Generated(),
			GeneratedByAI: true,
		}
		saved, err := m.gateway.CreateProgram(m.ctx, program)
		return programSavedMsg{program: saved, err: err}
	}
}

func (m *Model) helpKeys() []key.Binding {
	if m.controller.Active() == TabAIProgram {
		switch m.wizard.Step() {
		case tasks.StepBasics:
			return []key.Binding{m.keys.enter, m.keys.nextTab, m.keys.quit}
		case tasks.StepPreferences:
			return []key.Binding{m.keys.toggle, m.keys.generate, m.keys.back, m.keys.quit}
		case tasks.StepResult:
			return []key.Binding{m.keys.save, m.keys.restart, m.keys.quit}
		}
	}
	return []key.Binding{m.keys.nextTab, m.keys.prevTab, m.keys.quit}
}

func (m *Model) renderTabs() string {
	var rendered []string
	for _, tab := range m.controller.Tabs() {
		if tab == m.controller.Active() {
			rendered = append(rendered, styles.activeTab.Render(tab.Label()))
		} else {
			rendered = append(rendered, styles.tab.Render(tab.Label()))
		}
	}
	return strings.Join(rendered, " ")
}

func (m *Model) renderOverview() string {
	title := styles.title.Render("Election Dashboard")

	who := "Browsing as visitor"
	if m.session.Authenticated() {
		who = fmt.Sprintf("Signed in as %s (%s)", m.session.User.Name, m.session.User.Role)
	}

	if m.stats == nil {
		return fmt.Sprintf("%s\n%s\n\nLoading stats...", title, who)
	}

	stats := fmt.Sprintf(
		"Candidates: %d\nActive campaigns: %d\nTotal campaigns: %d\nPrograms: %d",
		m.stats.TotalCandidates, m.stats.ActiveCampaigns, m.stats.TotalCampaigns, m.stats.TotalPrograms,
	)
	return fmt.Sprintf("%s\n%s\n\n%s", title, who, stats)
}

func (m *Model) renderCandidates() string {
	if !m.candidatesReady {
		return "Loading candidates..."
	}
	return m.candidateList.View()
}

func (m *Model) renderCampaigns() string {
	if m.campaignsFor == "" {
		return "Loading campaigns..."
	}
	return m.campaignList.View()
}

func (m *Model) renderPrograms() string {
	if m.programsFor == "" {
		return "Loading programs..."
	}
	return m.programList.View()
}

func (m *Model) renderWizard() string {
	if m.wizard.Busy() {
		return fmt.Sprintf("%s Generating program...", m.spin.View())
	}

	switch m.wizard.Step() {
	case tasks.StepBasics:
		title := styles.title.Render("AI Program Generator")
		return fmt.Sprintf(
			"%s\nCandidate: %s\n\nClass year *\n%s\n\nSchool context\n%s",
			title, m.wizard.CandidateName(), m.classYear.View(), m.schoolContext.View(),
		)

	case tasks.StepPreferences:
		title := styles.title.Render("Personalize Your Program")
		var b strings.Builder
		b.WriteString(title)
		b.WriteString(fmt.Sprintf("\nMain issues (at least %d)\n", tasks.MinSelections))
		m.renderOptions(&b, tasks.IssueCatalog, m.wizard.Issues(), 0)
		b.WriteString(fmt.Sprintf("\nPersonal values (at least %d)\n", tasks.MinSelections))
		m.renderOptions(&b, tasks.ValueCatalog, m.wizard.Values(), len(tasks.IssueCatalog))
		b.WriteString(fmt.Sprintf(
			"\nSelected: %d issues, %d values",
			len(m.wizard.Issues()), len(m.wizard.Values()),
		))
		return b.String()

	case tasks.StepResult:
		title := styles.ok.Render("✓ Program Generated")
		saved := ""
		if m.savedTitle != "" {
			saved = styles.ok.Render(fmt.Sprintf("\n\nSaved as '%s'", m.savedTitle))
		}
		return fmt.Sprintf("%s\n\n%s%s", title, m.wizard.Generated(), saved)
	}
	return ""
}

func (m *Model) renderOptions(b *strings.Builder, catalog, selected []string, offset int) {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}

	for i, option := range catalog {
		cursor := "  "
		if m.cursor == offset+i {
			cursor = "> "
		}
		mark := "[ ]"
		if chosen[option] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s\n", cursor, mark, option)
		if chosen[option] {
			line = styles.ok.Render(strings.TrimSuffix(line, "\n")) + "\n"
		}
		b.WriteString(line)
	}
}
