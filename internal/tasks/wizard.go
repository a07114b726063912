package tasks

import (
	"context"
	"fmt"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/services"
	"github.com/desertthunder/elx/internal/shared"
)

// Step enumerates the wizard states. There are no other states.
type Step int

const (
	StepBasics Step = iota
	StepPreferences
	StepResult
)

func (s Step) String() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepPreferences:
		return "preferences"
	case StepResult:
		return "result"
	default:
		return ""
	}
}

// MinSelections is the per-catalog minimum required before generation.
const MinSelections = 3

// IssueCatalog lists the selectable campaign issues, in display order.
var IssueCatalog = []string{
	"Miglioramento delle strutture scolastiche",
	"Organizzazione eventi e attività",
	"Comunicazione scuola-studenti",
	"Servizi per studenti (mensa, trasporti)",
	"Attività sportive e ricreative",
	"Supporto didattico",
	"Tecnologia e innovazione",
	"Sostenibilità ambientale",
	"Inclusività e diversità",
}

// ValueCatalog lists the selectable personal values, in display order.
var ValueCatalog = []string{
	"Trasparenza",
	"Innovazione",
	"Collaborazione",
	"Responsabilità",
	"Inclusione",
	"Creatività",
	"Sostenibilità",
	"Eccellenza",
	"Rispetto",
}

// Wizard drives the multi-step program generation flow.
//
// Transitions only happen through [Wizard.Next], [Wizard.Back],
// [Wizard.Generate] and [Wizard.Restart]; each checks its guard first, so the
// wizard can never hold inconsistent inputs for its step.
//
// The wizard is not safe for concurrent use. Callers that run the generation
// call off their own goroutine use [Wizard.BeginGenerate] and
// [Wizard.FinishGenerate] so every state mutation stays on the caller's loop.
type Wizard struct {
	gateway services.Gateway

	step          Step
	busy          bool
	candidateName string
	classYear     string
	schoolContext string
	issues        []string
	values        []string
	generated     string
}

// NewWizard creates a [Wizard] at [StepBasics] for the named candidate.
func NewWizard(gateway services.Gateway, candidateName string) *Wizard {
	return &Wizard{gateway: gateway, candidateName: candidateName}
}

// Step returns the current state.
func (w *Wizard) Step() Step { return w.step }

// Busy reports whether a generation call is in flight.
func (w *Wizard) Busy() bool { return w.busy }

// Generated returns the generated program text, empty outside [StepResult].
func (w *Wizard) Generated() string { return w.generated }

// CandidateName returns the name the program is generated for.
func (w *Wizard) CandidateName() string { return w.candidateName }

// ClassYear returns the entered class year.
func (w *Wizard) ClassYear() string { return w.classYear }

// SchoolContext returns the entered school description.
func (w *Wizard) SchoolContext() string { return w.schoolContext }

// Issues returns the selected issues in selection order.
func (w *Wizard) Issues() []string { return w.issues }

// Values returns the selected values in selection order.
func (w *Wizard) Values() []string { return w.values }

// SetClassYear records the class year input.
func (w *Wizard) SetClassYear(year string) { w.classYear = year }

// SetSchoolContext records the optional school description.
func (w *Wizard) SetSchoolContext(ctx string) { w.schoolContext = ctx }

// ToggleIssue adds the issue to the selection, or removes it if present.
// Selection order is preserved.
func (w *Wizard) ToggleIssue(issue string) {
	w.issues = toggle(w.issues, issue)
}

// ToggleValue adds the value to the selection, or removes it if present.
func (w *Wizard) ToggleValue(value string) {
	w.values = toggle(w.values, value)
}

func toggle(selected []string, item string) []string {
	for i, s := range selected {
		if s == item {
			return append(selected[:i:i], selected[i+1:]...)
		}
	}
	return append(selected, item)
}

// Next advances from [StepBasics] to [StepPreferences].
//
// The class year must be filled in; other steps advance through
// [Wizard.Generate] only.
func (w *Wizard) Next() error {
	if w.step != StepBasics {
		return fmt.Errorf("%w: cannot advance from %s", shared.ErrValidation, w.step)
	}
	if w.classYear == "" {
		return fmt.Errorf("%w: class year is required", shared.ErrValidation)
	}

	w.step = StepPreferences
	return nil
}

// Back returns from [StepPreferences] to [StepBasics], keeping all inputs.
func (w *Wizard) Back() error {
	if w.step != StepPreferences {
		return fmt.Errorf("%w: cannot go back from %s", shared.ErrValidation, w.step)
	}

	w.step = StepBasics
	return nil
}

// Restart returns from [StepResult] to [StepBasics], discarding the generated
// text. Selections and inputs survive so a new draft starts from them.
func (w *Wizard) Restart() error {
	if w.step != StepResult {
		return fmt.Errorf("%w: cannot restart from %s", shared.ErrValidation, w.step)
	}

	w.step = StepBasics
	w.generated = ""
	return nil
}

// Request assembles the generation payload from the current inputs.
func (w *Wizard) Request() models.ProgramRequest {
	return models.ProgramRequest{
		CandidateName:  w.candidateName,
		ClassYear:      w.classYear,
		MainIssues:     w.issues,
		PersonalValues: w.values,
		SchoolContext:  w.schoolContext,
	}
}

// BeginGenerate checks the generation guards and marks the wizard busy,
// returning the payload to submit.
//
// Only valid on [StepPreferences] with at least [MinSelections] issues and
// values selected; a guard failure returns before the wizard is marked busy,
// so nothing reaches the network. The caller submits the payload and reports
// the outcome through [Wizard.FinishGenerate].
func (w *Wizard) BeginGenerate() (models.ProgramRequest, error) {
	if w.step != StepPreferences {
		return models.ProgramRequest{}, fmt.Errorf("%w: cannot generate from %s", shared.ErrValidation, w.step)
	}
	if len(w.issues) < MinSelections {
		return models.ProgramRequest{}, fmt.Errorf("%w: select at least %d issues", shared.ErrValidation, MinSelections)
	}
	if len(w.values) < MinSelections {
		return models.ProgramRequest{}, fmt.Errorf("%w: select at least %d values", shared.ErrValidation, MinSelections)
	}

	w.busy = true
	return w.Request(), nil
}

// FinishGenerate clears the busy flag and applies the outcome of the call
// started by [Wizard.BeginGenerate]. On success the wizard moves to
// [StepResult]; on failure it stays on the preferences step with no generated
// text, ready for a corrected resubmission.
func (w *Wizard) FinishGenerate(content string, err error) error {
	w.busy = false

	if err != nil {
		w.generated = ""
		return err
	}

	w.generated = content
	w.step = StepResult
	return nil
}

// Generate submits the preferences and, on success, moves to [StepResult].
// It composes [Wizard.BeginGenerate] and [Wizard.FinishGenerate] around the
// gateway call for callers that run the flow synchronously.
func (w *Wizard) Generate(ctx context.Context) error {
	req, err := w.BeginGenerate()
	if err != nil {
		return err
	}

	content, err := w.gateway.GenerateProgram(ctx, req)
	return w.FinishGenerate(content, err)
}
