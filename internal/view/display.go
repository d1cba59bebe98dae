package view

import "time"

// Field is one labeled row in the results region.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ResultsView is the projection of one successful payload into the results
// region. Alerts fill Summary/Items/Notice; readings fill Fields.
type ResultsView struct {
	Summary    string    `json:"summary,omitempty"`
	Items      []string  `json:"items,omitempty"` // alert headlines, in the order received
	Notice     string    `json:"notice,omitempty"`
	Fields     []Field   `json:"fields,omitempty"`
	ClearInput bool      `json:"clear_input"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// State is the serializable display state. Invariant: the results and error
// regions are never both visible.
type State struct {
	Results        *ResultsView `json:"results,omitempty"`
	ResultsVisible bool         `json:"results_visible"`
	Error          string       `json:"error,omitempty"`
	ErrorVisible   bool         `json:"error_visible"`
}

// Display is the capability the renderer writes through. Implementations
// must keep the two regions mutually exclusive: entering one state clears
// and hides the other.
type Display interface {
	ShowResults(ResultsView)
	ShowError(message string)
	Clear()
}

// Screen is the reference Display: it holds one State and enforces the
// exclusivity invariant on every transition. Each request/render cycle gets
// its own Screen; nothing is shared between cycles.
type Screen struct {
	state State
}

// NewScreen returns an idle screen with both regions hidden.
func NewScreen() *Screen { return &Screen{} }

// ShowResults makes the results region visible and empties and hides the
// error region.
func (s *Screen) ShowResults(v ResultsView) {
	s.state.Error = ""
	s.state.ErrorVisible = false
	s.state.Results = &v
	s.state.ResultsVisible = true
}

// ShowError makes the error region visible with the literal message and
// hides the results region.
func (s *Screen) ShowError(message string) {
	s.state.Results = nil
	s.state.ResultsVisible = false
	s.state.Error = message
	s.state.ErrorVisible = true
}

// Clear returns the screen to the idle state.
func (s *Screen) Clear() {
	s.state = State{}
}

// State returns a snapshot of the current display state.
func (s *Screen) State() State { return s.state }
