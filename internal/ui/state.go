// Package ui models the generator form as an explicit state value updated by
// a pure reducer.
package ui

import (
	"strings"

	"github.com/joestump/scribo/internal/catalog"
	"github.com/joestump/scribo/internal/prompt"
)

// State is everything the generator page shows. The zero value is not
// valid; start from Initial.
type State struct {
	Tool       catalog.Kind
	TemplateID string
	Fields     prompt.Fields

	Generating bool
	Content    string
	// GenerationID identifies Content in the history store, when recorded.
	GenerationID string
	Error        string

	KeyConfigured bool
	ShowKeyModal  bool
	// TempKey is the value shown in the key modal input.
	TempKey string

	ShowExport bool
}

// Initial is the state of a fresh session. A session without a key opens
// the key modal straight away.
func Initial(keyConfigured bool) State {
	return State{
		Tool:          catalog.Script,
		KeyConfigured: keyConfigured,
		ShowKeyModal:  !keyConfigured,
	}
}

// Action is a state transition. Implementations are the types below.
type Action interface {
	apply(State) State
}

type (
	SelectTool     struct{ Tool catalog.Kind }
	SelectTemplate struct{ ID string }
	SetTopic       struct{ Value string }
	SetPlatform    struct{ Value string }
	SetDuration    struct{ Value string }
	SetAudience    struct{ Value string }

	// OpenKeyModal prefills the input with Current, the stored key.
	OpenKeyModal  struct{ Current string }
	CloseKeyModal struct{}
	// KeySaved records the outcome of a save; Configured is false when the
	// submitted key was blank and nothing was stored.
	KeySaved   struct{ Configured bool }
	KeyRemoved struct{}

	GenerateStarted   struct{}
	GenerateSucceeded struct{ Content, GenerationID string }
	GenerateFailed    struct{ Message string }
	// KeyRequired is dispatched instead of GenerateStarted when no key is
	// configured.
	KeyRequired struct{ Message string }

	OpenExport   struct{}
	CloseExport  struct{}
	DismissError struct{}
)

// Reduce returns the state after a.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// ReduceAll applies actions in order.
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

// Selecting another tool keeps the template id; the prompt builder falls back
// to the raw topic when the new tool does not have it.
func (a SelectTool) apply(s State) State {
	if _, err := catalog.ParseKind(string(a.Tool)); err != nil {
		return s
	}
	s.Tool = a.Tool
	return s
}

func (a SelectTemplate) apply(s State) State { s.TemplateID = a.ID; return s }
func (a SetTopic) apply(s State) State       { s.Fields.Topic = a.Value; return s }
func (a SetPlatform) apply(s State) State    { s.Fields.Platform = a.Value; return s }
func (a SetDuration) apply(s State) State    { s.Fields.Duration = a.Value; return s }
func (a SetAudience) apply(s State) State    { s.Fields.Audience = a.Value; return s }

func (a OpenKeyModal) apply(s State) State {
	s.ShowKeyModal = true
	s.TempKey = a.Current
	return s
}

func (CloseKeyModal) apply(s State) State {
	s.ShowKeyModal = false
	s.TempKey = ""
	return s
}

func (a KeySaved) apply(s State) State {
	if a.Configured {
		s.KeyConfigured = true
	}
	s.ShowKeyModal = false
	s.TempKey = ""
	return s
}

func (KeyRemoved) apply(s State) State {
	s.KeyConfigured = false
	s.ShowKeyModal = false
	s.TempKey = ""
	return s
}

func (GenerateStarted) apply(s State) State {
	s.Generating = true
	s.Content = ""
	s.GenerationID = ""
	s.Error = ""
	return s
}

func (a GenerateSucceeded) apply(s State) State {
	s.Generating = false
	s.Content = a.Content
	s.GenerationID = a.GenerationID
	return s
}

func (a GenerateFailed) apply(s State) State {
	s.Generating = false
	s.Error = a.Message
	return s
}

func (a KeyRequired) apply(s State) State {
	s.Error = a.Message
	s.ShowKeyModal = true
	return s
}

func (OpenExport) apply(s State) State {
	if s.Content != "" {
		s.ShowExport = true
	}
	return s
}

func (CloseExport) apply(s State) State  { s.ShowExport = false; return s }
func (DismissError) apply(s State) State { s.Error = ""; return s }

// CanGenerate reports whether the generate control is enabled.
func CanGenerate(s State) bool {
	return !s.Generating && (strings.TrimSpace(s.Fields.Topic) != "" || s.TemplateID != "")
}

// Prompt builds the prompt the current form would send.
func Prompt(reg *catalog.Registry, s State) string {
	return prompt.Build(reg, s.Tool, s.TemplateID, s.Fields)
}
