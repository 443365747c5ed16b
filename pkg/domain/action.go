package domain

// PromptKind defines how the host should present a Prompt.
type PromptKind string

const (
	// PromptCard is a menu: title, numbered body and selectable actions.
	PromptCard PromptKind = "card"

	// PromptMessage is plain text with no actions (answers and failure notices).
	PromptMessage PromptKind = "message"
)

// ActionStyle hints how an action should be drawn.
type ActionStyle string

const (
	StylePrimary ActionStyle = "primary"
	StyleDanger  ActionStyle = "danger"
)

// Action is a pressable affordance bound to a navigation key.
type Action struct {
	Label  string      `json:"label"`
	Target string      `json:"target"` // navigation key fetched when pressed
	Style  ActionStyle `json:"style"`
}

// IsBack reports whether the action is the return-to-root affordance.
func (a Action) IsBack() bool {
	return a.Label == BackLabel && a.Target == RootKey
}

// Prompt is the rendered projection of a Response, ready to be posted by a Sink.
type Prompt struct {
	Kind    PromptKind `json:"kind"`
	Title   string     `json:"title,omitempty"`
	Body    string     `json:"body"`
	Actions []Action   `json:"actions,omitempty"`
}

// Targets returns the navigation keys of the prompt's actions, in order.
func (p Prompt) Targets() []string {
	keys := make([]string, 0, len(p.Actions))
	for _, a := range p.Actions {
		keys = append(keys, a.Target)
	}
	return keys
}
