package domain

// ResponseKind tags which variant a Response holds.
type ResponseKind string

const (
	KindMenu   ResponseKind = "menu"
	KindAnswer ResponseKind = "answer"
	KindError  ResponseKind = "error"
)

// MenuNode is a node with a question and an ordered list of options.
// Each option label doubles as the navigation key for selecting it.
type MenuNode struct {
	Key      string   `json:"-"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// AnswerNode is a terminal node. It has no further options.
type AnswerNode struct {
	Key    string `json:"-"`
	Answer string `json:"answer"`
}

// Response is the result of fetching a navigation key.
// Exactly one of Menu, Answer or Err is set, matching Kind.
type Response struct {
	Kind   ResponseKind
	Menu   *MenuNode
	Answer *AnswerNode
	Err    error
}

// NewMenu builds a menu Response.
func NewMenu(key, question string, options ...string) Response {
	return Response{
		Kind: KindMenu,
		Menu: &MenuNode{Key: key, Question: question, Options: options},
	}
}

// NewAnswer builds an answer Response.
func NewAnswer(key, answer string) Response {
	return Response{
		Kind:   KindAnswer,
		Answer: &AnswerNode{Key: key, Answer: answer},
	}
}

// NewError builds an error Response.
func NewError(err error) Response {
	return Response{Kind: KindError, Err: err}
}

// Validate checks the invariants of the tagged union.
// A menu must carry at least one option, every option must be a non-empty, unique label.
func (r Response) Validate() error {
	switch r.Kind {
	case KindMenu:
		if r.Menu == nil || r.Answer != nil {
			return Malformed("menu response must carry only a menu node")
		}
		return r.Menu.Validate()
	case KindAnswer:
		if r.Answer == nil || r.Menu != nil {
			return Malformed("answer response must carry only an answer node")
		}
		return nil
	case KindError:
		if r.Err == nil {
			return Malformed("error response without an error")
		}
		return r.Err
	default:
		return Malformed("unknown response kind %q", r.Kind)
	}
}

// Validate checks that the menu can be rendered with one action per option.
func (m *MenuNode) Validate() error {
	if len(m.Options) == 0 {
		return Malformed("menu %q has no options", m.Question)
	}
	seen := make(map[string]struct{}, len(m.Options))
	for i, opt := range m.Options {
		if opt == "" {
			return Malformed("option %d is empty", i+1)
		}
		if _, dup := seen[opt]; dup {
			return Malformed("duplicate option %q", opt)
		}
		seen[opt] = struct{}{}
	}
	return nil
}
