package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ContentRenderer turns markdown into terminal output.
type ContentRenderer func(markdown string) (string, error)

// NewMarkdownRenderer returns a glamour renderer that detects light and dark backgrounds.
func NewMarkdownRenderer() (ContentRenderer, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Sink prints prompts to a writer and remembers the last one per channel.
type Sink struct {
	w        io.Writer
	renderer ContentRenderer
	profile  termenv.Profile

	mu   sync.Mutex
	seq  int
	last map[string]posted
}

type posted struct {
	id     string
	prompt domain.Prompt
}

// Ensure Sink implements ports.Sink
var _ ports.Sink = (*Sink)(nil)

// SinkOption configures the Sink.
type SinkOption func(*Sink)

// WithRenderer renders prompt bodies as markdown.
func WithRenderer(r ContentRenderer) SinkOption {
	return func(s *Sink) {
		s.renderer = r
	}
}

// WithColorProfile sets the color profile for action labels.
func WithColorProfile(p termenv.Profile) SinkOption {
	return func(s *Sink) {
		s.profile = p
	}
}

// NewSink creates a sink writing to w. Output is uncolored unless a profile is set.
func NewSink(w io.Writer, opts ...SinkOption) *Sink {
	if w == nil {
		w = os.Stdout
	}
	s := &Sink{
		w:       w,
		profile: termenv.Ascii,
		last:    make(map[string]posted),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Post prints the prompt and returns a synthetic message ID.
func (s *Sink) Post(_ context.Context, channelID string, prompt domain.Prompt) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := "console-" + strconv.Itoa(s.seq)

	var b strings.Builder
	if prompt.Title != "" {
		b.WriteString("## " + prompt.Title + "\n\n")
	}
	b.WriteString(prompt.Body)
	out := b.String()
	if s.renderer != nil {
		if rendered, err := s.renderer(out); err == nil {
			out = rendered
		}
	}
	if _, err := fmt.Fprintln(s.w, strings.TrimSpace(out)); err != nil {
		return "", err
	}

	if len(prompt.Actions) > 0 {
		labels := make([]string, 0, len(prompt.Actions))
		for _, a := range prompt.Actions {
			labels = append(labels, s.styleAction(a))
		}
		if _, err := fmt.Fprintln(s.w, strings.Join(labels, "  ")); err != nil {
			return "", err
		}
	}

	s.last[channelID] = posted{id: id, prompt: prompt}
	return id, nil
}

func (s *Sink) styleAction(a domain.Action) string {
	label := a.Label
	color := "#3498db"
	if a.IsBack() {
		label = "0) " + label
		color = "#e74c3c"
	} else {
		label = "[" + label + "]"
	}
	return s.profile.String(label).Foreground(s.profile.Color(color)).String()
}

// Last returns the most recent prompt posted to channelID.
func (s *Sink) Last(channelID string) (string, domain.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.last[channelID]
	return p.id, p.prompt, ok
}
