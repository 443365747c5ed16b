package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
)

// Channel is the pseudo channel ID used by the preview.
const Channel = "console"

// Dispatcher receives preview events.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev domain.Event) error
}

// Preview is an interactive loop over a Sink.
type Preview struct {
	dispatcher Dispatcher
	sink       *Sink
	in         *bufio.Reader
	out        io.Writer
}

// NewPreview creates a preview loop reading choices from r.
// Prompts go to the sink; hints and input errors go to out.
func NewPreview(d Dispatcher, sink *Sink, r io.Reader, out io.Writer) *Preview {
	return &Preview{
		dispatcher: d,
		sink:       sink,
		in:         bufio.NewReader(r),
		out:        out,
	}
}

// Run shows the root menu and handles choices until EOF, "q", or ctx is done.
//
// Input:
//   - a number picks the matching option
//   - 0 or "b" presses "Back to Main Menu" where the prompt offers it
//   - an empty line after an answer reopens the main menu
func (p *Preview) Run(ctx context.Context) error {
	if err := p.dispatcher.Dispatch(ctx, domain.Event{Type: domain.EventInvoke, ChannelID: Channel}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(p.out, "> ")
		line, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		clean, serr := SanitizeInput(strings.TrimSpace(line))
		if serr != nil {
			fmt.Fprintf(p.out, "Error: %v. Please try again.\n", serr)
			continue
		}
		if clean == "q" || clean == "quit" {
			return nil
		}

		ev, ok := p.resolve(clean)
		if !ok {
			fmt.Fprintln(p.out, "Unknown choice. Enter an option number, 0 to go back where offered, or q to quit.")
			continue
		}
		if derr := p.dispatcher.Dispatch(ctx, ev); derr != nil {
			return derr
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// resolve maps an input line to the event a button press would produce.
func (p *Preview) resolve(input string) (domain.Event, bool) {
	id, prompt, ok := p.sink.Last(Channel)
	if !ok {
		return domain.Event{}, false
	}
	if len(prompt.Actions) == 0 {
		if input == "" {
			return domain.Event{Type: domain.EventInvoke, ChannelID: Channel}, true
		}
		return domain.Event{}, false
	}
	back := input == "0" || input == "b"
	for _, a := range prompt.Actions {
		if a.IsBack() == back && (back || a.Label == input) {
			return domain.Event{Type: domain.EventSelect, ChannelID: Channel, MessageID: id, Key: a.Target}, true
		}
	}
	return domain.Event{}, false
}
