// Package render converts decision API responses into prompts a Sink can post.
package render

import (
	"strconv"
	"strings"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
)

// Render projects resp into a prompt.
//
// A menu becomes a card whose body lists the options as "1. a\n2. b", with one action per
// option (label = its 1-based index, target = the option text) followed, when atRoot is
// false, by a single back action targeting the root key. An answer becomes a plain message
// with no actions. Any response that cannot produce a card with at least one option action
// yields domain.ErrMalformedResponse.
func Render(resp domain.Response, atRoot bool) (domain.Prompt, error) {
	if err := resp.Validate(); err != nil {
		return domain.Prompt{}, err
	}

	switch resp.Kind {
	case domain.KindAnswer:
		return domain.Prompt{
			Kind: domain.PromptMessage,
			Body: resp.Answer.Answer,
		}, nil
	case domain.KindMenu:
		return menuCard(resp.Menu, atRoot), nil
	default:
		return domain.Prompt{}, domain.Malformed("cannot render %q response", resp.Kind)
	}
}

func menuCard(menu *domain.MenuNode, atRoot bool) domain.Prompt {
	lines := make([]string, 0, len(menu.Options))
	actions := make([]domain.Action, 0, len(menu.Options)+1)
	for i, opt := range menu.Options {
		n := strconv.Itoa(i + 1)
		lines = append(lines, n+". "+opt)
		actions = append(actions, domain.Action{
			Label:  n,
			Target: opt,
			Style:  domain.StylePrimary,
		})
	}
	if !atRoot {
		actions = append(actions, BackAction())
	}

	return domain.Prompt{
		Kind:    domain.PromptCard,
		Title:   menu.Question,
		Body:    strings.Join(lines, "\n"),
		Actions: actions,
	}
}

// BackAction is the return-to-root affordance. Its target is always the root key.
func BackAction() domain.Action {
	return domain.Action{
		Label:  domain.BackLabel,
		Target: domain.RootKey,
		Style:  domain.StyleDanger,
	}
}

// FailureNotice is the fixed message posted when a step fails. It offers no retry action.
func FailureNotice() domain.Prompt {
	return domain.Prompt{
		Kind: domain.PromptMessage,
		Body: domain.FailureMessage,
	}
}
