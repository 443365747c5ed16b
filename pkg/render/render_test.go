package render_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_RootMenu(t *testing.T) {
	resp := domain.NewMenu(domain.RootKey, "Pick a topic", "Billing", "Support")

	prompt, err := render.Render(resp, true)
	require.NoError(t, err)

	assert.Equal(t, domain.PromptCard, prompt.Kind)
	assert.Equal(t, "Pick a topic", prompt.Title)
	assert.Equal(t, "1. Billing\n2. Support", prompt.Body)
	assert.Equal(t, []domain.Action{
		{Label: "1", Target: "Billing", Style: domain.StylePrimary},
		{Label: "2", Target: "Support", Style: domain.StylePrimary},
	}, prompt.Actions)
}

func TestRender_SubmenuAddsBack(t *testing.T) {
	resp := domain.NewMenu("Billing", "Billing questions", "Refunds", "Invoices", "Plans")

	prompt, err := render.Render(resp, false)
	require.NoError(t, err)

	require.Len(t, prompt.Actions, 4)
	back := prompt.Actions[3]
	assert.True(t, back.IsBack())
	assert.Equal(t, "Back to Main Menu", back.Label)
	assert.Equal(t, domain.RootKey, back.Target)
	assert.Equal(t, domain.StyleDanger, back.Style)
	assert.Equal(t, []string{"Refunds", "Invoices", "Plans", "menu"}, prompt.Targets())
}

func TestRender_ActionCountAndNumbering(t *testing.T) {
	for n := 1; n <= 12; n++ {
		options := make([]string, n)
		for i := range options {
			options[i] = fmt.Sprintf("Option %c", 'A'+i)
		}
		resp := domain.NewMenu("k", "q", options...)

		for _, atRoot := range []bool{true, false} {
			prompt, err := render.Render(resp, atRoot)
			require.NoError(t, err)

			want := n
			if !atRoot {
				want = n + 1
			}
			require.Len(t, prompt.Actions, want, "n=%d atRoot=%v", n, atRoot)

			lines := strings.Split(prompt.Body, "\n")
			require.Len(t, lines, n)
			for i, opt := range options {
				assert.Equal(t, strconv.Itoa(i+1)+". "+opt, lines[i])
				assert.Equal(t, strconv.Itoa(i+1), prompt.Actions[i].Label)
				assert.Equal(t, opt, prompt.Actions[i].Target, "target is the label, not the index")
			}
		}
	}
}

func TestRender_IsStable(t *testing.T) {
	resp := domain.NewMenu("k", "q", "c", "a", "b")
	first, err := render.Render(resp, false)
	require.NoError(t, err)
	second, err := render.Render(resp, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "1. c\n2. a\n3. b", first.Body, "array order is preserved")
}

func TestRender_Answer(t *testing.T) {
	for _, atRoot := range []bool{true, false} {
		prompt, err := render.Render(domain.NewAnswer("Support", "Support is open 9-5."), atRoot)
		require.NoError(t, err)
		assert.Equal(t, domain.PromptMessage, prompt.Kind)
		assert.Equal(t, "Support is open 9-5.", prompt.Body)
		assert.Empty(t, prompt.Title)
		assert.Empty(t, prompt.Actions, "answers never carry actions, not even back")
	}
}

func TestRender_EmptyOptionsIsMalformed(t *testing.T) {
	_, err := render.Render(domain.NewMenu("k", "Pick a topic"), false)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestRender_ErrorResponse(t *testing.T) {
	_, err := render.Render(domain.NewError(&domain.TransportError{StatusCode: 500}), true)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestFailureNotice(t *testing.T) {
	notice := render.FailureNotice()
	assert.Equal(t, domain.PromptMessage, notice.Kind)
	assert.Equal(t, "Failed to retrieve data from API.", notice.Body)
	assert.Empty(t, notice.Actions)
}
