package discord

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
)

// Discord limits for message components and embeds, counted in UTF-16 code units.
const (
	maxCustomIDLen   = 100
	maxButtonsPerRow = 5
	maxRows          = 5
	maxTitleLen      = 256
	maxDescLen       = 4096
	maxContentLen    = 2000
)

const (
	optionPrefix = "opt:"
	backPrefix   = "back:"
)

// ErrPromptTooLarge is returned when a prompt does not fit Discord's message limits.
var ErrPromptTooLarge = errors.New("prompt exceeds discord limits")

// EncodeCustomID builds the component custom ID for an action.
func EncodeCustomID(a domain.Action) (string, error) {
	prefix := optionPrefix
	if a.IsBack() {
		prefix = backPrefix
	}
	id := prefix + a.Target
	if textLen(id) > maxCustomIDLen {
		return "", fmt.Errorf("%w: navigation key %q is longer than %d characters", ErrPromptTooLarge, a.Target, maxCustomIDLen-len(prefix))
	}
	return id, nil
}

// textLen measures s the way Discord enforces its length limits.
func textLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// DecodeCustomID recovers the navigation key from a custom ID.
// Back buttons always resolve to the root key.
func DecodeCustomID(id string) (string, bool) {
	switch {
	case strings.HasPrefix(id, backPrefix):
		return domain.RootKey, true
	case strings.HasPrefix(id, optionPrefix):
		key := strings.TrimPrefix(id, optionPrefix)
		return key, key != ""
	default:
		return "", false
	}
}
