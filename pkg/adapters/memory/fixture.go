package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// fixtureEntry mirrors one decision API payload in a YAML fixture.
// Pointers distinguish "absent" from "empty" so the wire rules still apply.
type fixtureEntry struct {
	Question *string  `mapstructure:"question"`
	Options  []string `mapstructure:"options"`
	Answer   *string  `mapstructure:"answer"`
}

// payload keeps only the fields present in the fixture.
func (e fixtureEntry) payload() map[string]any {
	p := make(map[string]any, 2)
	if e.Question != nil {
		p["question"] = *e.Question
	}
	if e.Options != nil {
		p["options"] = e.Options
	}
	if e.Answer != nil {
		p["answer"] = *e.Answer
	}
	return p
}

// LoadFixture reads a YAML document mapping navigation keys to payloads:
//
//	menu:
//	  question: Pick a topic
//	  options: [Billing, Support]
//	Support:
//	  answer: Support is open 9-5.
//
// Unknown fields are rejected so typos do not silently produce malformed menus.
func LoadFixture(r io.Reader) (*Fetcher, error) {
	var raw map[string]map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	bodies := make(map[string]string, len(raw))
	for key, fields := range raw {
		var entry fixtureEntry
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &entry,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(fields); err != nil {
			return nil, fmt.Errorf("fixture entry %q: %w", key, err)
		}
		body, err := json.Marshal(entry.payload())
		if err != nil {
			return nil, fmt.Errorf("fixture entry %q: %w", key, err)
		}
		bodies[key] = string(body)
	}
	return NewFetcher(bodies), nil
}

// LoadFixtureFile is LoadFixture on a file path.
func LoadFixtureFile(path string) (*Fetcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()
	return LoadFixture(f)
}
