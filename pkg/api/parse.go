package api

import (
	"bytes"
	"encoding/json"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
)

// Payload field names of the decision API contract.
const (
	fieldQuestion = "question"
	fieldOptions  = "options"
	fieldAnswer   = "answer"
)

// ParseResponse decodes a 2xx body fetched for key into a Response.
// The body must be a JSON object holding either question+options or answer, never both.
func ParseResponse(key string, body []byte) (domain.Response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return domain.Response{}, domain.Malformed("body is not a JSON object: %v", err)
	}
	if fields == nil {
		return domain.Response{}, domain.Malformed("body is null")
	}

	rawQuestion, hasQuestion := fields[fieldQuestion]
	rawOptions, hasOptions := fields[fieldOptions]
	rawAnswer, hasAnswer := fields[fieldAnswer]

	switch {
	case (hasQuestion || hasOptions) && hasAnswer:
		return domain.Response{}, domain.Malformed("payload has both a menu and an answer")

	case hasAnswer:
		answer, err := decodeString(fieldAnswer, rawAnswer)
		if err != nil {
			return domain.Response{}, err
		}
		return domain.NewAnswer(key, answer), nil

	case hasQuestion || hasOptions:
		if !hasQuestion {
			return domain.Response{}, domain.Malformed("options without a question")
		}
		if !hasOptions {
			return domain.Response{}, domain.Malformed("question without options")
		}
		question, err := decodeString(fieldQuestion, rawQuestion)
		if err != nil {
			return domain.Response{}, err
		}
		var options []string
		if isNull(rawOptions) {
			return domain.Response{}, domain.Malformed("options is null")
		}
		if err := json.Unmarshal(rawOptions, &options); err != nil {
			return domain.Response{}, domain.Malformed("options must be a list of strings: %v", err)
		}
		resp := domain.NewMenu(key, question, options...)
		if err := resp.Validate(); err != nil {
			return domain.Response{}, err
		}
		return resp, nil

	default:
		return domain.Response{}, domain.Malformed("payload has neither a menu nor an answer")
	}
}

func decodeString(field string, raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", domain.Malformed("%s is null", field)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", domain.Malformed("%s must be a string: %v", field, err)
	}
	return s, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
