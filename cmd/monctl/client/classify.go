package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	monerrors "github.com/concave-dev/monctl/internal/errors"
)

// Outcome is the success payload of a control API call. The server returns
// either a plain message or a structured value, and callers render the two
// differently.
type Outcome struct {
	text       string
	structured any
	isText     bool
}

// TextOutcome wraps a plain string payload.
func TextOutcome(s string) Outcome {
	return Outcome{text: s, isText: true}
}

// StructuredOutcome wraps any non-string payload, including null.
func StructuredOutcome(v any) Outcome {
	return Outcome{structured: v}
}

// IsText reports whether the payload is a plain string.
func (o Outcome) IsText() bool {
	return o.isText
}

// Text returns the string payload, or "" for structured outcomes.
func (o Outcome) Text() string {
	return o.text
}

// Value returns the payload as decoded JSON: a string for text outcomes.
func (o Outcome) Value() any {
	if o.isText {
		return o.text
	}
	return o.structured
}

// envelope is the response body every control API call returns.
type envelope struct {
	Success any `json:"success"`
	Content any `json:"content"`
}

// Classify turns a raw response into an Outcome or a classified error.
// Checks run in order: HTTP 401, JSON syntax, object shape, the success flag.
func Classify(status int, body []byte) (Outcome, error) {
	if status == http.StatusUnauthorized {
		return Outcome{}, monerrors.New(monerrors.Unauthorized, "control API rejected the credentials (HTTP 401)").
			WithSuggestion("check --user and --password")
	}

	value, err := decodeJSON(body)
	if err != nil {
		return Outcome{}, monerrors.Wrap(err, monerrors.ParseFailure,
			fmt.Sprintf("failed to parse control API response (HTTP %d)", status))
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return Outcome{}, monerrors.Newf(monerrors.UnknownShape,
			"unexpected control API response: %s", describe(value))
	}

	env := envelope{Success: obj["success"], Content: obj["content"]}
	if !truthy(env.Success) {
		return Outcome{}, monerrors.New(monerrors.ProtocolFailure, contentMessage(env.Content))
	}

	if s, ok := env.Content.(string); ok {
		return TextOutcome(s), nil
	}
	return StructuredOutcome(env.Content), nil
}

// decodeJSON decodes exactly one JSON value, keeping numbers verbatim.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty response body")
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return value, nil
}

// truthy follows JSON truthiness: false, null, 0, "" and empty containers are
// false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// contentMessage renders the content of a failed response as an error message.
func contentMessage(content any) string {
	switch c := content.(type) {
	case nil:
		return "control API reported failure without a message"
	case string:
		return c
	default:
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Sprintf("%v", c)
		}
		return string(b)
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
