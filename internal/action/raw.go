package action

import (
	"strings"

	monerrors "github.com/concave-dev/monctl/internal/errors"
	"github.com/concave-dev/monctl/internal/validate"
)

// BuildRaw shapes a raw-mode request from "verb [objectID] key=value...".
// No target resolution or command-specific checks apply. A bare all-digit
// token is the object id; every other token must be key=value and becomes a
// parameter in the order given.
func BuildRaw(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{}, monerrors.New(monerrors.MissingRequiredOption, "raw mode requires a verb").
			WithSuggestion("usage: monctl --raw VERB [OBJECT_ID] [key=value...]")
	}

	verb := args[0]
	if err := validate.VerbFormat(verb); err != nil {
		return Request{}, monerrors.Wrap(err, monerrors.InvalidFormat, "invalid raw verb")
	}

	req := Request{Verb: verb, Params: NewParams()}
	for _, arg := range args[1:] {
		if isDigits(arg) {
			if req.ObjectID != "" {
				return Request{}, monerrors.Newf(monerrors.InvalidFormat,
					"object id given twice: '%s' and '%s'", req.ObjectID, arg)
			}
			req.ObjectID = arg
			continue
		}

		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return Request{}, monerrors.Newf(monerrors.InvalidFormat,
				"raw argument '%s' is neither an object id nor key=value", arg)
		}
		req.Params.Set(key, value)
	}
	return req, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
