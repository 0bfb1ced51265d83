// Package client provides the HTTP layer between monctl and the monitoring
// server's control API.
//
// The MonitorAPIClient wraps a Resty client. Every call is one request: the
// path is "<base>/<verb>/<object id>", the method is chosen from the verb and
// the parameters, and the response is classified into an Outcome or a typed
// error. There are no retries; a failed request fails the invocation.
//
// REQUEST SHAPE:
//   - GET when there are no parameters
//   - POST with a JSON object body when there are parameters, and always for
//     cancel_downtime
//   - HTTP basic auth on every request when a user is configured
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/concave-dev/monctl/cmd/monctl/config"
	"github.com/concave-dev/monctl/cmd/monctl/utils"
	"github.com/concave-dev/monctl/internal/action"
	monerrors "github.com/concave-dev/monctl/internal/errors"
	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/netutil"
	"github.com/concave-dev/monctl/internal/topology"
	idutil "github.com/concave-dev/monctl/internal/utils"
	"github.com/go-resty/resty/v2"
)

// RawResponse is the unclassified result of a request.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Config configures a MonitorAPIClient.
type Config struct {
	BaseURL  string
	User     string
	Password string
	Timeout  time.Duration
}

// ConfigFromOptions derives client settings from the CLI options.
func ConfigFromOptions(opts *config.Options) Config {
	return Config{
		BaseURL:  opts.BaseURL(),
		User:     opts.User,
		Password: opts.Password,
		Timeout:  opts.RequestTimeout(),
	}
}

// MonitorAPIClient sends control API requests and classifies responses.
type MonitorAPIClient struct {
	client  *resty.Client
	baseURL string
}

// NewMonitorAPIClient creates a client for cfg. Resty's own logging goes
// through the structured logger and automatic retries stay disabled.
func NewMonitorAPIClient(cfg Config) *MonitorAPIClient {
	client := resty.New()
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	client.SetLogger(utils.RestyLogger{})

	client.
		SetTimeout(cfg.Timeout).
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("monctl/%s", config.Version))

	if cfg.User != "" {
		client.SetBasicAuth(cfg.User, cfg.Password)
	}

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		id, err := idutil.GenerateID()
		if err != nil {
			return err
		}
		req.SetHeader(idutil.RequestIDHeader, id)
		logging.Debug("Making API request %s: %s %s", id, req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &MonitorAPIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// NewFromOptions creates a client from the CLI options.
func NewFromOptions(opts *config.Options) *MonitorAPIClient {
	return NewMonitorAPIClient(ConfigFromOptions(opts))
}

// BaseURL returns the base URL requests are sent to.
func (api *MonitorAPIClient) BaseURL() string {
	return api.baseURL
}

// Method selects the HTTP method for a verb: POST when there are parameters
// or the verb is cancel_downtime, GET otherwise.
func Method(verb string, params *action.Params) string {
	if params.Len() > 0 || verb == action.VerbCancelDowntime {
		return http.MethodPost
	}
	return http.MethodGet
}

// Path builds "/<verb>/<objectID>", dropping object ids that are not all
// digits.
func Path(verb, objectID string) string {
	if !isNumeric(objectID) {
		objectID = ""
	}
	return "/" + verb + "/" + objectID
}

// Send issues one request and returns the raw response. Connection failures
// are classified as Transport errors before any response parsing.
func (api *MonitorAPIClient) Send(ctx context.Context, verb, objectID string, params *action.Params) (*RawResponse, error) {
	method := Method(verb, params)
	req := api.client.R().SetContext(ctx)

	if method == http.MethodPost {
		if params == nil {
			params = action.NewParams()
		}
		body, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request parameters: %w", err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, Path(verb, objectID))
	if err != nil {
		return nil, transportError(err, api.baseURL)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

// Do sends a built action request and classifies the response.
func (api *MonitorAPIClient) Do(ctx context.Context, req action.Request) (Outcome, error) {
	raw, err := api.Send(ctx, req.Verb, req.ObjectID, req.Params)
	if err != nil {
		return Outcome{}, err
	}
	return Classify(raw.StatusCode, raw.Body)
}

// FetchTopology loads the host and service snapshot with the objects verb.
func (api *MonitorAPIClient) FetchTopology(ctx context.Context) (*topology.Index, error) {
	outcome, err := api.Do(ctx, action.Request{Verb: action.VerbObjects})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topology: %w", err)
	}

	idx, err := topology.FromContent(outcome.Value())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topology: %w", err)
	}

	logging.Debug("Loaded topology with %d hosts from %s", idx.Len(), api.baseURL)
	return idx, nil
}

// transportError classifies a connection-level failure, tailoring the
// suggestion to refused connections and timeouts.
func transportError(err error, baseURL string) error {
	switch {
	case netutil.IsConnectionRefusedError(err):
		return monerrors.Wrap(err, monerrors.Transport,
			fmt.Sprintf("connection refused by control API at %s", baseURL)).
			WithSuggestion("check that the monitoring server is running and --host/--port or --url point at it")
	case netutil.IsTimeoutError(err):
		return monerrors.Wrap(err, monerrors.Transport,
			fmt.Sprintf("request to control API at %s timed out", baseURL)).
			WithSuggestion("raise --timeout or check network reachability")
	default:
		return monerrors.Wrap(err, monerrors.Transport,
			fmt.Sprintf("failed to connect to control API at %s", baseURL)).
			WithSuggestion("check --host/--port or --url and that the monitoring server is running")
	}
}

func isNumeric(s string) bool {
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
