package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const restPrefix = "/rest/v1/"

// APIError is a non-2xx answer of the REST endpoint.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response"
	}

	if e.Code != "" {
		return fmt.Sprintf("rest api: status %d: %s (%s)", e.Status, msg, e.Code)
	}

	return fmt.Sprintf("rest api: status %d: %s", e.Status, msg)
}

// REST executes queries against a PostgREST endpoint such as Supabase.
type REST struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewREST returns an executor for the project at baseURL authenticated with apiKey.
// timeout bounds every call whose context carries no earlier deadline; zero disables it.
func NewREST(baseURL, apiKey string, timeout time.Duration) *REST {
	return &REST{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
	}
}

// URL returns the request URL for q.
func (r *REST) URL(q Query) string {
	v := url.Values{}
	v.Set("select", q.Select())

	for _, f := range q.Filters {
		v.Add(f.Column, "eq."+formatValue(f.Value))
	}

	if q.Order != nil {
		v.Set("order", q.Order.String())
	}

	for _, j := range q.Joins {
		prefix := ""

		for n := &j; n != nil; n = n.Nested {
			prefix += n.Collection + "."
			if n.Order != nil {
				v.Set(prefix+"order", n.Order.String())
			}
		}
	}

	return r.baseURL + restPrefix + q.Collection + "?" + v.Encode()
}

// Execute implements Executor.
func (r *REST) Execute(ctx context.Context, q Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}

	timeout, err := r.callTimeout(ctx)
	if err != nil {
		return fmt.Errorf("query %s: %w", q.Collection, err)
	}

	agent := fiber.Get(r.URL(q)).
		Set("apikey", r.apiKey).
		Set(fiber.HeaderAuthorization, "Bearer "+r.apiKey).
		Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	if timeout > 0 {
		agent.Timeout(timeout)
	}

	if err = agent.Parse(); err != nil {
		return fmt.Errorf("query %s: %w", q.Collection, err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("query %s: %w", q.Collection, errors.Join(errs...))
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return fmt.Errorf("query %s: %w", q.Collection, newAPIError(code, body))
	}

	if err = json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("query %s: decode: %w", q.Collection, err)
	}

	return nil
}

// callTimeout picks the shorter of the configured timeout and the context deadline.
func (r *REST) callTimeout(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err //nolint:wrapcheck
	}

	timeout := r.timeout

	if deadline, ok := ctx.Deadline(); ok {
		left := time.Until(deadline)
		if left <= 0 {
			return 0, context.DeadlineExceeded
		}

		if timeout == 0 || left < timeout {
			timeout = left
		}
	}

	return timeout, nil
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{}

	if err := json.Unmarshal(body, e); err != nil || e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}

	e.Status = status

	return e
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
