// Package http provides an HTTP client for a FlareSolverr instance, used as
// the anti-bot fallback implementation of bookseek.ProxyFetcher.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/bookseek"
)

// DefaultEndpoint is the FlareSolverr endpoint used when none is configured.
const DefaultEndpoint = "http://localhost:8191"

// Ensure Solver implements bookseek.ProxyFetcher at compile time.
var _ bookseek.ProxyFetcher = (*Solver)(nil)

// Solver fetches pages through FlareSolverr, which drives a real browser
// behind anti-bot challenge solving. It is attempted only after the primary
// fetch strategy fails.
type Solver struct {
	endpoint string
	client   *http.Client
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithHTTPClient overrides the HTTP client used to reach FlareSolverr.
func WithHTTPClient(client *http.Client) SolverOption {
	return func(s *Solver) {
		s.client = client
	}
}

// NewSolver creates a Solver talking to the given FlareSolverr endpoint.
// An empty endpoint selects DefaultEndpoint.
func NewSolver(endpoint string, opts ...SolverOption) *Solver {
	s := &Solver{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	if s.endpoint == "" {
		s.endpoint = DefaultEndpoint
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// solverRequest is the FlareSolverr v1 command payload.
type solverRequest struct {
	Cmd        string `json:"cmd"`
	URL        string `json:"url"`
	MaxTimeout int64  `json:"maxTimeout"` // milliseconds
}

// solverResponse is the subset of the FlareSolverr response we consume.
type solverResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Solution struct {
		Status   int    `json:"status"`
		Response string `json:"response"`
	} `json:"solution"`
}

// FetchViaProxy requests the URL through FlareSolverr and returns the
// solved page HTML. timeout is passed to FlareSolverr as its challenge
// budget and also bounds the HTTP round trip.
func (s *Solver) FetchViaProxy(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	payload, err := json.Marshal(solverRequest{
		Cmd:        "request.get",
		URL:        url,
		MaxTimeout: timeout.Milliseconds(),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/v1", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", bookseek.Errorf(bookseek.EUNAVAILABLE, "solver returned HTTP %d", resp.StatusCode)
	}

	var solved solverResponse
	if err := json.Unmarshal(body, &solved); err != nil {
		return "", bookseek.Errorf(bookseek.EINTERNAL, "malformed solver response: %v", err)
	}
	if solved.Status != "ok" {
		return "", bookseek.Errorf(bookseek.EUNAVAILABLE, "solver failed: %s", solved.Message)
	}

	return solved.Solution.Response, nil
}
