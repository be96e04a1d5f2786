// Package execution dispatches source code to a remote execution
// provider and normalizes the outcome. Piston is the primary provider;
// when it fails, one attempt is made against Judge0, which uses a
// submit-then-poll protocol. There is no retry beyond that single
// fallback: a second failure is surfaced to the caller as-is.
package execution

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SHOEB091/code-IDE/config"
	"github.com/SHOEB091/code-IDE/types"
)

// ErrMissingParameter is returned when the source code or language is
// absent from a run request.
var ErrMissingParameter = errors.New("missing required parameters (code or language)")

const (
	// Per-call provider timeout. Kept low enough that the worst case
	// (primary call, fallback submit, fixed poll delay, result fetch)
	// stays inside the router's request timeout.
	defaultHTTPTimeout = 15 * time.Second
	defaultPollDelay   = 2 * time.Second
)

// Dispatcher runs code through the primary provider with a single
// automatic fallback to the secondary one.
type Dispatcher struct {
	piston *pistonClient
	judge0 *judge0Client

	// pollDelay is the fixed wait between the fallback submit and its
	// one result fetch. The wait is a plain sleep: an in-flight remote
	// execution cannot be cancelled.
	pollDelay time.Duration
}

// NewDispatcher constructs a Dispatcher from provider configuration.
// Provider credentials stay inside this package; they are never
// exposed to clients.
func NewDispatcher(cfg config.ExecutionConfig) *Dispatcher {
	httpClient := &http.Client{Timeout: defaultHTTPTimeout}
	return &Dispatcher{
		piston:    newPistonClient(cfg.PistonURL, httpClient),
		judge0:    newJudge0Client(cfg.Judge0URL, cfg.Judge0Key, cfg.Judge0Host, httpClient),
		pollDelay: defaultPollDelay,
	}
}

// Run executes the request and returns a normalized result. On a
// primary failure it makes exactly one fallback attempt; if that also
// fails, the fallback error is returned, with extra guidance attached
// when the primary failure matched Piston's unsupported-runtime
// pattern.
func (d *Dispatcher) Run(ctx context.Context, req types.RunRequest) (types.RunResult, error) {
	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Language) == "" {
		return types.RunResult{}, ErrMissingParameter
	}

	resp, primaryErr := d.piston.execute(ctx, req)
	if primaryErr == nil {
		return normalizePiston(resp), nil
	}

	result, fallbackErr := d.runFallback(ctx, req)
	if fallbackErr != nil {
		return types.RunResult{}, describeFailure(primaryErr, fallbackErr)
	}
	return result, nil
}

func (d *Dispatcher) runFallback(ctx context.Context, req types.RunRequest) (types.RunResult, error) {
	token, err := d.judge0.submit(ctx, req)
	if err != nil {
		return types.RunResult{}, err
	}

	time.Sleep(d.pollDelay)

	sub, err := d.judge0.fetch(ctx, token)
	if err != nil {
		return types.RunResult{}, err
	}
	return normalizeJudge0(sub), nil
}

func normalizePiston(resp pistonResponse) types.RunResult {
	if resp.Run != nil {
		output := resp.Run.Output
		if output == "" {
			output = "No output"
		}
		return types.RunResult{Output: output, IsError: resp.Run.Code != 0}
	}
	if resp.Message != "" {
		return types.RunResult{Output: "API Error: " + resp.Message, IsError: true}
	}
	return types.RunResult{Output: "Execution completed but no output was generated."}
}

func normalizeJudge0(sub judge0Submission) types.RunResult {
	switch {
	case sub.Stdout != "":
		return types.RunResult{Output: sub.Stdout}
	case sub.Stderr != "":
		return types.RunResult{Output: sub.Stderr, IsError: true}
	case sub.CompileOutput != "":
		return types.RunResult{Output: sub.CompileOutput, IsError: true}
	default:
		return types.RunResult{Output: "No output or error message received."}
	}
}

func describeFailure(primaryErr, fallbackErr error) error {
	if isUnknownRuntime(primaryErr) {
		return fmt.Errorf("%w (the specified javascript runtime version is not supported by the execution service; try a different version or try again later)", fallbackErr)
	}
	return fallbackErr
}

func isUnknownRuntime(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "javascript-1.0.0") || strings.Contains(msg, "runtime is unknown")
}
