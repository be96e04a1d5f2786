package execution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SHOEB091/code-IDE/internal/lang"
	"github.com/SHOEB091/code-IDE/types"
)

const (
	pistonCompileTimeout = 10000 // milliseconds
	pistonRunTimeout     = 5000
)

// pistonClient submits synchronous execution requests to Piston.
type pistonClient struct {
	url    string
	client *http.Client
}

func newPistonClient(url string, client *http.Client) *pistonClient {
	return &pistonClient{url: url, client: client}
}

type pistonRequest struct {
	Language       string       `json:"language"`
	Version        string       `json:"version"`
	Files          []pistonFile `json:"files"`
	Stdin          string       `json:"stdin"`
	Args           []string     `json:"args"`
	CompileTimeout int          `json:"compile_timeout"`
	RunTimeout     int          `json:"run_timeout"`
}

type pistonFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type pistonResponse struct {
	// Run holds the captured output and exit code of the run stage.
	// Absent when the provider rejected the request.
	Run *pistonRun `json:"run"`

	// Message is the provider-level error message, set when Run is
	// absent.
	Message string `json:"message"`
}

type pistonRun struct {
	Output string `json:"output"`
	Code   int    `json:"code"`
}

func (c *pistonClient) execute(ctx context.Context, req types.RunRequest) (pistonResponse, error) {
	payload := pistonRequest{
		Language: lang.PistonName(req.Language),
		Version:  lang.ResolveVersion(req.Language, req.Version),
		Files: []pistonFile{{
			Name:    lang.FileName(req.Language),
			Content: req.Code,
		}},
		Stdin:          "",
		Args:           []string{},
		CompileTimeout: pistonCompileTimeout,
		RunTimeout:     pistonRunTimeout,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return pistonResponse{}, fmt.Errorf("piston: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return pistonResponse{}, fmt.Errorf("piston: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return pistonResponse{}, fmt.Errorf("piston: %w", err)
	}
	defer httpResp.Body.Close()

	var resp pistonResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return pistonResponse{}, fmt.Errorf("piston: decode response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		if resp.Message != "" {
			return pistonResponse{}, fmt.Errorf("piston: status %d: %s", httpResp.StatusCode, resp.Message)
		}
		return pistonResponse{}, fmt.Errorf("piston: status %d", httpResp.StatusCode)
	}

	return resp, nil
}
