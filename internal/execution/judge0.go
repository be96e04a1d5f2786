package execution

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SHOEB091/code-IDE/internal/lang"
	"github.com/SHOEB091/code-IDE/types"
)

// judge0Client talks Judge0's asynchronous protocol: submit returns an
// opaque token, and the result is fetched by token afterwards.
type judge0Client struct {
	baseURL string
	apiKey  string
	apiHost string
	client  *http.Client
}

func newJudge0Client(baseURL, apiKey, apiHost string, client *http.Client) *judge0Client {
	return &judge0Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		apiHost: apiHost,
		client:  client,
	}
}

type judge0SubmitRequest struct {
	LanguageID int    `json:"language_id"`
	SourceCode string `json:"source_code"`
	Stdin      string `json:"stdin"`
}

type judge0SubmitResponse struct {
	Token string `json:"token"`
}

type judge0Submission struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
}

func (c *judge0Client) submit(ctx context.Context, req types.RunRequest) (string, error) {
	payload := judge0SubmitRequest{
		LanguageID: lang.Judge0ID(req.Language),
		SourceCode: req.Code,
		Stdin:      "",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("judge0: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submissions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("judge0: build request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("judge0: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return "", fmt.Errorf("judge0: submit status %d", httpResp.StatusCode)
	}

	var resp judge0SubmitResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("judge0: decode submit response: %w", err)
	}
	if resp.Token == "" {
		return "", errors.New("judge0: failed to submit code for execution")
	}
	return resp.Token, nil
}

func (c *judge0Client) fetch(ctx context.Context, token string) (judge0Submission, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/submissions/"+token, nil)
	if err != nil {
		return judge0Submission{}, fmt.Errorf("judge0: build request: %w", err)
	}
	c.setHeaders(httpReq)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return judge0Submission{}, fmt.Errorf("judge0: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return judge0Submission{}, fmt.Errorf("judge0: fetch status %d", httpResp.StatusCode)
	}

	var sub judge0Submission
	if err := json.NewDecoder(httpResp.Body).Decode(&sub); err != nil {
		return judge0Submission{}, fmt.Errorf("judge0: decode submission: %w", err)
	}
	return sub, nil
}

func (c *judge0Client) setHeaders(req *http.Request) {
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)
}
