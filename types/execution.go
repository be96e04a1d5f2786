package types

// RunRequest is a request to execute a piece of source text remotely.
type RunRequest struct {
	// Code is the source text to execute.
	Code string `json:"code"`

	// Language is the internal language tag (e.g. "python").
	Language string `json:"language"`

	// Version is an optional version hint. The dispatcher prefers the
	// static per-language version table and falls back to this value,
	// then to "latest".
	Version string `json:"version,omitempty"`
}

// RunResult is the normalized outcome of a remote execution, uniform
// across providers.
type RunResult struct {
	// Output is the captured program output, or a human-readable
	// message when the provider produced none.
	Output string `json:"output"`

	// IsError reports whether the execution failed: a non-zero exit
	// code, a compilation error, or a provider-level error message.
	IsError bool `json:"isError"`
}
