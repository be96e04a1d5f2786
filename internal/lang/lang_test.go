package lang

import (
	"strings"
	"testing"
)

func TestStarterCode(t *testing.T) {
	if got := StarterCode("python"); got != `print("Hello World")` {
		t.Fatalf("python starter = %q", got)
	}
	if got := StarterCode("PYTHON"); got != `print("Hello World")` {
		t.Fatalf("starter lookup should be case-insensitive, got %q", got)
	}
	if !strings.Contains(StarterCode("go"), "fmt.Println") {
		t.Fatalf("go starter missing fmt.Println: %q", StarterCode("go"))
	}
	if got := StarterCode(Placeholder); got != "Language not supported" {
		t.Fatalf("placeholder starter = %q", got)
	}
}

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		tag, hint, want string
	}{
		{"python", "", "3.10.0"},
		{"python", "2.7", "3.10.0"}, // static table wins over the hint
		{"javascript", "", "18.15.0"},
		{"zig", "0.11.0", "0.11.0"},
		{"zig", "", "latest"},
	}
	for _, tt := range tests {
		if got := ResolveVersion(tt.tag, tt.hint); got != tt.want {
			t.Errorf("ResolveVersion(%q, %q) = %q, want %q", tt.tag, tt.hint, got, tt.want)
		}
	}
}

func TestProviderIdentifiers(t *testing.T) {
	if got := PistonName("javascript"); got != "node-js" {
		t.Fatalf("piston name for javascript = %q", got)
	}
	if got := PistonName("cpp"); got != "c++" {
		t.Fatalf("piston name for cpp = %q", got)
	}
	if got := PistonName("Ruby"); got != "ruby" {
		t.Fatalf("unknown piston name should pass through lowercased, got %q", got)
	}

	if got := Judge0ID("javascript"); got != 63 {
		t.Fatalf("judge0 id for javascript = %d", got)
	}
	if got := Judge0ID("ruby"); got != 71 {
		t.Fatalf("judge0 id for unknown language should default to 71, got %d", got)
	}
}

func TestRuntimeDefaults(t *testing.T) {
	if got := Runtime("javascript"); got != "node" {
		t.Fatalf("runtime for javascript = %q", got)
	}
	if got := Runtime("cpp"); got != "gcc" {
		t.Fatalf("runtime for cpp = %q", got)
	}
	if got := Runtime("ruby"); got != "ruby" {
		t.Fatalf("runtime for unknown language should echo the tag, got %q", got)
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"cpp":        "main.cpp",
		"python":     "main.py",
		"java":       "main.java",
		"c":          "main.c",
		"javascript": "main.js",
		"go":         "main.js",
		"bash":       "main.js",
	}
	for tag, want := range tests {
		if got := FileName(tag); got != want {
			t.Errorf("FileName(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestIsSupported(t *testing.T) {
	for _, tag := range []string{"python", "java", "javascript", "cpp", "c", "go", "bash", Placeholder, "Python"} {
		if !IsSupported(tag) {
			t.Errorf("IsSupported(%q) = false, want true", tag)
		}
	}
	if IsSupported("ruby") {
		t.Error("IsSupported(ruby) = true, want false")
	}
}
