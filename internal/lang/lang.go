// Package lang holds the static language tables shared by the project
// store and the execution dispatcher: the supported language set,
// default interpreter/compiler versions, provider-specific identifiers,
// and the starter templates seeded into new projects.
package lang

import "strings"

// Placeholder is the sentinel language tag for a project whose
// language has not been chosen yet.
const Placeholder = "placeholder"

// Supported is the set of language tags a project may carry, besides
// the placeholder sentinel.
var Supported = map[string]bool{
	"python":     true,
	"java":       true,
	"javascript": true,
	"cpp":        true,
	"c":          true,
	"go":         true,
	"bash":       true,
}

var defaultVersions = map[string]string{
	"javascript": "18.15.0",
	"python":     "3.10.0",
	"cpp":        "10.2.0",
	"c":          "10.2.0",
	"java":       "15.0.2",
	"bash":       "5.2.0",
	"go":         "1.16.2",
}

// Piston uses its own identifiers for a few languages; everything else
// passes through lowercased.
var pistonNames = map[string]string{
	"javascript": "node-js",
	"cpp":        "c++",
}

var judge0IDs = map[string]int{
	"javascript": 63,
	"python":     71,
	"cpp":        54,
	"c":          50,
	"java":       62,
	"bash":       46,
	"go":         60,
}

var runtimes = map[string]string{
	"javascript": "node",
	"python":     "python",
	"cpp":        "gcc",
	"c":          "gcc",
	"java":       "java",
	"bash":       "bash",
	"go":         "go",
}

var starters = map[string]string{
	"python":     `print("Hello World")`,
	"java":       `public class Main { public static void main(String[] args) { System.out.println("Hello World"); } }`,
	"javascript": `console.log("Hello World");`,
	"cpp":        "#include <iostream>\n\nint main() {\n    std::cout << \"Hello World\" << std::endl;\n    return 0;\n}",
	"c":          "#include <stdio.h>\n\nint main() {\n    printf(\"Hello World\\n\");\n    return 0;\n}",
	"go":         "package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello World\")\n}",
	"bash":       `echo "Hello World"`,
}

// IsSupported reports whether tag is a known language or the
// placeholder sentinel.
func IsSupported(tag string) bool {
	tag = strings.ToLower(tag)
	return tag == Placeholder || Supported[tag]
}

// StarterCode returns the hello-world template seeded into a new or
// language-changed project. Unknown tags (including the placeholder)
// yield a fixed "not supported" text.
func StarterCode(tag string) string {
	if code, ok := starters[strings.ToLower(tag)]; ok {
		return code
	}
	return "Language not supported"
}

// DefaultVersion returns the known-working provider version for tag,
// or the empty string for unknown tags.
func DefaultVersion(tag string) string {
	return defaultVersions[strings.ToLower(tag)]
}

// ResolveVersion picks the version sent to a provider: the static
// table wins, then the client-supplied hint, then "latest".
func ResolveVersion(tag, hint string) string {
	if v := DefaultVersion(tag); v != "" {
		return v
	}
	if hint != "" {
		return hint
	}
	return "latest"
}

// PistonName maps an internal tag to the identifier Piston expects.
// Unknown tags pass through lowercased.
func PistonName(tag string) string {
	tag = strings.ToLower(tag)
	if name, ok := pistonNames[tag]; ok {
		return name
	}
	return tag
}

// Judge0ID maps an internal tag to Judge0's numeric language id,
// defaulting to Python 3 for unknown tags.
func Judge0ID(tag string) int {
	if id, ok := judge0IDs[strings.ToLower(tag)]; ok {
		return id
	}
	return 71
}

// Runtime returns the runtime alias recorded on a project for tag,
// defaulting to the tag itself.
func Runtime(tag string) string {
	tag = strings.ToLower(tag)
	if rt, ok := runtimes[tag]; ok {
		return rt
	}
	return tag
}

// FileName returns the source file name submitted to Piston.
func FileName(tag string) string {
	switch strings.ToLower(tag) {
	case "cpp":
		return "main.cpp"
	case "python":
		return "main.py"
	case "java":
		return "main.java"
	case "c":
		return "main.c"
	default:
		return "main.js"
	}
}
