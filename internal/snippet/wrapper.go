package snippet

import (
	"strings"

	"go.trai.ch/evalrs/internal/core/domain"
)

// WrapOptions configures the entry-point wrapper.
type WrapOptions struct {
	// PrintResult prints the value of the wrapped body with
	// println!("{:?}", ...).
	PrintResult bool
}

// Wrap returns the source file content for the snippet.
//
// A snippet that already defines an entry point is returned unmodified.
// Otherwise the stripped body is inserted verbatim into a synthesized
// fn main, with the normalized declaration statements re-emitted above
// it. The wrapper opens and closes on its own lines, so body line k
// appears at line k + len(declarations) + 1 in the emitted source
// (one more with PrintResult); error offsets are predictable rather
// than hidden.
func Wrap(s *domain.Snippet, opts WrapOptions) string {
	if s.HasEntryPoint {
		return s.Raw
	}

	var b strings.Builder
	for _, decl := range s.Declarations {
		b.WriteString(decl.Raw)
		b.WriteByte('\n')
	}

	body := s.Body
	if opts.PrintResult {
		body = "println!(\"{:?}\", {\n" + body + "\n});"
	}

	b.WriteString("fn main() {\n")
	b.WriteString(body)
	b.WriteString("\n}\n")
	return b.String()
}

// hasEntryPoint reports whether any line, after trimming leading
// whitespace, starts with the entry-point signature "fn main()"
// (allowing interior spaces, mirroring the toolchain's tolerance).
func hasEntryPoint(lines []string) bool {
	for _, line := range lines {
		if startsWithMainSignature(strings.TrimLeft(line, " \t")) {
			return true
		}
	}
	return false
}

func startsWithMainSignature(s string) bool {
	s, ok := cutKeyword(s, "fn")
	if !ok {
		return false
	}
	s, ok = strings.CutPrefix(s, "main")
	if !ok {
		return false
	}
	s = strings.TrimLeft(s, " ")
	s, ok = strings.CutPrefix(s, "(")
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(s, " "), ")")
}
