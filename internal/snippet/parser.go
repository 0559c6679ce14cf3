// Package snippet implements the declaration parser and entry-point
// wrapper for raw code snippets. Both are pure string transformations.
//
// Declarations are recognized with a tagged-line scanner rather than a
// full tokenizer. A declaration-shaped line inside a string literal or
// block comment is therefore misparsed; this is a known limitation of
// the line-oriented design.
package snippet

import (
	"strconv"
	"strings"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse scans the snippet text line by line, extracting external
// dependency declarations of the form
//
//	extern crate <name>;           // "1.2.0"
//	extern crate <name>;           // { version = "1.2", path = "../x" }
//
// Declaration lines are blanked in the returned body rather than
// deleted, so the body has exactly as many lines as the input and
// toolchain diagnostics keep their line numbers. Lines starting with
// the markdown quote prefix "# " are unquoted first, preserving the
// line count.
//
// Declaring the same crate twice is an error rather than last-wins: a
// silently dropped pin would change the dependency set without any
// signal to the user.
func Parse(input string) (*domain.Snippet, error) {
	normalized := normalize(input)
	lines := strings.Split(normalized, "\n")

	var decls []domain.Declaration
	body := make([]string, len(lines))
	seen := make(map[string]int)

	for i, line := range lines {
		rest, lineDecls, err := scanLine(line, i+1)
		if err != nil {
			return nil, err
		}
		body[i] = rest

		for _, d := range lineDecls {
			if first, dup := seen[d.Name]; dup {
				err := zerr.With(domain.ErrDuplicateDependency, "name", d.Name)
				err = zerr.With(err, "first_line", first)
				err = zerr.With(err, "line", d.Line)
				return nil, err
			}
			seen[d.Name] = d.Line
			decls = append(decls, d)
		}
	}

	stripped := strings.Join(body, "\n")
	return &domain.Snippet{
		Raw:           normalized,
		Declarations:  decls,
		Body:          stripped,
		HasEntryPoint: hasEntryPoint(lines),
	}, nil
}

// normalize removes the markdown quote prefix "# " used by doc-test
// style snippets. Lines are kept in place so the count is unchanged.
func normalize(input string) string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") {
			lines[i] = line[2:]
		}
	}
	return strings.Join(lines, "\n")
}

// scanLine consumes declarations from the front of a single line and
// returns whatever body text remains. Several declarations may share a
// line; a trailing comment directly after a declaration's terminator is
// parsed as its version annotation and consumes the rest of the line.
func scanLine(line string, lineNo int) (string, []domain.Declaration, error) {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	cur := strings.TrimLeft(line, " \t")

	var decls []domain.Declaration
	for {
		rest, ok := cutKeyword(cur, "extern")
		if !ok {
			break
		}
		rest, ok = cutKeyword(rest, "crate")
		if !ok {
			// Other extern forms (e.g., extern "C" blocks) are body text.
			break
		}

		decl, rest, err := parseDeclaration(rest, lineNo)
		if err != nil {
			return "", nil, withLine(err, lineNo, line)
		}

		trimmed := strings.TrimLeft(rest, " \t")
		if comment, ok := strings.CutPrefix(trimmed, "//"); ok {
			spec, err := parseAnnotation(strings.TrimSpace(comment), decl.Name)
			if err != nil {
				return "", nil, withLine(err, lineNo, line)
			}
			decl.Spec = spec
			decls = append(decls, decl)
			cur = ""
			break
		}

		decls = append(decls, decl)
		cur = trimmed
	}

	if len(decls) > 0 && cur == "" {
		// The whole line was declarations: blank it, keep the line.
		return "", decls, nil
	}
	if len(decls) > 0 {
		return indent + cur, decls, nil
	}
	return line, nil, nil
}

// parseDeclaration parses "<name> [as <alias>];" following the
// "extern crate" tag. The alias, if present, is kept only in the raw
// re-emitted statement.
func parseDeclaration(s string, lineNo int) (domain.Declaration, string, error) {
	name, rest := cutIdent(s)
	if name == "" {
		return domain.Declaration{}, "", domain.ErrMalformedDeclaration
	}

	raw := "extern crate " + name
	if aliasRest, ok := cutKeyword(strings.TrimLeft(rest, " \t"), "as"); ok {
		alias, afterAlias := cutIdent(aliasRest)
		if alias == "" {
			return domain.Declaration{}, "", domain.ErrMalformedDeclaration
		}
		raw += " as " + alias
		rest = afterAlias
	}

	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, ";") {
		return domain.Declaration{}, "", domain.ErrMalformedDeclaration
	}

	return domain.Declaration{
		Name: name,
		Raw:  raw + ";",
		Line: lineNo,
	}, rest[1:], nil
}

// parseAnnotation parses the trailing comment of a declaration. It
// accepts a bare quoted version string, an inline table with the
// recognized keys version and path, or the full-entry form
// "<name> = <spec>" where <name> must match the declared crate.
func parseAnnotation(comment, name string) (domain.VersionSpec, error) {
	switch {
	case comment == "":
		return domain.VersionSpec{}, zerr.Wrap(domain.ErrMalformedAnnotation, "empty annotation")
	case strings.HasPrefix(comment, "\""):
		version, err := unquote(comment)
		if err != nil {
			return domain.VersionSpec{}, err
		}
		return domain.VersionSpec{Version: version}, nil
	case strings.HasPrefix(comment, "{"):
		return parseTable(comment)
	}

	// Full-entry form: the left-hand side must name the declared crate,
	// otherwise the manifest entry would silently diverge from the
	// declaration.
	lhs, rhs, ok := strings.Cut(comment, "=")
	if !ok {
		return domain.VersionSpec{}, domain.ErrMalformedAnnotation
	}
	if strings.TrimSpace(lhs) != name {
		err := zerr.Wrap(domain.ErrMalformedAnnotation, "annotation names a different crate")
		return domain.VersionSpec{}, zerr.With(err, "annotated_name", strings.TrimSpace(lhs))
	}
	return parseAnnotation(strings.TrimSpace(rhs), name)
}

// parseTable parses an inline table such as
// { version = "1.2", path = "../x" }. Unknown keys are rejected so
// typos surface here instead of as a toolchain error later.
func parseTable(s string) (domain.VersionSpec, error) {
	if !strings.HasSuffix(s, "}") {
		return domain.VersionSpec{}, zerr.Wrap(domain.ErrMalformedAnnotation, "unterminated table")
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return domain.VersionSpec{}, zerr.Wrap(domain.ErrMalformedAnnotation, "empty table")
	}

	var spec domain.VersionSpec
	for _, field := range splitFields(inner) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return domain.VersionSpec{}, zerr.Wrap(domain.ErrMalformedAnnotation, "table entry is not key = value")
		}
		unquoted, err := unquote(strings.TrimSpace(value))
		if err != nil {
			return domain.VersionSpec{}, err
		}
		switch strings.TrimSpace(key) {
		case "version":
			spec.Version = unquoted
		case "path":
			spec.Path = unquoted
		default:
			err := zerr.Wrap(domain.ErrMalformedAnnotation, "unrecognized table key")
			return domain.VersionSpec{}, zerr.With(err, "key", strings.TrimSpace(key))
		}
	}
	return spec, nil
}

// splitFields splits table fields on commas outside quoted strings.
func splitFields(s string) []string {
	var fields []string
	var quoted bool
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			if !quoted || i == 0 || s[i-1] != '\\' {
				quoted = !quoted
			}
		case ',':
			if !quoted {
				fields = append(fields, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	fields = append(fields, strings.TrimSpace(s[start:]))
	return fields
}

func unquote(s string) (string, error) {
	value, err := strconv.Unquote(s)
	if err != nil {
		return "", zerr.Wrap(domain.ErrMalformedAnnotation, "value is not a quoted string")
	}
	return value, nil
}

// cutKeyword cuts a keyword followed by at least one space or tab.
func cutKeyword(s, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(s, keyword)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return s, false
	}
	return strings.TrimLeft(rest, " \t"), true
}

// cutIdent cuts a leading identifier ([A-Za-z_][A-Za-z0-9_]*).
func cutIdent(s string) (string, string) {
	var i int
	for i < len(s) && isIdentChar(s[i], i == 0) {
		i++
	}
	return s[:i], s[i:]
}

func isIdentChar(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}

func withLine(err error, lineNo int, line string) error {
	err = zerr.With(err, "line", lineNo)
	return zerr.With(err, "text", strings.TrimSpace(line))
}
