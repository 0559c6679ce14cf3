package domain

// Snippet is the parsed form of a raw code snippet.
type Snippet struct {
	// Raw is the snippet text after normalization (markdown "# "
	// prefixes removed), before declaration stripping.
	Raw string

	// Declarations are the dependency declarations in source order.
	Declarations []Declaration

	// Body is Raw with declaration lines blanked in place. Blanking
	// rather than deleting keeps the line count identical to Raw so
	// toolchain diagnostics stay meaningful.
	Body string

	// HasEntryPoint reports whether the body already defines fn main.
	HasEntryPoint bool
}
