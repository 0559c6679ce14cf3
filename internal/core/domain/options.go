package domain

// EvalOptions configures a single snippet evaluation.
type EvalOptions struct {
	// PrintResult wraps the snippet body so the evaluation result is
	// printed with println!("{:?}", ...).
	PrintResult bool

	// Quiet suppresses the toolchain's build messages on success.
	Quiet bool

	// NoCache forces re-materialization of the project manifest even
	// when a matching cache entry exists.
	NoCache bool
}
