package combi

import "io"

// An Option modifies how a parse is run.
type Option func(c *config)

type config struct {
	state     any
	merge     MergeFunc
	trace     io.Writer
	maxErrors int
}

func newConfig(options []Option) *config {
	c := &config{merge: Prioritize}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithState makes state available to parsers through StateOf.
//
// State is not transactional: mutations made by a branch that is later
// rewound are kept.
func WithState[S any](state *S) Option {
	return func(c *config) {
		c.state = state
	}
}

// WithMerge overrides the policy used to merge errors of competing alternatives.
func WithMerge(merge MergeFunc) Option {
	return func(c *config) {
		c.merge = merge
	}
}

// Trace the parse to "w".
//
// Each Labelled parser writes a line when it is entered and when it fails.
func Trace(w io.Writer) Option {
	return func(c *config) {
		c.trace = w
	}
}

// MaxErrors stops RecoverWith from recovering once "n" non-fatal errors have
// been recorded. Zero means no limit.
func MaxErrors(n int) Option {
	return func(c *config) {
		c.maxErrors = n
	}
}
