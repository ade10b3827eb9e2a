package graphio

// Option customizes ReadEdgeList.
type Option func(*options)

type options struct {
	comma    rune
	from, to int
	fromName string
	toName   string
	header   bool
	directed bool
	naValue  string
	snappyIn bool
}

func defaultOptions() options {
	return options{
		comma:   ' ',
		from:    0,
		to:      1,
		naValue: `\N`,
	}
}

// WithComma sets the field delimiter (default ' '; runs of the delimiter
// count as one when it is a space or a tab).
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithColumns selects the zero-based endpoint columns (default 0 and 1).
// Panics on negative or equal indices.
func WithColumns(from, to int) Option {
	if from < 0 || to < 0 || from == to {
		panic("graphio: WithColumns needs two distinct non-negative indices")
	}
	return func(o *options) {
		o.from, o.to = from, to
	}
}

// WithHeaderColumns treats the first record as a header and selects the
// endpoint columns by name.
func WithHeaderColumns(from, to string) Option {
	return func(o *options) {
		o.header = true
		o.fromName, o.toName = from, to
	}
}

// WithSkipHeader discards the first record.
func WithSkipHeader() Option {
	return func(o *options) { o.header = true }
}

// WithDirected builds a directed graph.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithNAValue sets the marker for a missing endpoint (default `\N`).
func WithNAValue(na string) Option {
	return func(o *options) { o.naValue = na }
}

// WithSnappy declares the input as a snappy-framed stream.
func WithSnappy() Option {
	return func(o *options) { o.snappyIn = true }
}
