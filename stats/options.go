package stats

// DefaultBlockSizes returns the SP block sizes Summary computes when
// none are configured. They match the results-table layout, which
// carries SP(4) and SP(16) columns.
func DefaultBlockSizes() []int { return []int{4, 16} }

// Options configures Summary.
type Options struct {
	// BlockSizes lists the SP block sizes to compute, in output order.
	BlockSizes []int
}

// Option mutates Options; pass any number to Summary.
type Option func(*Options)

// DefaultOptions returns the canonical Summary configuration.
func DefaultOptions() Options {
	return Options{BlockSizes: DefaultBlockSizes()}
}

// WithBlockSizes overrides the SP block sizes computed by Summary.
func WithBlockSizes(ks ...int) Option {
	return func(o *Options) { o.BlockSizes = ks }
}
