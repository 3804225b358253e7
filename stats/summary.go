package stats

// Summary bundles every statistic for one matrix, ready for a results
// table row.
type Summary struct {
	CH   float64
	CHv2 float64
	CA   float64
	CB   float64
	CBv2 float64
	CC   float64
	NBC  float64

	// BlockSizes holds the SP block sizes in output order; SP maps each
	// of them to its split fraction.
	BlockSizes []int
	SP         map[int]float64
}

// Summary computes all statistics in one call. The SP block sizes come
// from WithBlockSizes, defaulting to DefaultBlockSizes. The only
// possible failure is an invalid configured block size.
func (e *Engine) Summary(opts ...Option) (Summary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := Summary{
		CH:         e.CH(),
		CHv2:       e.CHv2(),
		CA:         e.CA(),
		CB:         e.CB(),
		CBv2:       e.CBv2(),
		CC:         e.CC(),
		NBC:        e.NBC(),
		BlockSizes: append([]int(nil), o.BlockSizes...),
		SP:         make(map[int]float64, len(o.BlockSizes)),
	}
	for _, k := range o.BlockSizes {
		v, err := e.SP(k)
		if err != nil {
			return Summary{}, err
		}
		s.SP[k] = v
	}
	return s, nil
}
