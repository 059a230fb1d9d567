package blackjack

// DefaultDealerStandThreshold is the total at which the dealer stops drawing
const DefaultDealerStandThreshold = 15

// Options contains options for creating a new round of blackjack
type Options struct {
	// DealerStandThreshold is the lowest total the dealer stands on
	DealerStandThreshold int
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		DealerStandThreshold: DefaultDealerStandThreshold,
	}
}

func (o Options) standThreshold() int {
	if o.DealerStandThreshold <= 0 {
		return DefaultDealerStandThreshold
	}

	return o.DealerStandThreshold
}
