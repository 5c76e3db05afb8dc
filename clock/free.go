package clock

// Free never blocks; it is the clock used when a caller wants the
// processor to run as fast as the host CPU allows. Unlike Fixed and
// Manual it never reports a missed tick: there is no schedule to miss.
type Free struct{}

// NewFree returns a Free clock.
func NewFree() *Free {
	return &Free{}
}

func (f *Free) NextTick() Status {
	return Status{}
}

func (f *Free) Reset() {}
