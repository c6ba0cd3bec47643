package approval

const (
	JuniorLimit = 1_000.0
	MiddleLimit = 5_000.0
	SeniorLimit = 10_000.0
)

// DefaultStages returns the reference ladder:
// junior [0,1000), middle [1000,5000), senior [5000,10000), director [10000,∞).
func DefaultStages() []Stage {
	return []Stage{
		{Name: "junior", Band: NewBand(0, JuniorLimit)},
		{Name: "middle", Band: NewBand(JuniorLimit, MiddleLimit)},
		{Name: "senior", Band: NewBand(MiddleLimit, SeniorLimit)},
		{Name: "director", Band: Unbounded(SeniorLimit)},
	}
}

func DefaultChain() *Chain {
	c, err := NewChain(DefaultStages()...)
	if err != nil {
		panic(err)
	}
	return c
}
