package bricks

// Counter is a mutable integer shared between listeners and the game loop.
type Counter struct {
	value int
}

// NewCounter creates a counter starting at value.
func NewCounter(value int) *Counter {
	return &Counter{value: value}
}

// Increase adds n.
func (c *Counter) Increase(n int) {
	c.value += n
}

// Decrease subtracts n.
func (c *Counter) Decrease(n int) {
	c.value -= n
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}
