package solver

// Order is a reusable scratch buffer of button indices. Its capacity is
// fixed at construction; Reset empties it without reallocating.
type Order struct {
	ids []int
	n   int
}

// NewOrder returns an empty Order able to hold capacity indices.
func NewOrder(capacity int) *Order {
	if capacity < 0 {
		capacity = 0
	}

	return &Order{ids: make([]int, capacity)}
}

// IDs returns the staged indices. The slice aliases the buffer.
func (o *Order) IDs() []int { return o.ids[:o.n] }

// Len reports the number of staged indices.
func (o *Order) Len() int { return o.n }

// Cap reports the fixed capacity.
func (o *Order) Cap() int { return len(o.ids) }

// Reset empties the buffer.
func (o *Order) Reset() { o.n = 0 }

func (o *Order) push(id int) bool {
	if o.n >= len(o.ids) {
		return false
	}
	o.ids[o.n] = id
	o.n++

	return true
}
