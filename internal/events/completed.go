package events

// Completed is one resolved event with the events it caused. Pre responses
// ran before the event executed, outcomes were derived from executing it and
// post responses reacted to it afterwards. A tree is never modified once built.
type Completed struct {
	Event         Event
	PreResponses  []Completed
	Outcomes      []Completed
	PostResponses []Completed
}

// Children returns pre responses, outcomes and post responses in order
func (c Completed) Children() []Completed {
	children := make([]Completed, 0, len(c.PreResponses)+len(c.Outcomes)+len(c.PostResponses))
	children = append(children, c.PreResponses...)
	children = append(children, c.Outcomes...)
	return append(children, c.PostResponses...)
}

// Walk visits the node and then every descendant depth first in causal
// order. depth is 0 for the node Walk was called on. Walking stops at the
// first error.
func (c Completed) Walk(fn func(depth int, node Completed) error) error {
	return c.walk(0, fn)
}

func (c Completed) walk(depth int, fn func(int, Completed) error) error {
	if err := fn(depth, c); err != nil {
		return err
	}
	for _, child := range c.Children() {
		if err := child.walk(depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Size counts the nodes in the tree
func (c Completed) Size() int {
	n := 0
	_ = c.Walk(func(int, Completed) error {
		n++
		return nil
	})
	return n
}

// Find returns every event in the tree of type T, in walk order
func Find[T Event](c Completed) []T {
	var out []T
	_ = c.Walk(func(_ int, node Completed) error {
		if ev, ok := node.Event.(T); ok {
			out = append(out, ev)
		}
		return nil
	})
	return out
}
