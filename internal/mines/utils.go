package mines

// worklist holds cell indices still to be expanded by a cascade. It pops
// last-in-first-out unless fifo is set. [Grid.Reveal] always uses the stack;
// fifo is only set by tests that compare both visiting orders.
type worklist struct {
	items []int
	fifo  bool
}

func (w *worklist) push(i int) {
	w.items = append(w.items, i)
}

func (w *worklist) pop() (i int) {
	if w.fifo {
		i, w.items = w.items[0], w.items[1:]
		return
	}
	last := len(w.items) - 1
	i, w.items = w.items[last], w.items[:last]
	return
}

func (w *worklist) empty() bool {
	return len(w.items) == 0
}
