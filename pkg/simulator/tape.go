package simulator

// tape is a two-way infinite tape holding only the visited window.
// Position p >= 0 lives in right[p]; p < 0 lives in left[-p-1]. Growing either end is an append.
type tape struct {
	left  []int
	right []int
	blank int
}

func newTape(input []int, blank int) *tape {
	t := &tape{blank: blank}
	if len(input) == 0 {
		t.right = []int{blank}
	} else {
		t.right = append(make([]int, 0, len(input)+1), input...)
	}
	return t
}

// extend grows the window with blanks until it covers pos.
func (t *tape) extend(pos int) {
	for pos < -len(t.left) {
		t.left = append(t.left, t.blank)
	}
	for pos >= len(t.right) {
		t.right = append(t.right, t.blank)
	}
}

func (t *tape) read(pos int) int {
	if pos < 0 {
		return t.left[-pos-1]
	}
	return t.right[pos]
}

func (t *tape) write(pos, sym int) {
	if pos < 0 {
		t.left[-pos-1] = sym
		return
	}
	t.right[pos] = sym
}

// offset is the window index of position 0.
func (t *tape) offset() int {
	return len(t.left)
}

// snapshot returns the window contents left to right, rendered through names.
func (t *tape) snapshot(names []string) []string {
	cells := make([]string, 0, len(t.left)+len(t.right))
	for i := len(t.left) - 1; i >= 0; i-- {
		cells = append(cells, names[t.left[i]])
	}
	for _, sym := range t.right {
		cells = append(cells, names[sym])
	}
	return cells
}
