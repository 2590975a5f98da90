package detect

// Direction selects the end of an axis that a scan starts from.
type Direction int

const (
	// Forward scans from index 0 (top rows, left columns).
	Forward Direction = iota
	// Backward scans from the last index (bottom rows, right columns).
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// axis is a direction-aware view over one gradient/dispersion profile pair.
// Positions count lines from the view's origin, so a candidate position is
// directly a border width. dispersion(p) belongs to line p and gradient(p) is
// the transition between lines p and p+1.
type axis struct {
	grad []int
	disp []int
	dir  Direction
}

func newAxis(grad, disp []int, dir Direction) axis {
	return axis{grad: grad, disp: disp, dir: dir}
}

// Len returns the number of scannable positions (one per gradient entry).
func (a axis) Len() int {
	n := len(a.grad)
	if len(a.disp) < n {
		n = len(a.disp)
	}
	return n
}

func (a axis) gradient(p int) int {
	if a.dir == Backward {
		return a.grad[len(a.grad)-1-p]
	}
	return a.grad[p]
}

func (a axis) dispersion(p int) int {
	if a.dir == Backward {
		return a.disp[len(a.disp)-1-p]
	}
	return a.disp[p]
}
