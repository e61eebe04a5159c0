package models

// LockRequires is the number of marks a row needs before its final spot
// becomes markable.
const LockRequires = 5

// rowScores maps a mark count to points. Locking counts as one extra mark,
// so the table runs one past the 11 physical spots.
var rowScores = [13]int{0, 1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 66, 78}

// Row is a single color's marking track: 11 spots in a fixed order and the
// marks placed on them so far. Marks are append-only and must follow the
// spot order; the final spot may only be marked once LockRequires marks
// already exist.
type Row struct {
	spots []int
	marks []int
}

func newRow(spots []int) *Row {
	return &Row{spots: spots}
}

// Spots returns the full track in marking order.
func (r *Row) Spots() []int {
	return r.spots
}

// Marks returns the spots marked so far, in the order they were placed.
func (r *Row) Marks() []int {
	return r.marks
}

// MarkCount returns the number of marks placed on the row.
func (r *Row) MarkCount() int {
	return len(r.marks)
}

// Locked reports whether the row's final spot has been marked. A locked row
// accepts no further marks.
func (r *Row) Locked() bool {
	return len(r.marks) > 0 && r.marks[len(r.marks)-1] == r.finalSpot()
}

// OpenSpots returns the suffix of the track strictly after the last mark,
// or the whole track if the row is unmarked.
func (r *Row) OpenSpots() []int {
	if len(r.marks) == 0 {
		return r.spots
	}
	last := r.marks[len(r.marks)-1]
	for i, spot := range r.spots {
		if spot == last {
			return r.spots[i+1:]
		}
	}
	return nil
}

// ValidSpot reports whether value can be marked next: it must still be
// reachable, the row must not be locked, and the final spot needs
// LockRequires existing marks.
func (r *Row) ValidSpot(value int) bool {
	if r.Locked() {
		return false
	}
	if value == r.finalSpot() && !r.canLock() {
		return false
	}
	for _, spot := range r.OpenSpots() {
		if spot == value {
			return true
		}
	}
	return false
}

// Mark appends value to the row. ErrInvalidSpot is returned, and the row
// left unchanged, if the spot is not markable.
func (r *Row) Mark(value int) error {
	if !r.ValidSpot(value) {
		return ErrInvalidSpot
	}
	r.marks = append(r.marks, value)
	return nil
}

// Score awards the triangular value for the mark count, with a locked row
// counting one extra mark.
func (r *Row) Score() int {
	n := len(r.marks)
	if r.Locked() {
		n++
	}
	return rowScores[n]
}

func (r *Row) finalSpot() int {
	return r.spots[len(r.spots)-1]
}

func (r *Row) canLock() bool {
	return len(r.marks) >= LockRequires
}
