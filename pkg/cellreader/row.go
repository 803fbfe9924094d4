package cellreader

// Cell is one versioned value of a row at (Family, Column).
type Cell struct {
	Family    string
	Column    string
	Value     []byte
	Timestamp int64
}

// Row is anything that can look up the latest cell at (family, column).
type Row interface {
	LatestCell(family, column string) (*Cell, bool)
}

type coordinate struct {
	family string
	column string
}

// Result is a Row built from a list of cells. The zero value is an empty row. For each coordinate the cell
// with the greatest timestamp wins; on ties the later cell in the list wins.
type Result struct {
	latest map[coordinate]*Cell
}

var _ Row = &Result{}

func NewResult(cells ...*Cell) *Result {
	r := &Result{latest: make(map[coordinate]*Cell, len(cells))}
	for _, c := range cells {
		r.Add(c)
	}
	return r
}

func (r *Result) Add(c *Cell) {
	if r.latest == nil {
		r.latest = make(map[coordinate]*Cell)
	}
	key := coordinate{family: c.Family, column: c.Column}
	if prev, ok := r.latest[key]; ok && prev.Timestamp > c.Timestamp {
		return
	}
	r.latest[key] = c
}

func (r *Result) LatestCell(family, column string) (*Cell, bool) {
	c, ok := r.latest[coordinate{family: family, column: column}]
	return c, ok
}

func (r *Result) Len() int {
	return len(r.latest)
}
