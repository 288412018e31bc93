package dataset

// Kind is the storage type inferred for a column.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)

// Column describes one header field of a Table.
type Column struct {
	Name string
	Kind Kind
}

// Table is an in-memory tabular dataset. Every row has exactly len(Columns)
// cells; numeric cells are kept as their trimmed source text and parsed on demand.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]string

	numeric NumberFormat
	index   map[string]int
}

func newTable(name string, header []string, rows [][]string, nf NumberFormat) *Table {
	t := &Table{
		Name:    name,
		Columns: make([]Column, len(header)),
		Rows:    rows,
		numeric: nf,
		index:   make(map[string]int, len(header)),
	}
	for i, h := range header {
		t.Columns[i] = Column{Name: h, Kind: KindText}
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
	for i := range t.Columns {
		t.Columns[i].Kind = t.inferKind(i)
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Kind returns the kind of the named column, or "" if it is missing.
func (t *Table) Kind(name string) Kind {
	i, ok := t.index[name]
	if !ok {
		return ""
	}
	return t.Columns[i].Kind
}

// Header returns the column names in file order.
func (t *Table) Header() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Value returns the raw cell text, or "" when the column does not exist.
func (t *Table) Value(row int, col string) string {
	i, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][i]
}

// Float returns the numeric value of a cell. Missing or unparsable cells are 0,
// which makes sums skip them.
func (t *Table) Float(row int, col string) float64 {
	v := t.Value(row, col)
	if isMissing(v) {
		return 0
	}
	x, ok := parseNumeric(v, t.numeric)
	if !ok {
		return 0
	}
	return x
}

// Head returns up to n leading rows.
func (t *Table) Head(n int) [][]string {
	if n <= 0 || n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// NumericColumns lists numeric column names in file order.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, c := range t.Columns {
		if c.Kind == KindNumeric {
			out = append(out, c.Name)
		}
	}
	return out
}

// inferKind is a strict vote: a column is numeric only when every non-missing
// cell parses as a number, mirroring how a dataframe assigns column dtypes.
func (t *Table) inferKind(col int) Kind {
	seen := 0
	for _, row := range t.Rows {
		v := row[col]
		if isMissing(v) {
			continue
		}
		if _, ok := parseNumeric(v, t.numeric); !ok {
			return KindText
		}
		seen++
	}
	if seen == 0 {
		return KindText
	}
	return KindNumeric
}
