// Package table paginates typed rows on the client side and renders them
// through per-column functions. Sorting and filtering are the caller's job.
package table

import (
	"html/template"
	"math"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

const DefaultPageSize = 5

// PageSizes are the sizes offered by the page-size selector.
var PageSizes = []int{5, 10, 25}

type Column[T any] struct {
	ID     string
	Label  string
	Render func(T) template.HTML
}

type Table[T any] struct {
	data     []T
	columns  []Column[T]
	page     int
	pageSize int

	// Actions builds the edit and delete targets for a row. Empty strings
	// disable the trigger, which screens do for rows without an id.
	Actions func(T) (edit, del string)
}

func New[T any](data []T, columns []Column[T]) *Table[T] {
	return &Table[T]{data: data, columns: columns, pageSize: DefaultPageSize}
}

func (t *Table[T]) Page() int     { return t.page }
func (t *Table[T]) PageSize() int { return t.pageSize }
func (t *Table[T]) Total() int    { return len(t.data) }

// LastPage is the highest valid page index; 0 for an empty table.
func (t *Table[T]) LastPage() int {
	if len(t.data) == 0 {
		return 0
	}
	return (len(t.data) - 1) / t.pageSize
}

// SetPage moves to page p, clamped into range.
func (t *Table[T]) SetPage(p int) {
	t.page = min(max(p, 0), t.LastPage())
}

// SetPageSize changes the size and goes back to the first page.
// Sizes outside PageSizes fall back to DefaultPageSize.
func (t *Table[T]) SetPageSize(n int) {
	if !slices.Contains(PageSizes, n) {
		n = DefaultPageSize
	}
	t.pageSize = n
	t.page = 0
}

// Rows returns the slice of data shown on the current page.
func (t *Table[T]) Rows() []T {
	from := t.page * t.pageSize
	if from >= len(t.data) {
		return nil
	}
	to := min(from+t.pageSize, len(t.data))
	return t.data[from:to]
}

// Decimal formats f in plain decimal notation. Non-finite values, which
// decimal cannot represent, fall back to strconv.
func Decimal(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return decimal.NewFromFloat(f).String()
}

// Text escapes s for use as a cell.
func Text(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}
