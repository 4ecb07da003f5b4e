// Package tabular implements the shared dashboard table component: free-text
// filtering, single-column toggling sort, fixed-size pagination and a
// two-step confirmation for row deletion. Every dashboard collection (staff,
// banners, projects, orders, ...) is presented through one Browser configured
// with that entity's column descriptors.
package tabular

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
)

const DefaultPerPage = 5

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

var (
	// ErrNotArmed is returned by ConfirmDelete when no row is armed.
	ErrNotArmed = errors.New("tabular: no row armed for deletion")
	// ErrNotVisible is returned by ArmDelete when the row is not part of the
	// current filtered view.
	ErrNotVisible = errors.New("tabular: record not in current view")
)

// Column describes one table column for a record type. Value must render the
// field as a string; filtering and lexicographic sorting operate on that
// string form, lower-cased. Columns holding currency or counts set Numeric so
// that "9.50" sorts before "100".
type Column[T any] struct {
	Key        string
	Label      string
	Searchable bool
	Sortable   bool
	Numeric    bool
	Value      func(T) string
}

// DeleteFunc removes one record from the underlying collection. It is invoked
// at most once per confirmed deletion and may fail; the browser never removes
// rows speculatively.
type DeleteFunc func(ctx context.Context, id string) error

// Browser holds one table's records together with its ephemeral view state.
// Derivation is always filter, then sort, then paginate, and is free of side
// effects, so View may be called any number of times for the same state.
type Browser[T any] struct {
	records  []T
	id       func(T) string
	columns  []Column[T]
	perPage  int
	deleteFn DeleteFunc

	query   string
	sortKey string
	order   SortOrder
	page    int
	armedID string
}

// View is the derived, render-ready slice of the collection.
type View[T any] struct {
	Rows       []T       `json:"rows"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	PerPage    int       `json:"per_page"`
	HasPrev    bool      `json:"has_prev"`
	HasNext    bool      `json:"has_next"`
	Query      string    `json:"query,omitempty"`
	SortKey    string    `json:"sort_key,omitempty"`
	SortOrder  SortOrder `json:"sort_order,omitempty"`
}

func New[T any](records []T, id func(T) string, columns []Column[T], perPage int, deleteFn DeleteFunc) *Browser[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &Browser[T]{
		records:  records,
		id:       id,
		columns:  columns,
		perPage:  perPage,
		deleteFn: deleteFn,
		order:    Ascending,
		page:     1,
	}
}

// SetRecords replaces the underlying collection, typically after a re-fetch
// that follows a mutation, and re-clamps the current page so a deletion can
// never leave the browser on an empty page.
func (b *Browser[T]) SetRecords(records []T) {
	b.records = records
	b.page = b.clamp(b.page)
}

// SetQuery sets the free-text filter. The empty query matches everything.
func (b *Browser[T]) SetQuery(q string) {
	b.query = q
	b.page = b.clamp(b.page)
}

// ToggleSort selects key as the sort column. Selecting the active key flips
// the direction; selecting a new key restarts ascending. Keys that are not
// declared sortable are ignored.
func (b *Browser[T]) ToggleSort(key string) {
	col := b.column(key)
	if col == nil || !col.Sortable {
		return
	}
	if b.sortKey == key {
		if b.order == Ascending {
			b.order = Descending
		} else {
			b.order = Ascending
		}
		return
	}
	b.sortKey = key
	b.order = Ascending
}

// Sort sets an explicit sort key and direction, as carried in list-endpoint
// query parameters. Unknown or unsortable keys clear the sort.
func (b *Browser[T]) Sort(key string, order SortOrder) {
	col := b.column(key)
	if col == nil || !col.Sortable {
		b.sortKey = ""
		b.order = Ascending
		return
	}
	b.sortKey = key
	if order == Descending {
		b.order = Descending
	} else {
		b.order = Ascending
	}
}

func (b *Browser[T]) SetPage(p int) {
	b.page = b.clamp(p)
}

func (b *Browser[T]) NextPage() {
	b.page = b.clamp(b.page + 1)
}

func (b *Browser[T]) PrevPage() {
	b.page = b.clamp(b.page - 1)
}

// ArmDelete marks one row for deletion. Only a single row can be armed;
// arming another row disarms the previous one. The row must be present in the
// current filtered view.
func (b *Browser[T]) ArmDelete(id string) error {
	for _, r := range b.filtered() {
		if b.id(r) == id {
			b.armedID = id
			return nil
		}
	}
	return ErrNotVisible
}

// CancelDelete disarms without side effects.
func (b *Browser[T]) CancelDelete() {
	b.armedID = ""
}

// ArmedID reports the currently armed row, or "" when none is armed.
func (b *Browser[T]) ArmedID() string {
	return b.armedID
}

// ConfirmDelete invokes the delete callback for the armed row. Whether the
// callback succeeds or fails, the armed slot is cleared; the caller is
// expected to re-fetch and SetRecords afterwards.
func (b *Browser[T]) ConfirmDelete(ctx context.Context) error {
	if b.armedID == "" {
		return ErrNotArmed
	}
	id := b.armedID
	b.armedID = ""
	return b.deleteFn(ctx, id)
}

// View derives the visible window from the current records and view state.
func (b *Browser[T]) View() View[T] {
	rows := b.filtered()
	b.sortRows(rows)

	total := len(rows)
	totalPages := b.totalPages(total)
	page := b.clamp(b.page)

	start := (page - 1) * b.perPage
	end := start + b.perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View[T]{
		Rows:       rows[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		PerPage:    b.perPage,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Query:      b.query,
		SortKey:    b.sortKey,
		SortOrder:  b.order,
	}
}

func (b *Browser[T]) column(key string) *Column[T] {
	for i := range b.columns {
		if b.columns[i].Key == key {
			return &b.columns[i]
		}
	}
	return nil
}

// filtered returns a fresh slice of the records matching the query: a record
// is kept when any searchable column's lower-cased string form contains the
// lower-cased query.
func (b *Browser[T]) filtered() []T {
	if b.query == "" {
		return append([]T(nil), b.records...)
	}

	q := strings.ToLower(b.query)
	var out []T
	for _, r := range b.records {
		for _, col := range b.columns {
			if !col.Searchable {
				continue
			}
			if strings.Contains(strings.ToLower(col.Value(r)), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func (b *Browser[T]) sortRows(rows []T) {
	col := b.column(b.sortKey)
	if col == nil {
		return
	}

	less := func(a, c T) bool {
		if col.Numeric {
			return parseAmount(col.Value(a)) < parseAmount(col.Value(c))
		}
		return strings.ToLower(col.Value(a)) < strings.ToLower(col.Value(c))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if b.order == Descending {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

func (b *Browser[T]) totalPages(total int) int {
	pages := (total + b.perPage - 1) / b.perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (b *Browser[T]) clamp(page int) int {
	max := b.totalPages(len(b.filtered()))
	if page > max {
		page = max
	}
	if page < 1 {
		page = 1
	}
	return page
}

// parseAmount reads a numeric column value; missing or malformed values sort
// as zero rather than failing.
func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
