package tabular

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string
	Name  string
	Stack string
	Price string
}

func rowColumns() []Column[row] {
	return []Column[row]{
		{Key: "name", Label: "Name", Searchable: true, Sortable: true, Value: func(r row) string { return r.Name }},
		{Key: "stack", Label: "Stack", Searchable: true, Sortable: true, Value: func(r row) string { return r.Stack }},
		{Key: "price", Label: "Price", Sortable: true, Numeric: true, Value: func(r row) string { return r.Price }},
	}
}

func newRowBrowser(records []row, perPage int, deleteFn DeleteFunc) *Browser[row] {
	if deleteFn == nil {
		deleteFn = func(context.Context, string) error { return nil }
	}
	return New(records, func(r row) string { return r.ID }, rowColumns(), perPage, deleteFn)
}

func sampleRows() []row {
	return []row{
		{ID: "1", Name: "Charlie", Stack: "Go", Price: "100"},
		{ID: "2", Name: "alice", Stack: "React", Price: "9.50"},
		{ID: "3", Name: "Bob", Stack: "go", Price: "20"},
		{ID: "4", Name: "Dave", Stack: "Rust", Price: ""},
	}
}

func TestFilterMatchesAnySearchableField(t *testing.T) {
	b := newRowBrowser(sampleRows(), 10, nil)

	b.SetQuery("go")
	v := b.View()
	require.Len(t, v.Rows, 2)
	assert.Equal(t, "Charlie", v.Rows[0].Name)
	assert.Equal(t, "Bob", v.Rows[1].Name)

	// price is not searchable
	b.SetQuery("100")
	assert.Empty(t, b.View().Rows)

	// case-insensitive both ways
	b.SetQuery("ALICE")
	require.Len(t, b.View().Rows, 1)

	// empty query matches everything
	b.SetQuery("")
	assert.Len(t, b.View().Rows, 4)
}

func TestSortToggleAndDirection(t *testing.T) {
	b := newRowBrowser(sampleRows(), 10, nil)

	b.ToggleSort("name")
	v := b.View()
	names := []string{v.Rows[0].Name, v.Rows[1].Name, v.Rows[2].Name, v.Rows[3].Name}
	assert.Equal(t, []string{"alice", "Bob", "Charlie", "Dave"}, names)

	// same header again flips to descending, a reversed ordering
	b.ToggleSort("name")
	v = b.View()
	names = []string{v.Rows[0].Name, v.Rows[1].Name, v.Rows[2].Name, v.Rows[3].Name}
	assert.Equal(t, []string{"Dave", "Charlie", "Bob", "alice"}, names)

	// a different header restarts ascending
	b.ToggleSort("stack")
	v = b.View()
	assert.Equal(t, Ascending, v.SortOrder)
	assert.Equal(t, "stack", v.SortKey)

	// unknown keys are ignored
	b.ToggleSort("nope")
	assert.Equal(t, "stack", b.View().SortKey)
}

func TestNumericColumnSortsNumerically(t *testing.T) {
	b := newRowBrowser(sampleRows(), 10, nil)

	b.ToggleSort("price")
	v := b.View()
	// empty price degrades to 0 and sorts first; "9.50" < "20" < "100"
	prices := []string{v.Rows[0].Price, v.Rows[1].Price, v.Rows[2].Price, v.Rows[3].Price}
	assert.Equal(t, []string{"", "9.50", "20", "100"}, prices)
}

func TestSortStableOnEqualKeys(t *testing.T) {
	records := []row{
		{ID: "1", Name: "Same", Stack: "a"},
		{ID: "2", Name: "Same", Stack: "b"},
		{ID: "3", Name: "Same", Stack: "c"},
	}
	b := newRowBrowser(records, 10, nil)
	b.ToggleSort("name")

	v := b.View()
	assert.Equal(t, "1", v.Rows[0].ID)
	assert.Equal(t, "2", v.Rows[1].ID)
	assert.Equal(t, "3", v.Rows[2].ID)
}

func TestPaginationWindows(t *testing.T) {
	records := make([]row, 12)
	for i := range records {
		records[i] = row{ID: string(rune('a' + i)), Name: string(rune('a' + i))}
	}
	b := newRowBrowser(records, 5, nil)

	v := b.View()
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 12, v.Total)
	assert.False(t, v.HasPrev)
	assert.True(t, v.HasNext)

	// concatenating all windows reconstructs the sequence unchanged
	var all []row
	for page := 1; page <= v.TotalPages; page++ {
		b.SetPage(page)
		all = append(all, b.View().Rows...)
	}
	assert.Equal(t, records, all)

	// last page holds the remainder and disables next
	b.SetPage(3)
	v = b.View()
	assert.Len(t, v.Rows, 2)
	assert.True(t, v.HasPrev)
	assert.False(t, v.HasNext)

	// navigation past the boundaries is clamped
	b.NextPage()
	assert.Equal(t, 3, b.View().Page)
	b.SetPage(1)
	b.PrevPage()
	assert.Equal(t, 1, b.View().Page)
	b.SetPage(99)
	assert.Equal(t, 3, b.View().Page)
}

func TestViewIsIdempotent(t *testing.T) {
	b := newRowBrowser(sampleRows(), 2, nil)
	b.SetQuery("go")
	b.ToggleSort("name")
	b.SetPage(1)

	first := b.View()
	second := b.View()
	assert.Equal(t, first, second)
}

func TestDeleteConfirmationLifecycle(t *testing.T) {
	var deleted []string
	deleteFn := func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}
	b := newRowBrowser(sampleRows(), 10, deleteFn)

	// confirm without arming
	assert.ErrorIs(t, b.ConfirmDelete(context.Background()), ErrNotArmed)

	// arming a second row silently disarms the first
	require.NoError(t, b.ArmDelete("1"))
	require.NoError(t, b.ArmDelete("2"))
	assert.Equal(t, "2", b.ArmedID())

	// cancel always returns to the unarmed state
	b.CancelDelete()
	assert.Empty(t, b.ArmedID())

	require.NoError(t, b.ArmDelete("3"))
	require.NoError(t, b.ConfirmDelete(context.Background()))
	assert.Equal(t, []string{"3"}, deleted)
	assert.Empty(t, b.ArmedID())
}

func TestArmDeleteRequiresVisibleRow(t *testing.T) {
	b := newRowBrowser(sampleRows(), 10, nil)

	b.SetQuery("react")
	assert.ErrorIs(t, b.ArmDelete("1"), ErrNotVisible)
	assert.NoError(t, b.ArmDelete("2"))
}

func TestFailedDeleteClearsArmedSlot(t *testing.T) {
	boom := errors.New("backend rejected")
	b := newRowBrowser(sampleRows(), 10, func(context.Context, string) error { return boom })

	require.NoError(t, b.ArmDelete("1"))
	assert.ErrorIs(t, b.ConfirmDelete(context.Background()), boom)
	assert.Empty(t, b.ArmedID())

	// the browser does not remove rows on its own; the record is still there
	assert.Len(t, b.View().Rows, 4)
}

func TestDeleteThenRefreshReclampsPage(t *testing.T) {
	records := []row{
		{ID: "1", Name: "Bob"},
		{ID: "2", Name: "Anna"},
	}
	store := map[string]row{"1": records[0], "2": records[1]}
	deleteFn := func(_ context.Context, id string) error {
		delete(store, id)
		return nil
	}

	b := New(records, func(r row) string { return r.ID }, rowColumns(), 1, deleteFn)
	b.ToggleSort("name")

	v := b.View()
	assert.Equal(t, "Anna", v.Rows[0].Name)
	b.NextPage()
	assert.Equal(t, "Bob", b.View().Rows[0].Name)

	// delete Anna from page 2's state, then refresh as the page layer would
	b.SetPage(2)
	require.NoError(t, b.ArmDelete("2"))
	require.NoError(t, b.ConfirmDelete(context.Background()))

	var remaining []row
	for _, r := range store {
		remaining = append(remaining, r)
	}
	b.SetRecords(remaining)

	v = b.View()
	assert.Equal(t, 1, v.Page)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "Bob", v.Rows[0].Name)
	assert.False(t, v.HasNext)
}

func TestEmptyCollection(t *testing.T) {
	b := newRowBrowser(nil, 5, nil)
	v := b.View()
	assert.Empty(t, v.Rows)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 1, v.TotalPages)
	assert.False(t, v.HasPrev)
	assert.False(t, v.HasNext)
}
