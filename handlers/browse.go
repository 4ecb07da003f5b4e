package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/tabular"
)

// Every dashboard table endpoint goes through the same tabular browser:
// ?q= filters, ?sort= and ?order= select the column, ?page= picks the window.

func applyBrowseParams[T any](c *gin.Context, b *tabular.Browser[T]) {
	if q := c.Query("q"); q != "" {
		b.SetQuery(q)
	}
	if sortKey := c.Query("sort"); sortKey != "" {
		order := tabular.Ascending
		if c.Query("order") == string(tabular.Descending) {
			order = tabular.Descending
		}
		b.Sort(sortKey, order)
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		b.SetPage(page)
	}
}

// renderBrowser lists a collection through a fresh browser instance.
func renderBrowser[T any](c *gin.Context, records []T, id func(T) string, columns []tabular.Column[T]) {
	b := tabular.New(records, id, columns, tabular.DefaultPerPage, nil)
	applyBrowseParams(c, b)
	c.JSON(http.StatusOK, b.View())
}

// deleteViaBrowser runs the confirmed-delete path of the browser for one row:
// the row is armed (validating it exists in the collection) and immediately
// confirmed, since the confirmation dialog already happened client-side.
func deleteViaBrowser[T any](c *gin.Context, records []T, id func(T) string, columns []tabular.Column[T], deleteFn tabular.DeleteFunc, noun string) {
	b := tabular.New(records, id, columns, tabular.DefaultPerPage, deleteFn)

	if err := b.ArmDelete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": noun + " not found"})
		return
	}

	if err := b.ConfirmDelete(c.Request.Context()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": noun + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete " + noun})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": noun + " deleted successfully"})
}
