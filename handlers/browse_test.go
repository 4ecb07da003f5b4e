package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/tabular"
)

func testRouter(records []models.Banner, deleted *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/banners", func(c *gin.Context) {
		renderBrowser(c, records, func(b models.Banner) string { return b.ID }, bannerColumns)
	})
	r.DELETE("/banners/:id", func(c *gin.Context) {
		deleteFn := func(ctx context.Context, id string) error {
			*deleted = append(*deleted, id)
			return nil
		}
		deleteViaBrowser(c, records, func(b models.Banner) string { return b.ID }, bannerColumns, tabular.DeleteFunc(deleteFn), "Banner")
	})

	return r
}

func TestListAppliesQuerySortAndPage(t *testing.T) {
	records := []models.Banner{
		{ID: "b-1", Title: "Summer Sale"},
		{ID: "b-2", Title: "Autumn Launch"},
		{ID: "b-3", Title: "Summer Workshop"},
	}
	router := testRouter(records, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/banners?q=summer&sort=title&order=desc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var view tabular.View[models.Banner]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	assert.Equal(t, 2, view.Total)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "Summer Workshop", view.Rows[0].Title)
	assert.Equal(t, "Summer Sale", view.Rows[1].Title)
}

func TestListClampsOutOfRangePage(t *testing.T) {
	records := []models.Banner{{ID: "b-1", Title: "Only One"}}
	router := testRouter(records, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/banners?page=99", nil)
	router.ServeHTTP(w, req)

	var view tabular.View[models.Banner]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	assert.Equal(t, 1, view.Page)
	assert.Len(t, view.Rows, 1)
}

func TestDeleteConfirmsThroughBrowser(t *testing.T) {
	records := []models.Banner{{ID: "b-1", Title: "Old"}}
	var deleted []string
	router := testRouter(records, &deleted)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/banners/b-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"b-1"}, deleted)
}

func TestDeleteUnknownRowIs404(t *testing.T) {
	records := []models.Banner{{ID: "b-1", Title: "Old"}}
	var deleted []string
	router := testRouter(records, &deleted)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/banners/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, deleted)
}
