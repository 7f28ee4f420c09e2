package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pcs/internal/export"
	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/goods/store"
	pcsHttp "github.com/MrJamesThe3rd/pcs/internal/http"
	exportHandler "github.com/MrJamesThe3rd/pcs/internal/http/export"
	goodsHandler "github.com/MrJamesThe3rd/pcs/internal/http/goods"
	vasscmHandler "github.com/MrJamesThe3rd/pcs/internal/http/vasscm"
	"github.com/MrJamesThe3rd/pcs/internal/vasscm"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	goodsSvc := goods.NewService(store.New(goods.Seed()))

	return pcsHttp.New(
		pcsHttp.Options{AllowedOrigins: []string{"http://board.test"}},
		goodsHandler.NewHandler(goodsSvc),
		exportHandler.NewHandler(export.NewService(goodsSvc), goodsSvc),
		vasscmHandler.NewHandler(vasscm.NewStub(nil), goodsSvc),
	)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

type listBody struct {
	Goods []struct {
		Seq     int    `json:"seq"`
		ID      string `json:"id"`
		Purpose string `json:"transport_purpose"`
		Weight  string `json:"weight"`
	} `json:"goods"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) listBody {
	t.Helper()

	var body listBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestList(t *testing.T) {
	h := newRouter(t)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{name: "All", target: "/api/v1/goods", want: []string{"1", "2", "3", "4"}},
		{name: "Search", target: "/api/v1/goods?q=TCNU", want: []string{"1"}},
		{name: "Purpose", target: "/api/v1/goods?purpose=transit", want: []string{"2"}},
		{name: "Empty", target: "/api/v1/goods?purpose=rob&q=TCNU", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)

			body := decodeList(t, rec)
			got := make([]string, 0, len(body.Goods))

			for i, g := range body.Goods {
				got = append(got, g.ID)
				assert.Equal(t, i+1, g.Seq)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), body.Total)
		})
	}
}

func TestList_Page(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodGet, "/api/v1/goods?page=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeList(t, rec)
	assert.Len(t, body.Goods, 4)
	assert.Equal(t, 1, body.TotalPages)
	assert.Equal(t, "8500", body.Goods[0].Weight)
}

func TestList_BadRequests(t *testing.T) {
	h := newRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/v1/goods?purpose=export", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/v1/goods?page=0", "").Code)
}

func TestSetPurpose(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodPatch, "/api/v1/goods/3/purpose", `{"purpose":"rob"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/goods/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats []struct {
		Purpose string `json:"purpose"`
		Count   int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))

	got := map[string]int{}
	for _, s := range stats {
		got[s.Purpose] = s.Count
	}

	assert.Equal(t, map[string]int{"import": 1, "transit": 1, "transshipment": 0, "rob": 2}, got)

	rec = do(t, h, http.MethodGet, "/api/v1/goods/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transport_purpose":"rob"`)
}

func TestSetPurpose_Errors(t *testing.T) {
	h := newRouter(t)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPatch, "/api/v1/goods/999/purpose", `{"purpose":"import"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPatch, "/api/v1/goods/1/purpose", `{"purpose":"export"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPatch, "/api/v1/goods/1/purpose", `{`).Code)

	// The unknown id left the board untouched.
	body := decodeList(t, do(t, h, http.MethodGet, "/api/v1/goods", ""))
	require.Len(t, body.Goods, 4)
	assert.Equal(t, "import", body.Goods[0].Purpose)
}

func TestGet_NotFound(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, do(t, newRouter(t), http.MethodGet, "/api/v1/goods/nope", "").Code)
}

func TestExport(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodGet, "/api/v1/goods/export?purpose=transit", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "goods_")
	assert.Contains(t, rec.Body.String(), "TCLU7654321")
	assert.NotContains(t, rec.Body.String(), "TCNU1234567")
}

func TestSubmit(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodPost, "/api/v1/goods/submit", "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	var receipt struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, 4, receipt.Count)
}

func TestMeta(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/purposes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"Trung chuyển"`)

	rec = do(t, h, http.MethodGet, "/api/v1/voyage", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "YM ULTIMATE / 012W")
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/goods", nil)
	req.Header.Set("Origin", "http://board.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "http://board.test", rec.Header().Get("Access-Control-Allow-Origin"))
}
