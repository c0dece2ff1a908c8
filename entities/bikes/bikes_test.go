package bikes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestaobikes/cache"
	"gestaobikes/database"
	"gestaobikes/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var body envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

// countingTable counts Select calls to observe cache hits.
type countingTable struct {
	database.Table[schemas.Bike]
	selects int
}

func (c *countingTable) Select(ctx context.Context, q database.Query) ([]schemas.Bike, error) {
	c.selects++
	return c.Table.Select(ctx, q)
}

type failingTable struct {
	database.Table[schemas.Bike]
	err error
}

func (f failingTable) Select(context.Context, database.Query) ([]schemas.Bike, error) {
	return nil, f.err
}

func newTestHandler(t *testing.T) (*Handler, *countingTable) {
	t.Helper()
	table := &countingTable{Table: database.NewMemoryTable[schemas.Bike]()}
	return &Handler{
		Bikes:    table,
		Cache:    cache.NewMemory(),
		CacheTTL: time.Minute,
		Logger:   zap.NewNop(),
	}, table
}

func request(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	return httptest.NewRequest(method, target, &buf)
}

func insertBike(t *testing.T, table database.Table[schemas.Bike], b schemas.Bike) {
	t.Helper()
	require.NoError(t, table.Insert(context.Background(), &b))
}

func validBike() map[string]any {
	return map[string]any{
		"modelo":    "Urban 500",
		"valor":     "5000",
		"autonomia": "40 km",
		"aguenta":   "120 kg",
		"foto_1":    "https://cdn.gestaobikes.com.br/urban.jpg",
	}
}

func TestCreateOne(t *testing.T) {
	h, table := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.CreateOne(rec, request(http.MethodPost, "/v1/bikes", validBike()))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[schemas.Bike](t, rec).Data
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, schemas.BIKE_LICENSE_NO, created.LicenseRequired)
	assert.Equal(t, schemas.BIKE_STATUS_AVAILABLE, created.Status)

	rows, err := table.Table.Select(context.Background(), database.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	invalid := validBike()
	invalid["modelo"] = "X"
	invalid["foto_2"] = "nao-e-url"
	rec = httptest.NewRecorder()
	h.CreateOne(rec, request(http.MethodPost, "/v1/bikes", invalid))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decode[[]schemas.FieldError](t, rec).Data
	assert.Len(t, errs, 2)
}

func TestGetAllStatusFilter(t *testing.T) {
	h, table := newTestHandler(t)
	insertBike(t, table, schemas.Bike{ID: "1", Model: "Cargo", Status: "Disponível"})
	insertBike(t, table, schemas.Bike{ID: "2", Model: "Aro 29", Status: "DISPONIVEL"})
	insertBike(t, table, schemas.Bike{ID: "3", Model: "Mini", Status: "Vendida"})
	insertBike(t, table, schemas.Bike{ID: "4", Model: "Bravo", Status: "Reservada"})

	list := func(status string) []string {
		rec := httptest.NewRecorder()
		h.GetAll(rec, request(http.MethodGet, "/v1/bikes?status="+status, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		ids := []string{}
		for _, b := range decode[[]schemas.Bike](t, rec).Data {
			ids = append(ids, b.ID)
		}
		return ids
	}

	assert.Equal(t, []string{"2", "4", "1", "3"}, list(""))
	assert.Equal(t, []string{"2", "4", "1", "3"}, list("all"))
	assert.Equal(t, []string{"2", "1"}, list("disponivel"))
	assert.Equal(t, []string{"3"}, list("Vendida"))
	assert.Empty(t, list("vendida"))
}

func TestGetCatalogIsCachedAndInvalidated(t *testing.T) {
	h, table := newTestHandler(t)
	insertBike(t, table, schemas.Bike{ID: "1", Model: "Urban", Price: "5000", Status: "disponível", Photo1: "a.jpg", Photo3: "c.jpg"})
	insertBike(t, table, schemas.Bike{ID: "2", Model: "Cargo", Price: "", Status: "Disponível"})
	insertBike(t, table, schemas.Bike{ID: "3", Model: "Mini", Price: "3.500,00", Status: "Vendida"})

	catalog := func() []schemas.CatalogBike {
		rec := httptest.NewRecorder()
		h.GetCatalog(rec, request(http.MethodGet, "/v1/catalog", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		return decode[[]schemas.CatalogBike](t, rec).Data
	}

	first := catalog()
	require.Len(t, first, 2)
	assert.Equal(t, "Cargo", first[0].Model)
	assert.Equal(t, "Consultar", first[0].Price)
	assert.Equal(t, "R$ 5.000,00", first[1].Price)
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, first[1].Photos)

	assert.Equal(t, first, catalog())
	assert.Equal(t, 1, table.selects, "second read is served from the cache")

	req := request(http.MethodDelete, "/v1/bikes/2", nil)
	req.SetPathValue("id", "2")
	rec := httptest.NewRecorder()
	h.DeleteOne(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, catalog(), 1)
	assert.Equal(t, 2, table.selects)
}

func TestGetCatalogStoreFailure(t *testing.T) {
	h := &Handler{
		Bikes:  failingTable{err: errors.Join(database.ErrUnavailable, errors.New("timeout"))},
		Cache:  cache.Noop{},
		Logger: zap.NewNop(),
	}

	rec := httptest.NewRecorder()
	h.GetCatalog(rec, request(http.MethodGet, "/v1/catalog", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestUpdateAndDelete(t *testing.T) {
	h, table := newTestHandler(t)
	insertBike(t, table, schemas.Bike{ID: "1", Model: "Urban", Price: "5000", Range: "40 km", LoadCapacity: "120 kg", LicenseRequired: "não", Status: "Disponível"})

	body := validBike()
	body["status"] = "Vendida"
	body["precisa_CNH"] = "sim"

	req := request(http.MethodPut, "/v1/bikes/1", body)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.UpdateOne(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	req = request(http.MethodGet, "/v1/bikes/1", nil)
	req.SetPathValue("id", "1")
	rec = httptest.NewRecorder()
	h.GetOne(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	bike := decode[schemas.Bike](t, rec).Data
	assert.Equal(t, "Vendida", bike.Status)
	assert.Equal(t, "sim", bike.LicenseRequired)
	assert.Equal(t, "Urban 500", bike.Model)

	req = request(http.MethodPut, "/v1/bikes/9", body)
	req.SetPathValue("id", "9")
	rec = httptest.NewRecorder()
	h.UpdateOne(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = request(http.MethodDelete, "/v1/bikes/9", nil)
	req.SetPathValue("id", "9")
	rec = httptest.NewRecorder()
	h.DeleteOne(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = request(http.MethodGet, "/v1/bikes/9", nil)
	req.SetPathValue("id", "9")
	rec = httptest.NewRecorder()
	h.GetOne(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, BIKE_NOT_FOUND, decode[any](t, rec).Message)
}
