package query_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasetsmx/storefront/internal/db/models"
	"github.com/datasetsmx/storefront/internal/db/query"
)

func TestREST_URL(t *testing.T) {
	r := query.NewREST("https://abc.supabase.co/", "key", 0)

	q := bundlesQuery()
	q.Order = &query.Order{Column: "created_at", Desc: true}

	u, err := url.Parse(r.URL(q))
	require.NoError(t, err)

	assert.Equal(t, "abc.supabase.co", u.Host)
	assert.Equal(t, "/rest/v1/bundles", u.Path)

	v := u.Query()
	assert.Equal(t, "id,title,bundle_datasets(datasets(title))", v.Get("select"))
	assert.Equal(t, "eq.true", v.Get("is_published"))
	assert.Equal(t, "created_at.desc", v.Get("order"))
	assert.Equal(t, "created_at.asc", v.Get("bundle_datasets.order"))
}

func TestREST_Execute(t *testing.T) {
	var got *http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"6f0d7a5e-3f5d-4b8e-9a55-0a0c0f7e1a01","title":"RFC","price_mxn":145,"records_count":10000,"category":"Fiscal"},
			{"id":"6f0d7a5e-3f5d-4b8e-9a55-0a0c0f7e1a02","title":"CURP","price_mxn":145,"records_count":10000,"category":"Identidad"}
		]`))
	}))
	defer srv.Close()

	r := query.NewREST(srv.URL, "sb_publishable_test", time.Second)

	var out []models.Dataset

	err := r.Execute(context.Background(), query.Query{
		Collection: "datasets",
		Filters:    []query.Filter{query.Eq("is_published", true)},
		Order:      &query.Order{Column: "created_at", Desc: true},
	}, &out)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "RFC", out[0].Title)
	assert.Equal(t, 10000, out[0].RecordsCount)
	assert.Equal(t, "6f0d7a5e-3f5d-4b8e-9a55-0a0c0f7e1a02", out[1].ID.String())

	require.NotNil(t, got)
	assert.Equal(t, "/rest/v1/datasets", got.URL.Path)
	assert.Equal(t, "sb_publishable_test", got.Header.Get("apikey"))
	assert.Equal(t, "Bearer sb_publishable_test", got.Header.Get("Authorization"))
	assert.Equal(t, "eq.true", got.URL.Query().Get("is_published"))
}

func TestREST_Execute_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var out []models.Dataset

	err := query.NewREST(srv.URL, "k", time.Second).Execute(context.Background(), query.Query{Collection: "datasets"}, &out)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestREST_Execute_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"42P01","details":null,"hint":null,"message":"relation \"public.bundles\" does not exist"}`))
	}))
	defer srv.Close()

	var out []models.Bundle

	err := query.NewREST(srv.URL, "k", time.Second).Execute(context.Background(), query.Query{Collection: "bundles"}, &out)
	require.Error(t, err)

	var apiErr *query.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "42P01", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "does not exist")
}

func TestREST_Execute_PlainErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer srv.Close()

	var out []models.Dataset

	err := query.NewREST(srv.URL, "k", time.Second).Execute(context.Background(), query.Query{Collection: "datasets"}, &out)

	var apiErr *query.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestREST_Execute_Decode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	var out []models.Dataset

	err := query.NewREST(srv.URL, "k", time.Second).Execute(context.Background(), query.Query{Collection: "datasets"}, &out)
	assert.ErrorContains(t, err, "decode")
}

func TestREST_Execute_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out []models.Dataset

	err := query.NewREST(srv.URL, "k", 10*time.Second).Execute(ctx, query.Query{Collection: "datasets"}, &out)
	assert.Error(t, err)
}

func TestREST_Execute_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out []models.Dataset

	err := query.NewREST("http://127.0.0.1:1", "k", time.Second).Execute(ctx, query.Query{Collection: "datasets"}, &out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestREST_Execute_InvalidQuery(t *testing.T) {
	var out []models.Dataset

	err := query.NewREST("http://127.0.0.1:1", "k", time.Second).Execute(context.Background(), query.Query{}, &out)
	assert.ErrorIs(t, err, query.ErrInvalidQuery)
}
