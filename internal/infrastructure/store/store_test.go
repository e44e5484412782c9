package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	circuitbreaker "github.com/oceanshop/storefront/internal/infrastructure/circuit-breaker"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return CreateClient(srv.URL, circuitbreaker.CreateCircuitBreaker(t.Name()))
}

func Test_ListAppliesFilter(t *testing.T) {
	var gotPath, gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":"line-1","productId":"p1"}]`))
	})

	body, err := client.List(context.Background(), CollectionCart, map[string]string{"productId": "p1"})
	require.NoError(t, err)

	assert.Equal(t, "/cart", gotPath)
	assert.Equal(t, "productId=p1", gotQuery)
	assert.JSONEq(t, `[{"id":"line-1","productId":"p1"}]`, string(body))
}

func Test_GetNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{}`))
	})

	_, err := client.Get(context.Background(), CollectionProducts, "missing")

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func Test_CreatePostsEntity(t *testing.T) {
	var gotMethod string
	var gotBody []byte
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"line-1","productId":"p1","quantity":1}`))
	})

	entity := map[string]interface{}{"productId": "p1", "quantity": 1}
	body, err := client.Create(context.Background(), CollectionCart, entity)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, `{"productId":"p1","quantity":1}`, string(gotBody))

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "line-1", created["id"])
}

func Test_UpdateUsesPatch(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"line-1","quantity":3}`))
	})

	_, err := client.Update(context.Background(), CollectionCart, "line-1", map[string]interface{}{"quantity": 3})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/cart/line-1", gotPath)
}

func Test_DeleteTargetsResource(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})

	err := client.Delete(context.Background(), CollectionCart, "line-1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cart/line-1", gotPath)
}

func Test_ServerErrorSingleAttempt(t *testing.T) {
	var requests int
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Create(context.Background(), CollectionOrders, map[string]interface{}{"total": 10})

	// One attempt only: the caller cannot know whether the mutation landed,
	// so a retry could apply it twice.
	require.Error(t, err)
	assert.Equal(t, 1, requests)
}
