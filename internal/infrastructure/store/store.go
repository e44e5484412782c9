package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/oceanshop/storefront/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

// Collection names exposed by the remote store.
const (
	CollectionProducts   = "products"
	CollectionCategories = "categories"
	CollectionCart       = "cart"
	CollectionOrders     = "orders"
	CollectionReviews    = "reviews"
)

// Client issues CRUD calls against the remote store's named collections.
// There is no automatic retry: a failed call means the state of the remote
// mutation is unknown and callers must not assume it was applied.
type Client struct {
	host string
	cb   *gobreaker.CircuitBreaker[[]byte]
}

func CreateClient(host string, cb *gobreaker.CircuitBreaker[[]byte]) *Client {
	return &Client{host: host, cb: cb}
}

func (c *Client) collectionURL(collection string, filter map[string]string) string {
	u := fmt.Sprintf("%s/%s", c.host, collection)
	if len(filter) == 0 {
		return u
	}

	q := url.Values{}
	for k, v := range filter {
		q.Set(k, v)
	}
	return u + "?" + q.Encode()
}

func (c *Client) do(ctx context.Context, method string, requestURL string, body []byte) ([]byte, error) {
	var statusCode int
	respBody, err := c.cb.Execute(func() ([]byte, error) {
		req := httpclient.HttpRequest{
			URL:    requestURL,
			Method: method,
			Body:   body,
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		}

		code, resp, err := httpclient.SendRequest(ctx, req)
		if err != nil {
			return nil, err
		}
		statusCode = code
		if code >= http.StatusInternalServerError {
			return nil, fmt.Errorf("store returned status %d for %s %s", code, method, requestURL)
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	if statusCode == http.StatusNotFound {
		return nil, errs.ErrNotFound
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("store returned status %d for %s %s", statusCode, method, requestURL)
	}

	return respBody, nil
}

func (c *Client) List(ctx context.Context, collection string, filter map[string]string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.collectionURL(collection, filter), nil)
}

func (c *Client) Get(ctx context.Context, collection string, id string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%s/%s", c.host, collection, id), nil)
}

func (c *Client) Create(ctx context.Context, collection string, entity interface{}) ([]byte, error) {
	body, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s entity: %w", collection, err)
	}
	return c.do(ctx, http.MethodPost, c.collectionURL(collection, nil), body)
}

func (c *Client) Update(ctx context.Context, collection string, id string, partial interface{}) ([]byte, error) {
	body, err := json.Marshal(partial)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s patch: %w", collection, err)
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%s/%s", c.host, collection, id), body)
}

func (c *Client) Delete(ctx context.Context, collection string, id string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%s/%s", c.host, collection, id), nil)
	return err
}
