package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/oceanshop/storefront/config"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/oceanshop/storefront/pkg/httpclient"
)

// Account is the provider's view of an authenticated user.
type Account struct {
	UID         string
	Email       string
	DisplayName string
}

// Client talks to the external identity provider's REST surface. Provider
// failures are surfaced to the caller with the provider's own message.
type Client struct {
	host   string
	apiKey string
}

func CreateClient(config *config.Config) *Client {
	return &Client{
		host:   config.IdentityConfig.Host,
		apiKey: config.IdentityConfig.APIKey,
	}
}

type accountPayload struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type errorPayload struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) call(ctx context.Context, action string, payload interface{}) (Account, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Account{}, fmt.Errorf("failed to marshal %s request: %w", action, err)
	}

	req := httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/v1/accounts:%s?key=%s", c.host, action, c.apiKey),
		Method: http.MethodPost,
		Body:   body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}

	statusCode, respBody, err := httpclient.SendRequest(ctx, req)
	if err != nil {
		return Account{}, err
	}

	if statusCode != http.StatusOK {
		var provider errorPayload
		if err := json.Unmarshal(respBody, &provider); err == nil && provider.Error.Message != "" {
			return Account{}, &errs.ProviderError{Message: provider.Error.Message}
		}
		return Account{}, fmt.Errorf("identity provider returned status %d", statusCode)
	}

	var account accountPayload
	if err := json.Unmarshal(respBody, &account); err != nil {
		return Account{}, fmt.Errorf("failed to unmarshal %s response: %w", action, err)
	}

	return Account{
		UID:         account.LocalID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
	}, nil
}

func (c *Client) SignIn(ctx context.Context, email string, password string) (Account, error) {
	return c.call(ctx, "signInWithPassword", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

func (c *Client) SignUp(ctx context.Context, email string, password string) (Account, error) {
	return c.call(ctx, "signUp", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

func (c *Client) SignInWithProvider(ctx context.Context, providerID string, providerToken string) (Account, error) {
	return c.call(ctx, "signInWithIdp", map[string]interface{}{
		"postBody":          fmt.Sprintf("id_token=%s&providerId=%s", providerToken, providerID),
		"requestUri":        c.host,
		"returnSecureToken": true,
	})
}

func (c *Client) UpdateDisplayName(ctx context.Context, uid string, displayName string) error {
	_, err := c.call(ctx, "update", map[string]interface{}{
		"localId":     uid,
		"displayName": displayName,
	})
	return err
}
