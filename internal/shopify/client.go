// Package shopify is the Admin GraphQL client: one POST per call, a
// fixed request budget, and classification of every failure into the
// small taxonomy the watch can display.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/thibautrey/PebbleShopApp/config"
)

// Client issues GraphQL documents against a store's Admin API.
// It is safe for concurrent use; the zero value is not usable, construct
// via NewClient.
type Client struct {
	httpClient *http.Client
	apiVersion string

	// scheme is overridden to "http" by tests running against httptest
	// servers; production traffic is always https.
	scheme string
}

// NewClient builds a client with the configured API version and the hard
// per-request timeout (12s by default). There are no retries: a request
// either yields a classified result or a terminal error.
func NewClient(cfg config.ShopifyConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiVersion: cfg.APIVersion,
		scheme:     "https",
	}
}

// graphQLRequest is the wire body: {query, variables}.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLResponse splits the payload into the data document and the
// error list; `errors` may be non-empty even on a 2xx status.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Query sends one document to https://{domain}/admin/api/{version}/graphql.json
// and returns the raw `data` field on success.
//
// Failure classification:
//   - 401/403          -> ErrUnauthorized
//   - 429              -> ErrRateLimited
//   - other non-2xx    -> *HTTPError
//   - non-empty errors -> *GraphQLError (joined messages)
//   - transport/decode -> *NetworkError
func (c *Client) Query(ctx context.Context, domain, token, document string, variables map[string]any) (json.RawMessage, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	body, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s://%s/admin/api/%s/graphql.json", c.scheme, domain, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = res.Body.Close() }()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return nil, &HTTPError{Status: res.StatusCode}
	}

	var payload graphQLResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, &NetworkError{Err: err}
	}
	if len(payload.Errors) > 0 {
		msgs := make([]string, 0, len(payload.Errors))
		for _, e := range payload.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, &GraphQLError{Messages: msgs}
	}

	return payload.Data, nil
}

const shopCurrencyQuery = `query ShopCurrency { shop { currencyCode } }`

// ShopCurrency fetches the store's settlement currency code, defaulting
// to USD when the store reports none.
func (c *Client) ShopCurrency(ctx context.Context, domain, token string) (string, error) {
	data, err := c.Query(ctx, domain, token, shopCurrencyQuery, nil)
	if err != nil {
		return "", err
	}

	var out struct {
		Shop struct {
			CurrencyCode string `json:"currencyCode"`
		} `json:"shop"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", &NetworkError{Err: err}
	}
	if out.Shop.CurrencyCode == "" {
		return "USD", nil
	}
	return out.Shop.CurrencyCode, nil
}
