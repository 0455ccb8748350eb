package shopify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/thibautrey/PebbleShopApp/config"
)

// testClient points a real client at an httptest server.
func testClient(t *testing.T, handler http.HandlerFunc) (*Client, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.ShopifyConfig{APIVersion: "2024-07", Timeout: 2 * time.Second})
	c.scheme = "http"
	return c, srv.Listener.Addr().String()
}

func TestQuery_StatusClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnauthorized) {
					t.Fatalf("want ErrUnauthorized, got %v", err)
				}
			},
		},
		{
			name:   "403 forbidden",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnauthorized) {
					t.Fatalf("want ErrUnauthorized, got %v", err)
				}
			},
		},
		{
			name:   "429 rate limited",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrRateLimited) {
					t.Fatalf("want ErrRateLimited, got %v", err)
				}
			},
		},
		{
			name:   "500 http error",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var he *HTTPError
				if !errors.As(err, &he) || he.Status != 500 {
					t.Fatalf("want HTTPError{500}, got %v", err)
				}
				if he.Error() != "HTTP 500" {
					t.Fatalf("unexpected message %q", he.Error())
				}
			},
		},
		{
			name:   "graphql errors on 200",
			status: http.StatusOK,
			body:   `{"data":null,"errors":[{"message":"Field 'orders' missing"},{"message":"throttled"}]}`,
			check: func(t *testing.T, err error) {
				var ge *GraphQLError
				if !errors.As(err, &ge) {
					t.Fatalf("want GraphQLError, got %v", err)
				}
				if ge.Error() != "Field 'orders' missing; throttled" {
					t.Fatalf("unexpected joined message %q", ge.Error())
				}
			},
		},
		{
			name:   "undecodable body",
			status: http.StatusOK,
			body:   `not-json`,
			check: func(t *testing.T, err error) {
				var ne *NetworkError
				if !errors.As(err, &ne) {
					t.Fatalf("want NetworkError, got %v", err)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, domain := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				if tc.body != "" {
					_, _ = w.Write([]byte(tc.body))
				}
			})
			_, err := c.Query(context.Background(), domain, "tok", `query { shop { name } }`, nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			tc.check(t, err)
		})
	}
}

func TestQuery_SendsTokenAndPath(t *testing.T) {
	var gotPath, gotToken, gotContentType string
	c, domain := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"data":{"ok":true}}`))
	})

	data, err := c.Query(context.Background(), domain, "shpat_secret", `query { shop { name } }`, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Fatalf("unexpected data: %s", data)
	}
	if gotPath != "/admin/api/2024-07/graphql.json" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotToken != "shpat_secret" {
		t.Fatalf("token header not sent, got %q", gotToken)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type %q", gotContentType)
	}
}

func TestQuery_TransportFailure(t *testing.T) {
	c := NewClient(config.ShopifyConfig{APIVersion: "2024-07", Timeout: 200 * time.Millisecond})
	c.scheme = "http"

	// Closed port: connection refused surfaces as NetworkError.
	_, err := c.Query(context.Background(), "127.0.0.1:1", "tok", `query { shop { name } }`, nil)
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("want NetworkError, got %v", err)
	}
}

func TestQuery_TimeoutSurfacesAsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Hold the response open until the client gives up. Drain the
		// body first so the server watches the connection and cancels
		// the request context when the client disconnects.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.ShopifyConfig{APIVersion: "2024-07", Timeout: 100 * time.Millisecond})
	c.scheme = "http"

	_, err := c.Query(context.Background(), srv.Listener.Addr().String(), "tok", `query { shop { name } }`, nil)
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("want NetworkError on timeout, got %v", err)
	}
}

func TestShopCurrency(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"reported currency", `{"data":{"shop":{"currencyCode":"EUR"}}}`, "EUR"},
		{"empty currency falls back", `{"data":{"shop":{"currencyCode":""}}}`, "USD"},
		{"missing shop falls back", `{"data":{}}`, "USD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, domain := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			got, err := c.ShopCurrency(context.Background(), domain, "tok")
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("currency %q, want %q", got, tc.want)
			}
		})
	}
}
