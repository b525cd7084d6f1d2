package shopify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/machinebox/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/storeops/shopify-admin-mcp/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// testClient points a GraphQLClient at a local test server.
func testClient(srvURL, token string) *GraphQLClient {
	return &GraphQLClient{
		gql:      graphql.NewClient(srvURL),
		endpoint: srvURL,
		token:    token,
		logger:   testLogger(),
		tracer:   otel.Tracer("test"),
	}
}

func TestNewClient_Configuration(t *testing.T) {
	tests := []struct {
		name        string
		storeDomain string
		token       string
		version     string
		wantErr     bool
	}{
		{name: "valid", storeDomain: "example.myshopify.com", token: "shpat_x", version: "2025-01"},
		{name: "missing domain", storeDomain: "", token: "shpat_x", version: "2025-01", wantErr: true},
		{name: "missing token", storeDomain: "example.myshopify.com", token: "", version: "2025-01", wantErr: true},
		{name: "missing version", storeDomain: "example.myshopify.com", token: "shpat_x", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.storeDomain, tt.token, tt.version, nil, testLogger())
			if tt.wantErr {
				var ce *domain.ConfigurationError
				require.ErrorAs(t, err, &ce)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://example.myshopify.com/admin/api/2025-01/graphql.json", c.Endpoint())
		})
	}
}

func TestExecute_SendsAuthHeaderAndVariables(t *testing.T) {
	var gotToken string
	var gotBody struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"data": {"product": {"id": "gid://shopify/Product/123", "title": "Widget"}}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, "shpat_test")

	var out GetProductData
	err := c.Execute(context.Background(), GetProductByIDQuery, map[string]any{"id": "gid://shopify/Product/123"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "shpat_test", gotToken)
	assert.Contains(t, gotBody.Query, "product(id: $id)")
	assert.Equal(t, "gid://shopify/Product/123", gotBody.Variables["id"])

	require.NotNil(t, out.Product)
	assert.Equal(t, "Widget", out.Product.Title)
}

func TestExecute_GraphQLErrorsAreTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "Invalid API key or access token"}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, "shpat_bad")

	var out GetProductData
	err := c.Execute(context.Background(), GetProductByIDQuery, map[string]any{"id": "1"}, &out)

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, err.Error(), "Invalid API key or access token")
}

func TestExecute_NonSuccessStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(srv.URL, "shpat_test")

	var out GetProductData
	err := c.Execute(context.Background(), GetProductByIDQuery, map[string]any{"id": "1"}, &out)

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
}

func TestExecute_UserErrorsPassThrough(t *testing.T) {
	// Business userErrors live inside data and must not fail the transport.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"productCreate": {"product": null, "userErrors": [{"field": ["input", "title"], "message": "can't be blank"}]}}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, "shpat_test")

	var out ProductCreateData
	err := c.Execute(context.Background(), ProductCreateMutation, map[string]any{"input": map[string]any{}}, &out)
	require.NoError(t, err)
	require.Len(t, out.ProductCreate.UserErrors, 1)
	assert.Equal(t, []string{"input", "title"}, out.ProductCreate.UserErrors[0].Field)
}
