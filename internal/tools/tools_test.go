package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeops/shopify-admin-mcp/internal/domain"
)

// fakeClient records the last executed document and variables and decodes a
// canned JSON response into the caller's payload struct.
type fakeClient struct {
	document string
	vars     map[string]any
	response string
	err      error
}

func (f *fakeClient) Execute(_ context.Context, document string, vars map[string]any, out any) error {
	f.document = document
	f.vars = vars
	if f.err != nil {
		return f.err
	}
	if f.response == "" {
		return nil
	}
	return json.Unmarshal([]byte(f.response), out)
}

func TestGetProductByIDFound(t *testing.T) {
	client := &fakeClient{response: `{
		"product": {
			"id": "gid://shopify/Product/42",
			"title": "Mug",
			"variants": {"edges": [{"node": {"id": "gid://shopify/ProductVariant/7", "price": "12.00"}}]},
			"images": {"edges": []}
		}
	}`}

	result, err := getProductByID(client).Execute(context.Background(), map[string]any{"productId": "42"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"id": "gid://shopify/Product/42"}, client.vars)

	out, ok := result.(map[string]any)
	require.True(t, ok)
	raw, err := json.Marshal(out["product"])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "gid://shopify/Product/42",
		"title": "Mug",
		"variants": [{"id": "gid://shopify/ProductVariant/7", "price": "12.00"}],
		"images": [],
		"collections": []
	}`, string(raw))
}

func TestGetProductByIDNotFound(t *testing.T) {
	client := &fakeClient{response: `{"product": null}`}

	_, err := getProductByID(client).Execute(context.Background(), map[string]any{"productId": "42"})
	require.Error(t, err)

	var be *domain.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "gid://shopify/Product/42")
}

func TestGetProductByIDAcceptsGID(t *testing.T) {
	client := &fakeClient{response: `{"product": {"id": "gid://shopify/Product/42", "title": "Mug"}}`}

	_, err := getProductByID(client).Execute(context.Background(), map[string]any{"productId": "gid://shopify/Product/42"})
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Product/42", client.vars["id"])
}

func TestGetProductsDefaultLimit(t *testing.T) {
	implicit := &fakeClient{response: `{"products": {"edges": []}}`}
	_, err := getProducts(implicit).Execute(context.Background(), map[string]any{})
	require.NoError(t, err)

	explicit := &fakeClient{response: `{"products": {"edges": []}}`}
	_, err = getProducts(explicit).Execute(context.Background(), map[string]any{"limit": float64(10)})
	require.NoError(t, err)

	assert.Equal(t, explicit.vars, implicit.vars)
	assert.Equal(t, 10, implicit.vars["first"])
}

func TestGetProductsTitleFilter(t *testing.T) {
	client := &fakeClient{response: `{"products": {"edges": []}}`}

	result, err := getProducts(client).Execute(context.Background(), map[string]any{"searchTitle": "mug"})
	require.NoError(t, err)

	assert.Equal(t, "title:*mug*", client.vars["query"])

	out := result.(map[string]any)
	raw, err := json.Marshal(out["products"])
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw), "empty list, not null")
}

func TestCreateProductBusinessError(t *testing.T) {
	client := &fakeClient{response: `{
		"productCreate": {
			"product": null,
			"userErrors": [{"field": ["input", "title"], "message": "Title has already been taken"}]
		}
	}`}

	_, err := createProduct(client).Execute(context.Background(), map[string]any{"title": "Mug"})
	require.Error(t, err)

	var be *domain.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Failed to create product: input.title: Title has already been taken", be.Message)
}

func TestCreateCustomerOmitsAbsentFields(t *testing.T) {
	client := &fakeClient{response: `{
		"customerCreate": {"customer": {"id": "gid://shopify/Customer/9", "email": "a@b.co"}, "userErrors": []}
	}`}

	_, err := createCustomer(client).Execute(context.Background(), map[string]any{"email": "a@b.co"})
	require.NoError(t, err)

	input, ok := client.vars["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"email": "a@b.co"}, input, "absent optionals stay absent, never null")
}

func TestUpdateCustomerQualifiesIDAndMerges(t *testing.T) {
	client := &fakeClient{response: `{
		"customerUpdate": {"customer": {"id": "gid://shopify/Customer/9"}, "userErrors": []}
	}`}

	_, err := updateCustomer(client).Execute(context.Background(), map[string]any{
		"id":        "9",
		"firstName": "Ada",
		"taxExempt": true,
	})
	require.NoError(t, err)

	input := client.vars["input"].(map[string]any)
	assert.Equal(t, map[string]any{
		"id":        "gid://shopify/Customer/9",
		"firstName": "Ada",
		"taxExempt": true,
	}, input)
}

func TestGetCustomerOrdersQuery(t *testing.T) {
	client := &fakeClient{response: `{"orders": {"edges": []}}`}

	_, err := getCustomerOrders(client).Execute(context.Background(), map[string]any{"customerId": "123"})
	require.NoError(t, err)

	assert.Equal(t, "customer_id:123", client.vars["query"])
	assert.Equal(t, 10, client.vars["first"])
}

func TestTransportErrorPassesThrough(t *testing.T) {
	transportErr := &domain.TransportError{Err: errors.New("connection refused")}
	client := &fakeClient{err: transportErr}

	_, err := getProducts(client).Execute(context.Background(), map[string]any{})
	require.Error(t, err)

	var te *domain.TransportError
	assert.ErrorAs(t, err, &te)
	var be *domain.BusinessError
	assert.False(t, errors.As(err, &be))
}

func TestAllRegistersEveryTool(t *testing.T) {
	regs := All(&fakeClient{}, Options{})

	names := make([]string, 0, len(regs))
	for _, r := range regs {
		names = append(names, r.Tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"get-products", "get-product-by-id", "create-product",
		"get-customers", "create-customer", "update-customer", "get-customer-orders",
		"get-orders", "get-order-by-id", "create-order", "update-order",
		"create-fulfillment",
		"create-collection",
		"create-metafield",
		"get-inventory-levels", "get-inventory-items", "get-locations",
		"adjust-inventory", "set-inventory-tracking",
		"connect-inventory-to-location", "disconnect-inventory-from-location",
	}, names)
}
