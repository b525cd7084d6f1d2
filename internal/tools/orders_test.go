package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeops/shopify-admin-mcp/internal/domain"
)

const orderCreatedResponse = `{
	"orderCreate": {
		"order": {"id": "gid://shopify/Order/1001", "name": "#1001", "lineItems": {"edges": []}},
		"userErrors": []
	}
}`

func TestNormalizeLineItems(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []map[string]any
	}{
		{
			name: "decoded array",
			raw: []any{
				map[string]any{"variantId": "7", "quantity": float64(2)},
			},
			want: []map[string]any{
				{"variantId": "gid://shopify/ProductVariant/7", "quantity": 2},
			},
		},
		{
			name: "json encoded string",
			raw:  `[{"variantId": "7", "quantity": 2}, {"variantId": "gid://shopify/ProductVariant/8", "quantity": 1}]`,
			want: []map[string]any{
				{"variantId": "gid://shopify/ProductVariant/7", "quantity": 2},
				{"variantId": "gid://shopify/ProductVariant/8", "quantity": 1},
			},
		},
		{
			name: "single object wrapped",
			raw:  map[string]any{"variantId": "7", "quantity": float64(1)},
			want: []map[string]any{
				{"variantId": "gid://shopify/ProductVariant/7", "quantity": 1},
			},
		},
		{
			name: "json encoded single object",
			raw:  `{"variantId": "7", "quantity": 3}`,
			want: []map[string]any{
				{"variantId": "gid://shopify/ProductVariant/7", "quantity": 3},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeLineItems(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeLineItemsRejects(t *testing.T) {
	tests := []struct {
		name  string
		raw   any
		field string
	}{
		{name: "invalid json string", raw: `not json`, field: "lineItems"},
		{name: "wrong kind", raw: 42, field: "lineItems"},
		{name: "empty array", raw: []any{}, field: "lineItems"},
		{name: "non object item", raw: []any{"x"}, field: "lineItems.0"},
		{name: "missing variant id", raw: []any{map[string]any{"quantity": float64(1)}}, field: "lineItems.0.variantId"},
		{name: "zero quantity", raw: []any{map[string]any{"variantId": "7", "quantity": float64(0)}}, field: "lineItems.0.quantity"},
		{name: "fractional quantity", raw: []any{map[string]any{"variantId": "7", "quantity": 1.5}}, field: "lineItems.0.quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeLineItems(tt.raw)
			require.Error(t, err)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCreateOrderFromJSONString(t *testing.T) {
	client := &fakeClient{response: orderCreatedResponse}

	_, err := createOrder(client).Execute(context.Background(), map[string]any{
		"lineItems": `[{"variantId": "7", "quantity": 2}]`,
		"email":     "a@b.co",
	})
	require.NoError(t, err)

	order := client.vars["order"].(map[string]any)
	assert.Equal(t, []map[string]any{
		{"variantId": "gid://shopify/ProductVariant/7", "quantity": 2},
	}, order["lineItems"])
	assert.Equal(t, "a@b.co", order["email"])
	assert.NotContains(t, order, "note")
	assert.NotContains(t, order, "shippingAddress")
}

func TestGetOrdersStatusFilters(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want any
	}{
		{name: "any status omits query", args: map[string]any{"status": "any"}, want: nil},
		{name: "open status", args: map[string]any{"status": "open"}, want: "status:open"},
		{
			name: "status and financial status conjoined",
			args: map[string]any{"status": "closed", "financialStatus": "paid"},
			want: "status:closed AND financial_status:paid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: `{"orders": {"edges": []}}`}
			_, err := getOrders(client).Execute(context.Background(), tt.args)
			require.NoError(t, err)
			if tt.want == nil {
				assert.NotContains(t, client.vars, "query")
			} else {
				assert.Equal(t, tt.want, client.vars["query"])
			}
		})
	}
}

func TestUpdateOrderOmitsAbsentFields(t *testing.T) {
	client := &fakeClient{response: `{
		"orderUpdate": {"order": {"id": "gid://shopify/Order/1001"}, "userErrors": []}
	}`}

	_, err := updateOrder(client).Execute(context.Background(), map[string]any{
		"id":   "1001",
		"note": "rush delivery",
	})
	require.NoError(t, err)

	input := client.vars["input"].(map[string]any)
	assert.Equal(t, map[string]any{
		"id":   "gid://shopify/Order/1001",
		"note": "rush delivery",
	}, input)
}

func TestCreateOrderUserErrorShortCircuits(t *testing.T) {
	client := &fakeClient{response: `{
		"orderCreate": {
			"order": null,
			"userErrors": [{"field": ["order", "lineItems", "0", "variantId"], "message": "Variant does not exist"}]
		}
	}`}

	_, err := createOrder(client).Execute(context.Background(), map[string]any{
		"lineItems": []any{map[string]any{"variantId": "7", "quantity": float64(1)}},
	})
	require.Error(t, err)

	var be *domain.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Failed to create order: order.lineItems.0.variantId: Variant does not exist", be.Message)
	assert.Contains(t, err.Error(), "check that the variant id exists")
}
