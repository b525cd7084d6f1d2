package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeops/shopify-admin-mcp/internal/domain"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

func TestCreateFulfillmentVariables(t *testing.T) {
	client := &fakeClient{response: `{
		"fulfillmentCreateV2": {
			"fulfillment": {"id": "gid://shopify/Fulfillment/55", "status": "SUCCESS"},
			"userErrors": []
		}
	}`}

	_, err := createFulfillment(client).Execute(context.Background(), map[string]any{
		"fulfillmentOrderId": "44",
		"notifyCustomer":     true,
		"trackingInfo":       map[string]any{"number": "1Z999", "company": "UPS"},
	})
	require.NoError(t, err)

	fulfillment := client.vars["fulfillment"].(map[string]any)
	assert.Equal(t, []map[string]any{
		{"fulfillmentOrderId": "gid://shopify/FulfillmentOrder/44"},
	}, fulfillment["lineItemsByFulfillmentOrder"])
	assert.Equal(t, true, fulfillment["notifyCustomer"])
	assert.Equal(t, map[string]any{"number": "1Z999", "company": "UPS"}, fulfillment["trackingInfo"])
}

func TestCreateCollectionMapsDescription(t *testing.T) {
	client := &fakeClient{response: `{
		"collectionCreate": {
			"collection": {"id": "gid://shopify/Collection/77", "title": "Summer"},
			"userErrors": []
		}
	}`}

	_, err := createCollection(client).Execute(context.Background(), map[string]any{
		"title":       "Summer",
		"description": "Warm weather picks",
		"sortOrder":   "MANUAL",
		"products":    []any{"1", "gid://shopify/Product/2"},
	})
	require.NoError(t, err)

	input := client.vars["input"].(map[string]any)
	assert.Equal(t, "Warm weather picks", input["descriptionHtml"])
	assert.NotContains(t, input, "description")
	assert.Equal(t, []string{"gid://shopify/Product/1", "gid://shopify/Product/2"}, input["products"])
}

func TestCreateMetafieldOwnerQualification(t *testing.T) {
	tests := []struct {
		ownerType string
		want      string
	}{
		{ownerType: "", want: "gid://shopify/Product/5"},
		{ownerType: "PRODUCT", want: "gid://shopify/Product/5"},
		{ownerType: "CUSTOMER", want: "gid://shopify/Customer/5"},
		{ownerType: "ORDER", want: "gid://shopify/Order/5"},
		{ownerType: "COLLECTION", want: "gid://shopify/Collection/5"},
		{ownerType: "VARIANT", want: "gid://shopify/ProductVariant/5"},
	}
	for _, tt := range tests {
		t.Run("ownerType "+tt.ownerType, func(t *testing.T) {
			client := &fakeClient{response: `{
				"metafieldsSet": {"metafields": [{"id": "gid://shopify/Metafield/1"}], "userErrors": []}
			}`}

			args := map[string]any{
				"ownerId":   "5",
				"namespace": "custom",
				"key":       "fit",
				"value":     "slim",
				"type":      "single_line_text_field",
			}
			if tt.ownerType != "" {
				args["ownerType"] = tt.ownerType
			}

			_, err := createMetafield(client).Execute(context.Background(), args)
			require.NoError(t, err)

			metafields := client.vars["metafields"].([]map[string]any)
			require.Len(t, metafields, 1)
			assert.Equal(t, tt.want, metafields[0]["ownerId"])
		})
	}
}

func TestEmptyMutationPayload(t *testing.T) {
	tests := []struct {
		name     string
		reg      usecase.Registration
		args     map[string]any
		response string
	}{
		{
			name:     "create product",
			reg:      createProduct(&fakeClient{response: `{"productCreate": {"product": null, "userErrors": []}}`}),
			args:     map[string]any{"title": "Mug"},
			response: "Failed to create product",
		},
		{
			name:     "create metafield",
			reg:      createMetafield(&fakeClient{response: `{"metafieldsSet": {"metafields": [], "userErrors": []}}`}),
			args:     map[string]any{"ownerId": "5", "namespace": "c", "key": "k", "value": "v", "type": "json"},
			response: "Failed to create metafield",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.reg.Execute(context.Background(), tt.args)
			require.Error(t, err)
			var be *domain.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Contains(t, err.Error(), tt.response)
		})
	}
}
