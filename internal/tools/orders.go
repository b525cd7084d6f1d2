package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/storeops/shopify-admin-mcp/internal/adapter/outbound/shopify"
	"github.com/storeops/shopify-admin-mcp/internal/domain"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// Orders returns the order tool registrations.
func Orders(client shopify.Client) []usecase.Registration {
	return []usecase.Registration{
		getOrders(client),
		getOrderByID(client),
		createOrder(client),
		updateOrder(client),
	}
}

// shippingAddressSchema is shared between order creation and update.
func shippingAddressSchema() mcp.PropertyOption {
	return mcp.Properties(map[string]any{
		"firstName": stringSchema("Recipient first name."),
		"lastName":  stringSchema("Recipient last name."),
		"address1":  stringSchema("Street address."),
		"address2":  stringSchema("Apartment, suite, etc."),
		"city":      stringSchema("City."),
		"province":  stringSchema("Province or state."),
		"country":   stringSchema("Country."),
		"zip":       stringSchema("Postal code."),
		"phone":     stringSchema("Contact phone number."),
	})
}

func getOrders(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("get-orders",
		mcp.WithDescription("List orders, optionally filtered by status."),
		mcp.WithString("status",
			mcp.Description("Order status filter."),
			mcp.Enum("any", "open", "closed", "cancelled"),
			mcp.DefaultString("any"),
		),
		mcp.WithString("financialStatus",
			mcp.Description("Financial status filter."),
			mcp.Enum("paid", "pending", "refunded", "voided", "authorized"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of orders to return."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(250),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		var clauses []string
		if status, ok := stringArg(args, "status"); ok && status != "" && status != "any" {
			clauses = append(clauses, "status:"+status)
		}
		if fs, ok := stringArg(args, "financialStatus"); ok && fs != "" {
			clauses = append(clauses, "financial_status:"+fs)
		}

		vars := map[string]any{"first": intOr(args, "limit", 10)}
		if q := searchQuery(clauses...); q != "" {
			vars["query"] = q
		}

		var data shopify.GetOrdersData
		if err := client.Execute(ctx, shopify.GetOrdersQuery, vars, &data); err != nil {
			return nil, err
		}

		orders := domain.UnwrapEdges(data.Orders)
		flat := make([]shopify.FlatOrder, 0, len(orders))
		for _, o := range orders {
			flat = append(flat, o.Flatten())
		}
		return map[string]any{"orders": flat}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func getOrderByID(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("get-order-by-id",
		mcp.WithDescription("Fetch a single order with line items and fulfillment orders."),
		mcp.WithString("orderId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Order id, bare numeric or gid form."),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		rawID, _ := stringArg(args, "orderId")
		id := domain.GID(domain.ResourceOrder, rawID)

		var data shopify.GetOrderData
		if err := client.Execute(ctx, shopify.GetOrderByIDQuery, map[string]any{"id": id}, &data); err != nil {
			return nil, err
		}
		if data.Order == nil {
			return nil, domain.NotFoundError("get order by id", "order", id)
		}
		return map[string]any{"order": data.Order.Flatten()}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

// lineItemSchema is the per-item shape of createOrder's lineItems.
var lineItemSchema = map[string]any{
	"type":     "object",
	"required": []string{"variantId", "quantity"},
	"properties": map[string]any{
		"variantId": stringSchema("Product variant id, bare numeric or gid form."),
		"quantity": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Quantity to order, at least 1.",
		},
	},
}

func createOrder(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("create-order",
		mcp.WithDescription("Create an order from variant line items."),
		withRawProperty("lineItems", true, map[string]any{
			"description": "Line items, as an array or a JSON-encoded string of the same shape.",
			"oneOf": []any{
				map[string]any{"type": "array", "items": lineItemSchema, "minItems": 1},
				map[string]any{"type": "string", "minLength": 1},
			},
		}),
		mcp.WithString("email", withFormat("email"), mcp.Description("Customer email for the order.")),
		mcp.WithString("note", mcp.Description("Order note.")),
		mcp.WithString("financialStatus",
			mcp.Description("Initial financial status."),
			mcp.Enum("PAID", "PENDING", "REFUNDED", "VOIDED"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags to apply."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithObject("shippingAddress",
			mcp.Description("Shipping address."),
			shippingAddressSchema(),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		lineItems, err := normalizeLineItems(args["lineItems"])
		if err != nil {
			return nil, err
		}

		order := map[string]any{"lineItems": lineItems}
		setString(order, args, "email")
		setString(order, args, "note")
		setString(order, args, "financialStatus")
		setStrings(order, args, "tags")
		setMap(order, args, "shippingAddress")

		var data shopify.OrderCreateData
		if err := client.Execute(ctx, shopify.OrderCreateMutation, map[string]any{"order": order}, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("create order", data.OrderCreate.UserErrors); err != nil {
			return nil, err
		}
		if data.OrderCreate.Order == nil {
			return nil, domain.EmptyPayloadError("create order")
		}
		return map[string]any{"order": data.OrderCreate.Order.Flatten()}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

// normalizeLineItems accepts line items as a decoded array, a single decoded
// object, or a JSON-encoded string of either, and returns a validated list
// with variant ids qualified. A single object is wrapped into a one-element
// list before per-item validation runs.
func normalizeLineItems(raw any) ([]map[string]any, error) {
	if s, ok := raw.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, domain.NewValidationError("lineItems", "must be valid JSON")
		}
		raw = decoded
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, domain.NewValidationError("lineItems", "must be an array of line items")
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("lineItems", "must contain at least one line item")
	}

	out := make([]map[string]any, 0, len(items))
	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			return nil, domain.NewValidationError(fmt.Sprintf("lineItems.%d", i), "must be an object")
		}
		variantID, ok := stringArg(item, "variantId")
		if !ok || variantID == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("lineItems.%d.variantId", i), "is required")
		}
		quantity, ok := intArg(item, "quantity")
		if !ok || quantity < 1 {
			return nil, domain.NewValidationError(fmt.Sprintf("lineItems.%d.quantity", i), "must be a positive integer")
		}
		out = append(out, map[string]any{
			"variantId": domain.GID(domain.ResourceProductVariant, variantID),
			"quantity":  quantity,
		})
	}
	return out, nil
}

func updateOrder(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("update-order",
		mcp.WithDescription("Update an existing order. Only supplied fields change."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Order id, bare numeric or gid form."),
		),
		mcp.WithString("email", withFormat("email"), mcp.Description("New contact email.")),
		mcp.WithString("note", mcp.Description("New order note.")),
		mcp.WithArray("tags",
			mcp.Description("Replacement tag list."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithObject("shippingAddress",
			mcp.Description("Replacement shipping address."),
			shippingAddressSchema(),
		),
		mcp.WithArray("customAttributes",
			mcp.Description("Custom key/value attributes."),
			mcp.Items(map[string]any{
				"type":     "object",
				"required": []string{"key", "value"},
				"properties": map[string]any{
					"key":   stringSchema("Attribute name."),
					"value": stringSchema("Attribute value."),
				},
			}),
		),
		withRawProperty("metafields", false, map[string]any{
			"type":        "array",
			"description": "Metafields to set on the order.",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"value"},
				"properties": map[string]any{
					"id":        stringSchema("Existing metafield id, to update in place."),
					"namespace": stringSchema("Metafield namespace."),
					"key":       stringSchema("Metafield key."),
					"value":     stringSchema("Metafield value."),
					"type":      stringSchema("Metafield type."),
				},
			},
		}),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		rawID, _ := stringArg(args, "id")
		input := map[string]any{"id": domain.GID(domain.ResourceOrder, rawID)}
		setString(input, args, "email")
		setString(input, args, "note")
		setStrings(input, args, "tags")
		setMap(input, args, "shippingAddress")
		if attrs, ok := args["customAttributes"].([]any); ok {
			input["customAttributes"] = attrs
		}
		if metafields, ok := args["metafields"].([]any); ok {
			input["metafields"] = metafields
		}

		var data shopify.OrderUpdateData
		if err := client.Execute(ctx, shopify.OrderUpdateMutation, map[string]any{"input": input}, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("update order", data.OrderUpdate.UserErrors); err != nil {
			return nil, err
		}
		if data.OrderUpdate.Order == nil {
			return nil, domain.EmptyPayloadError("update order")
		}
		return map[string]any{"order": data.OrderUpdate.Order.Flatten()}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}
