package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/storeops/shopify-admin-mcp/internal/adapter/outbound/shopify"
	"github.com/storeops/shopify-admin-mcp/internal/domain"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// numericIDPattern restricts lookups that the search syntax requires to be
// bare numeric ids, not gids.
const numericIDPattern = `^\d+$`

// Customers returns the customer tool registrations.
func Customers(client shopify.Client) []usecase.Registration {
	return []usecase.Registration{
		getCustomers(client),
		createCustomer(client),
		updateCustomer(client),
		getCustomerOrders(client),
	}
}

func getCustomers(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("get-customers",
		mcp.WithDescription("Search customers by name, email or phone."),
		mcp.WithString("searchQuery",
			mcp.Description("Free-text search, e.g. an email address or name."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of customers to return."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(250),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		vars := map[string]any{"first": intOr(args, "limit", 10)}
		if q, ok := stringArg(args, "searchQuery"); ok && q != "" {
			vars["query"] = q
		}

		var data shopify.GetCustomersData
		if err := client.Execute(ctx, shopify.GetCustomersQuery, vars, &data); err != nil {
			return nil, err
		}
		return map[string]any{"customers": domain.UnwrapEdges(data.Customers)}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

// customerFieldOptions are the optional fields shared by create and update.
func customerFieldOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("firstName", mcp.Description("First name.")),
		mcp.WithString("lastName", mcp.Description("Last name.")),
		mcp.WithString("phone", mcp.Description("Phone number in E.164 form.")),
		mcp.WithString("note", mcp.Description("Staff-facing note.")),
		mcp.WithBoolean("taxExempt", mcp.Description("Whether the customer is exempt from taxes.")),
		mcp.WithArray("tags",
			mcp.Description("Tags to apply."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	}
}

// mergeCustomerFields applies the shared optional fields onto a mutation
// input by conditional merge.
func mergeCustomerFields(input, args map[string]any) {
	setString(input, args, "firstName")
	setString(input, args, "lastName")
	setString(input, args, "phone")
	setString(input, args, "note")
	setBool(input, args, "taxExempt")
	setStrings(input, args, "tags")
}

func createCustomer(client shopify.Client) usecase.Registration {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Create a customer."),
		mcp.WithString("email",
			mcp.Required(),
			withFormat("email"),
			mcp.Description("Customer email address."),
		),
	}
	opts = append(opts, customerFieldOptions()...)
	tool := mcp.NewTool("create-customer", opts...)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		email, _ := stringArg(args, "email")
		input := map[string]any{"email": email}
		mergeCustomerFields(input, args)

		var data shopify.CustomerCreateData
		if err := client.Execute(ctx, shopify.CustomerCreateMutation, map[string]any{"input": input}, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("create customer", data.CustomerCreate.UserErrors); err != nil {
			return nil, err
		}
		if data.CustomerCreate.Customer == nil {
			return nil, domain.EmptyPayloadError("create customer")
		}
		return map[string]any{"customer": data.CustomerCreate.Customer}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func updateCustomer(client shopify.Client) usecase.Registration {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Update an existing customer. Only supplied fields change."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Pattern(numericIDPattern),
			mcp.Description("Numeric customer id."),
		),
		mcp.WithString("email", withFormat("email"), mcp.Description("New email address.")),
		withRawProperty("metafields", false, map[string]any{
			"type":        "array",
			"description": "Metafields to set on the customer.",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"value"},
				"properties": map[string]any{
					"id":        stringSchema("Existing metafield id, to update in place."),
					"namespace": stringSchema("Metafield namespace."),
					"key":       stringSchema("Metafield key."),
					"value":     stringSchema("Metafield value."),
					"type":      stringSchema("Metafield type, e.g. single_line_text_field."),
				},
			},
		}),
	}
	opts = append(opts, customerFieldOptions()...)
	tool := mcp.NewTool("update-customer", opts...)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		rawID, _ := stringArg(args, "id")
		input := map[string]any{"id": domain.GID(domain.ResourceCustomer, rawID)}
		setString(input, args, "email")
		mergeCustomerFields(input, args)
		if metafields, ok := args["metafields"].([]any); ok {
			input["metafields"] = metafields
		}

		var data shopify.CustomerUpdateData
		if err := client.Execute(ctx, shopify.CustomerUpdateMutation, map[string]any{"input": input}, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("update customer", data.CustomerUpdate.UserErrors); err != nil {
			return nil, err
		}
		if data.CustomerUpdate.Customer == nil {
			return nil, domain.EmptyPayloadError("update customer")
		}
		return map[string]any{"customer": data.CustomerUpdate.Customer}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func getCustomerOrders(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("get-customer-orders",
		mcp.WithDescription("List the orders placed by one customer."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Pattern(numericIDPattern),
			mcp.Description("Numeric customer id."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of orders to return."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(250),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		customerID, _ := stringArg(args, "customerId")
		vars := map[string]any{
			"first": intOr(args, "limit", 10),
			"query": searchQuery("customer_id:" + customerID),
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
