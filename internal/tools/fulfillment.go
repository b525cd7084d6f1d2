package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/storeops/shopify-admin-mcp/internal/adapter/outbound/shopify"
	"github.com/storeops/shopify-admin-mcp/internal/domain"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// Fulfillments returns the fulfillment tool registrations.
func Fulfillments(client shopify.Client) []usecase.Registration {
	return []usecase.Registration{createFulfillment(client)}
}

func createFulfillment(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("create-fulfillment",
		mcp.WithDescription("Fulfill an open fulfillment order, optionally with tracking."),
		mcp.WithString("fulfillmentOrderId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Fulfillment order id from get-order-by-id, bare numeric or gid form."),
		),
		mcp.WithBoolean("notifyCustomer",
			mcp.Description("Send the shipment notification to the customer."),
			mcp.DefaultBool(true),
		),
		mcp.WithObject("trackingInfo",
			mcp.Description("Carrier tracking details."),
			mcp.Properties(map[string]any{
				"number":  stringSchema("Tracking number."),
				"company": stringSchema("Carrier name."),
				"url": map[string]any{
					"type":        "string",
					"format":      "uri",
					"description": "Tracking page URL.",
				},
			}),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		rawID, _ := stringArg(args, "fulfillmentOrderId")
		fulfillment := map[string]any{
			"lineItemsByFulfillmentOrder": []map[string]any{
				{"fulfillmentOrderId": domain.GID(domain.ResourceFulfillmentOrder, rawID)},
			},
		}
		setBool(fulfillment, args, "notifyCustomer")
		setMap(fulfillment, args, "trackingInfo")

		var data shopify.FulfillmentCreateData
		if err := client.Execute(ctx, shopify.FulfillmentCreateMutation, map[string]any{"fulfillment": fulfillment}, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("create fulfillment", data.FulfillmentCreateV2.UserErrors); err != nil {
			return nil, err
		}
		if data.FulfillmentCreateV2.Fulfillment == nil {
			return nil, domain.EmptyPayloadError("create fulfillment")
		}
		return map[string]any{"fulfillment": data.FulfillmentCreateV2.Fulfillment}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}
