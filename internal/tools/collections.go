package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/storeops/shopify-admin-mcp/internal/adapter/outbound/shopify"
	"github.com/storeops/shopify-admin-mcp/internal/domain"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// Collections returns the collection tool registrations.
func Collections(client shopify.Client) []usecase.Registration {
	return []usecase.Registration{createCollection(client)}
}

func createCollection(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("create-collection",
		mcp.WithDescription("Create a manual or rule-based product collection."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Collection title."),
		),
		mcp.WithString("description", mcp.Description("Collection description, stored as HTML.")),
		mcp.WithString("sortOrder",
			mcp.Description("Product sort order within the collection."),
			mcp.Enum("ALPHA_ASC", "ALPHA_DESC", "BEST_SELLING", "CREATED", "CREATED_DESC", "MANUAL", "PRICE_ASC", "PRICE_DESC"),
			mcp.DefaultString("BEST_SELLING"),
		),
		mcp.WithArray("products",
			mcp.Description("Product ids to add, bare numeric or gid form. Manual collections only."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithObject("ruleSet",
			mcp.Description("Smart-collection membership rules. Mutually exclusive with products."),
			mcp.Properties(map[string]any{
				"appliedDisjunctively": map[string]any{
					"type":        "boolean",
					"description": "True when any rule may match, false when all must.",
				},
				"rules": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":     "object",
						"required": []string{"column", "relation", "condition"},
						"properties": map[string]any{
							"column":    stringSchema("Product attribute the rule inspects, e.g. TAG, TITLE, VENDOR."),
							"relation":  stringSchema("Comparison, e.g. EQUALS, CONTAINS, GREATER_THAN."),
							"condition": stringSchema("Value to compare against."),
						},
					},
				},
			}),
			withRequired("appliedDisjunctively", "rules"),
		),
		mcp.WithObject("seo",
			mcp.Description("Search-engine listing overrides."),
			mcp.Properties(map[string]any{
				"title":       stringSchema("SEO title."),
				"description": stringSchema("SEO description."),
			}),
		),
		mcp.WithObject("image",
			mcp.Description("Collection image."),
			mcp.Properties(map[string]any{
				"src":     stringSchema("Image source URL."),
				"altText": stringSchema("Alternative text."),
			}),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		title, _ := stringArg(args, "title")
		input := map[string]any{"title": title}
		setStringAs(input, args, "description", "descriptionHtml")
		setString(input, args, "sortOrder")
		setMap(input, args, "ruleSet")
		setMap(input, args, "seo")
		setMap(input, args, "image")
		if ids, ok := stringsArg(args, "products"); ok {
			qualified := make([]string, 0, len(ids))
			for _, id := range ids {
				qualified = append(qualified, domain.GID(domain.ResourceProduct, id))
			}
			input["products"] = qualified
		}

		var data shopify.CollectionCreateData
		if err := client.Execute(ctx, shopify.CollectionCreateMutation, map[string]any{"input": input}, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("create collection", data.CollectionCreate.UserErrors); err != nil {
			return nil, err
		}
		if data.CollectionCreate.Collection == nil {
			return nil, domain.EmptyPayloadError("create collection")
		}
		return map[string]any{"collection": data.CollectionCreate.Collection}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}
