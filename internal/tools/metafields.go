package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/storeops/shopify-admin-mcp/internal/adapter/outbound/shopify"
	"github.com/storeops/shopify-admin-mcp/internal/domain"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// Metafields returns the metafield tool registrations.
func Metafields(client shopify.Client) []usecase.Registration {
	return []usecase.Registration{createMetafield(client)}
}

// ownerResources maps the tool's ownerType enum to the gid resource used to
// qualify a bare ownerId.
var ownerResources = map[string]domain.ResourceType{
	"PRODUCT":    domain.ResourceProduct,
	"CUSTOMER":   domain.ResourceCustomer,
	"ORDER":      domain.ResourceOrder,
	"COLLECTION": domain.ResourceCollection,
	"VARIANT":    domain.ResourceProductVariant,
}

func createMetafield(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("create-metafield",
		mcp.WithDescription("Set a metafield on a product, customer, order, collection, or variant."),
		mcp.WithString("ownerId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Owning resource id, bare numeric or gid form."),
		),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Metafield namespace."),
		),
		mcp.WithString("key",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Metafield key."),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Metafield value, serialized per its type."),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Metafield type, e.g. single_line_text_field, number_integer, json."),
		),
		mcp.WithString("ownerType",
			mcp.Description("Kind of resource ownerId names."),
			mcp.Enum("PRODUCT", "CUSTOMER", "ORDER", "COLLECTION", "VARIANT"),
			mcp.DefaultString("PRODUCT"),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		ownerType, ok := stringArg(args, "ownerType")
		if !ok || ownerType == "" {
			ownerType = "PRODUCT"
		}
		resource, ok := ownerResources[ownerType]
		if !ok {
			return nil, domain.NewValidationError("ownerType", "must be one of PRODUCT, CUSTOMER, ORDER, COLLECTION, VARIANT")
		}

		ownerID, _ := stringArg(args, "ownerId")
		metafield := map[string]any{"ownerId": domain.GID(resource, ownerID)}
		setString(metafield, args, "namespace")
		setString(metafield, args, "key")
		setString(metafield, args, "value")
		setString(metafield, args, "type")

		vars := map[string]any{"metafields": []map[string]any{metafield}}
		var data shopify.MetafieldsSetData
		if err := client.Execute(ctx, shopify.MetafieldsSetMutation, vars, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("create metafield", data.MetafieldsSet.UserErrors); err != nil {
			return nil, err
		}
		if len(data.MetafieldsSet.Metafields) == 0 {
			return nil, domain.EmptyPayloadError("create metafield")
		}
		return map[string]any{"metafield": data.MetafieldsSet.Metafields[0]}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}
