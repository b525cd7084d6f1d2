package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/storeops/shopify-admin-mcp/internal/adapter/outbound/shopify"
	"github.com/storeops/shopify-admin-mcp/internal/domain"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// Inventory returns the inventory and location tool registrations.
func Inventory(client shopify.Client, opts Options) []usecase.Registration {
	return []usecase.Registration{
		getInventoryLevels(client, opts),
		getInventoryItems(client),
		getLocations(client),
		adjustInventory(client),
		setInventoryTracking(client),
		connectInventoryToLocation(client),
		disconnectInventoryFromLocation(client),
	}
}

// crossLocationScan bounds how many active locations the unscoped
// inventory-level listing walks in its one round trip.
const crossLocationScan = 10

func getInventoryLevels(client shopify.Client, opts Options) usecase.Registration {
	tool := mcp.NewTool("get-inventory-levels",
		mcp.WithDescription("List inventory levels, for one location or across the first 10 active locations."),
		mcp.WithString("locationId",
			mcp.Description("Location id, bare numeric or gid form. Omit to list across locations."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of levels to return per location."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(250),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		first := intOr(args, "limit", 10)
		locationID, _ := stringArg(args, "locationId")
		if locationID == "" {
			locationID = opts.DefaultLocationID
		}

		if locationID != "" {
			vars := map[string]any{
				"locationId": domain.GID(domain.ResourceLocation, locationID),
				"first":      first,
			}
			var data shopify.GetInventoryLevelsAtLocationData
			if err := client.Execute(ctx, shopify.GetInventoryLevelsAtLocationQuery, vars, &data); err != nil {
				return nil, err
			}
			if data.Location == nil {
				return nil, domain.NotFoundError("get inventory levels", "location", vars["locationId"].(string))
			}
			return map[string]any{"inventoryLevels": flattenLevels(data.Location.InventoryLevels)}, nil
		}

		var data shopify.GetInventoryLevelsData
		vars := map[string]any{"first": first, "locations": crossLocationScan}
		if err := client.Execute(ctx, shopify.GetInventoryLevelsQuery, vars, &data); err != nil {
			return nil, err
		}
		levels := make([]shopify.FlatInventoryLevel, 0)
		for _, loc := range domain.UnwrapEdges(data.Locations) {
			levels = append(levels, flattenLevels(loc.InventoryLevels)...)
		}
		return map[string]any{"inventoryLevels": levels}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func flattenLevels(conn domain.Connection[shopify.InventoryLevel]) []shopify.FlatInventoryLevel {
	levels := domain.UnwrapEdges(conn)
	flat := make([]shopify.FlatInventoryLevel, 0, len(levels))
	for _, l := range levels {
		flat = append(flat, l.Flatten())
	}
	return flat
}

func getInventoryItems(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("get-inventory-items",
		mcp.WithDescription("List inventory items, optionally filtered by a search query."),
		mcp.WithString("query", mcp.Description("Search query, e.g. sku:ABC-123.")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(250),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		vars := map[string]any{"first": intOr(args, "limit", 10)}
		if q, ok := stringArg(args, "query"); ok && q != "" {
			vars["query"] = q
		}

		var data shopify.GetInventoryItemsData
		if err := client.Execute(ctx, shopify.GetInventoryItemsQuery, vars, &data); err != nil {
			return nil, err
		}
		return map[string]any{"inventoryItems": domain.UnwrapEdges(data.InventoryItems)}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func getLocations(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("get-locations",
		mcp.WithDescription("List store locations."),
		mcp.WithBoolean("includeInactive",
			mcp.Description("Include deactivated locations."),
			mcp.DefaultBool(false),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of locations to return."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(250),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		includeInactive, _ := boolArg(args, "includeInactive")
		vars := map[string]any{
			"first":           intOr(args, "limit", 10),
			"includeInactive": includeInactive,
		}

		var data shopify.GetLocationsData
		if err := client.Execute(ctx, shopify.GetLocationsQuery, vars, &data); err != nil {
			return nil, err
		}
		return map[string]any{"locations": domain.UnwrapEdges(data.Locations)}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func adjustInventory(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("adjust-inventory",
		mcp.WithDescription("Adjust the available quantity of an inventory item at a location by a signed delta."),
		mcp.WithString("inventoryItemId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Inventory item id, bare numeric or gid form."),
		),
		mcp.WithString("locationId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Location id, bare numeric or gid form."),
		),
		mcp.WithNumber("availableDelta",
			mcp.Required(),
			asInteger(),
			mcp.Description("Signed change to the available quantity. Zero is a no-op adjustment."),
		),
		mcp.WithString("reason",
			mcp.Description("Adjustment reason recorded in the ledger."),
			mcp.DefaultString("correction"),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		itemID, _ := stringArg(args, "inventoryItemId")
		locationID, _ := stringArg(args, "locationId")
		delta, ok := intArg(args, "availableDelta")
		if !ok {
			return nil, domain.NewValidationError("availableDelta", "must be an integer")
		}
		reason, ok := stringArg(args, "reason")
		if !ok || reason == "" {
			reason = "correction"
		}

		vars := map[string]any{
			"inventoryItemId": domain.GID(domain.ResourceInventoryItem, itemID),
			"locationId":      domain.GID(domain.ResourceLocation, locationID),
			"availableDelta":  delta,
			"reason":          reason,
		}

		var data shopify.InventoryAdjustData
		if err := client.Execute(ctx, shopify.InventoryAdjustMutation, vars, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("adjust inventory", data.InventoryAdjustQuantities.UserErrors); err != nil {
			return nil, err
		}
		group := data.InventoryAdjustQuantities.InventoryAdjustmentGroup
		if group == nil || len(group.Changes) == 0 {
			return nil, domain.EmptyPayloadError("adjust inventory")
		}
		change := group.Changes[0]
		return map[string]any{
			"delta":     change.Delta,
			"available": change.QuantityAfterChange,
		}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func setInventoryTracking(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("set-inventory-tracking",
		mcp.WithDescription("Enable or disable quantity tracking for an inventory item."),
		mcp.WithString("inventoryItemId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Inventory item id, bare numeric or gid form."),
		),
		mcp.WithBoolean("tracked",
			mcp.Required(),
			mcp.Description("Whether quantities are tracked for the item."),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		itemID, _ := stringArg(args, "inventoryItemId")
		tracked, ok := boolArg(args, "tracked")
		if !ok {
			return nil, domain.NewValidationError("tracked", "must be a boolean")
		}

		vars := map[string]any{
			"id":    domain.GID(domain.ResourceInventoryItem, itemID),
			"input": map[string]any{"tracked": tracked},
		}

		var data shopify.InventoryItemUpdateData
		if err := client.Execute(ctx, shopify.InventoryItemUpdateMutation, vars, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("set inventory tracking", data.InventoryItemUpdate.UserErrors); err != nil {
			return nil, err
		}
		if data.InventoryItemUpdate.InventoryItem == nil {
			return nil, domain.EmptyPayloadError("set inventory tracking")
		}
		return map[string]any{"inventoryItem": data.InventoryItemUpdate.InventoryItem}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func connectInventoryToLocation(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("connect-inventory-to-location",
		mcp.WithDescription("Start stocking an inventory item at a location with an absolute starting quantity."),
		mcp.WithString("inventoryItemId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Inventory item id, bare numeric or gid form."),
		),
		mcp.WithString("locationId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Location id, bare numeric or gid form."),
		),
		mcp.WithNumber("available",
			mcp.Required(),
			asInteger(),
			mcp.Min(0),
			mcp.Description("Absolute available quantity at activation."),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		itemID, _ := stringArg(args, "inventoryItemId")
		locationID, _ := stringArg(args, "locationId")
		available, ok := intArg(args, "available")
		if !ok || available < 0 {
			return nil, domain.NewValidationError("available", "must be a non-negative integer")
		}

		vars := map[string]any{
			"inventoryItemId": domain.GID(domain.ResourceInventoryItem, itemID),
			"locationId":      domain.GID(domain.ResourceLocation, locationID),
			"available":       available,
		}

		var data shopify.InventoryActivateData
		if err := client.Execute(ctx, shopify.InventoryActivateMutation, vars, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("connect inventory to location", data.InventoryActivate.UserErrors); err != nil {
			return nil, err
		}
		if data.InventoryActivate.InventoryLevel == nil {
			return nil, domain.EmptyPayloadError("connect inventory to location")
		}
		return map[string]any{"inventoryLevel": data.InventoryActivate.InventoryLevel.Flatten()}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func disconnectInventoryFromLocation(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("disconnect-inventory-from-location",
		mcp.WithDescription("Stop stocking an inventory item at a location by removing its inventory level."),
		mcp.WithString("inventoryLevelId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Inventory level id from get-inventory-levels, bare numeric or gid form."),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		levelID, _ := stringArg(args, "inventoryLevelId")
		vars := map[string]any{
			"inventoryLevelId": domain.GID(domain.ResourceInventoryLevel, levelID),
		}

		var data shopify.InventoryDeactivateData
		if err := client.Execute(ctx, shopify.InventoryDeactivateMutation, vars, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("disconnect inventory from location", data.InventoryDeactivate.UserErrors); err != nil {
			return nil, err
		}
		return map[string]any{"success": true}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}
