package domain

import "strings"

// ResourceType names a Shopify Admin resource as it appears in a global id.
type ResourceType string

const (
	ResourceProduct          ResourceType = "Product"
	ResourceProductVariant   ResourceType = "ProductVariant"
	ResourceCustomer         ResourceType = "Customer"
	ResourceOrder            ResourceType = "Order"
	ResourceCollection       ResourceType = "Collection"
	ResourceInventoryItem    ResourceType = "InventoryItem"
	ResourceInventoryLevel   ResourceType = "InventoryLevel"
	ResourceLocation         ResourceType = "Location"
	ResourceFulfillmentOrder ResourceType = "FulfillmentOrder"
)

// gidPrefix is the scheme prefix of a Shopify global id,
// e.g. "gid://shopify/Product/123".
const gidPrefix = "gid://"

// GID qualifies a loosely specified identifier into Shopify's global-id form.
// Identifiers that are already global ids are returned unchanged, so the
// function is idempotent. Empty ids are a caller error and must be rejected
// by input validation before reaching a network call; GID itself stays pure.
func GID(resource ResourceType, id string) string {
	if strings.HasPrefix(id, gidPrefix) {
		return id
	}
	return gidPrefix + "shopify/" + string(resource) + "/" + id
}

// GIDToken returns the trailing token of a global id, i.e. the substring
// after the last path separator. A bare token is returned as-is.
func GIDToken(globalID string) string {
	if idx := strings.LastIndex(globalID, "/"); idx >= 0 {
		return globalID[idx+1:]
	}
	return globalID
}
