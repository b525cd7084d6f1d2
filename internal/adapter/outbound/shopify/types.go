package shopify

import (
	"github.com/storeops/shopify-admin-mcp/internal/domain"
)

// Wire shapes for the Admin GraphQL API, one response struct per operation.
// Every operation decodes into its own ...Data struct right after the
// network call so flattening never works on untyped maps.

type Money struct {
	Amount       string `json:"amount,omitempty"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

type MoneyBag struct {
	ShopMoney Money `json:"shopMoney,omitempty"`
}

type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type Image struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url,omitempty"`
	AltText string `json:"altText,omitempty"`
}

type Variant struct {
	ID                string            `json:"id,omitempty"`
	Title             string            `json:"title,omitempty"`
	Price             string            `json:"price,omitempty"`
	SKU               string            `json:"sku,omitempty"`
	AvailableForSale  bool              `json:"availableForSale,omitempty"`
	InventoryQuantity int               `json:"inventoryQuantity,omitempty"`
	InventoryItem     *InventoryItemRef `json:"inventoryItem,omitempty"`
}

// Node references. Each carries the global id plus the lightweight fields
// the fragments select alongside it for that context.

type VariantRef struct {
	ID string `json:"id,omitempty"`
}

type CustomerRef struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

type CollectionRef struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
}

type FulfillmentOrderRef struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
}

type InventoryItemRef struct {
	ID  string `json:"id,omitempty"`
	SKU string `json:"sku,omitempty"`
}

type LocationRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Product struct {
	ID              string                           `json:"id,omitempty"`
	Title           string                           `json:"title,omitempty"`
	DescriptionHTML string                           `json:"descriptionHtml,omitempty"`
	Vendor          string                           `json:"vendor,omitempty"`
	ProductType     string                           `json:"productType,omitempty"`
	Status          string                           `json:"status,omitempty"`
	Tags            []string                         `json:"tags,omitempty"`
	CreatedAt       string                           `json:"createdAt,omitempty"`
	Variants        domain.Connection[Variant]       `json:"variants,omitempty"`
	Images          domain.Connection[Image]         `json:"images,omitempty"`
	Collections     domain.Connection[CollectionRef] `json:"collections,omitempty"`
}

// FlatProduct is the caller-facing product shape with connections stripped.
type FlatProduct struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	DescriptionHTML string          `json:"descriptionHtml,omitempty"`
	Vendor          string          `json:"vendor,omitempty"`
	ProductType     string          `json:"productType,omitempty"`
	Status          string          `json:"status,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	Variants        []Variant       `json:"variants"`
	Images          []Image         `json:"images"`
	Collections     []CollectionRef `json:"collections"`
}

func (p Product) Flatten() FlatProduct {
	return FlatProduct{
		ID:              p.ID,
		Title:           p.Title,
		DescriptionHTML: p.DescriptionHTML,
		Vendor:          p.Vendor,
		ProductType:     p.ProductType,
		Status:          p.Status,
		Tags:            p.Tags,
		CreatedAt:       p.CreatedAt,
		Variants:        domain.UnwrapEdges(p.Variants),
		Images:          domain.UnwrapEdges(p.Images),
		Collections:     domain.UnwrapEdges(p.Collections),
	}
}

type Address struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address1  string `json:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city,omitempty"`
	Province  string `json:"province,omitempty"`
	Country   string `json:"country,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type Customer struct {
	ID             string   `json:"id,omitempty"`
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Note           string   `json:"note,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	TaxExempt      bool     `json:"taxExempt,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	DefaultAddress *Address `json:"defaultAddress,omitempty"`
}

type LineItem struct {
	ID       string      `json:"id,omitempty"`
	Title    string      `json:"title,omitempty"`
	Quantity int         `json:"quantity,omitempty"`
	SKU      string      `json:"sku,omitempty"`
	Variant  *VariantRef `json:"variant,omitempty"`
}

type Order struct {
	ID                       string                                 `json:"id,omitempty"`
	Name                     string                                 `json:"name,omitempty"`
	Email                    string                                 `json:"email,omitempty"`
	Note                     string                                 `json:"note,omitempty"`
	Tags                     []string                               `json:"tags,omitempty"`
	CreatedAt                string                                 `json:"createdAt,omitempty"`
	DisplayFinancialStatus   string                                 `json:"displayFinancialStatus,omitempty"`
	DisplayFulfillmentStatus string                                 `json:"displayFulfillmentStatus,omitempty"`
	TotalPriceSet            MoneyBag                               `json:"totalPriceSet,omitempty"`
	Customer                 *CustomerRef                           `json:"customer,omitempty"`
	ShippingAddress          *Address                               `json:"shippingAddress,omitempty"`
	LineItems                domain.Connection[LineItem]            `json:"lineItems,omitempty"`
	FulfillmentOrders        domain.Connection[FulfillmentOrderRef] `json:"fulfillmentOrders,omitempty"`
}

// FlatOrder is the caller-facing order shape with connections stripped.
type FlatOrder struct {
	ID                       string                `json:"id"`
	Name                     string                `json:"name,omitempty"`
	Email                    string                `json:"email,omitempty"`
	Note                     string                `json:"note,omitempty"`
	Tags                     []string              `json:"tags,omitempty"`
	CreatedAt                string                `json:"createdAt,omitempty"`
	DisplayFinancialStatus   string                `json:"displayFinancialStatus,omitempty"`
	DisplayFulfillmentStatus string                `json:"displayFulfillmentStatus,omitempty"`
	TotalPrice               Money                 `json:"totalPrice,omitempty"`
	Customer                 *CustomerRef          `json:"customer,omitempty"`
	ShippingAddress          *Address              `json:"shippingAddress,omitempty"`
	LineItems                []LineItem            `json:"lineItems"`
	FulfillmentOrders        []FulfillmentOrderRef `json:"fulfillmentOrders"`
}

func (o Order) Flatten() FlatOrder {
	return FlatOrder{
		ID:                       o.ID,
		Name:                     o.Name,
		Email:                    o.Email,
		Note:                     o.Note,
		Tags:                     o.Tags,
		CreatedAt:                o.CreatedAt,
		DisplayFinancialStatus:   o.DisplayFinancialStatus,
		DisplayFulfillmentStatus: o.DisplayFulfillmentStatus,
		TotalPrice:               o.TotalPriceSet.ShopMoney,
		Customer:                 o.Customer,
		ShippingAddress:          o.ShippingAddress,
		LineItems:                domain.UnwrapEdges(o.LineItems),
		FulfillmentOrders:        domain.UnwrapEdges(o.FulfillmentOrders),
	}
}

type TrackingInfo struct {
	Number  string `json:"number,omitempty"`
	Company string `json:"company,omitempty"`
	URL     string `json:"url,omitempty"`
}

type Fulfillment struct {
	ID           string         `json:"id,omitempty"`
	Status       string         `json:"status,omitempty"`
	CreatedAt    string         `json:"createdAt,omitempty"`
	TrackingInfo []TrackingInfo `json:"trackingInfo,omitempty"`
}

type CollectionRule struct {
	Column    string `json:"column,omitempty"`
	Relation  string `json:"relation,omitempty"`
	Condition string `json:"condition,omitempty"`
}

type RuleSet struct {
	AppliedDisjunctively bool             `json:"appliedDisjunctively"`
	Rules                []CollectionRule `json:"rules,omitempty"`
}

type Collection struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Handle      string   `json:"handle,omitempty"`
	Description string   `json:"description,omitempty"`
	SortOrder   string   `json:"sortOrder,omitempty"`
	RuleSet     *RuleSet `json:"ruleSet,omitempty"`
}

type Metafield struct {
	ID        string `json:"id,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Key       string `json:"key,omitempty"`
	Value     string `json:"value,omitempty"`
	Type      string `json:"type,omitempty"`
}

type Location struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	IsActive bool     `json:"isActive,omitempty"`
	Address  *Address `json:"address,omitempty"`
}

type InventoryItem struct {
	ID        string `json:"id,omitempty"`
	SKU       string `json:"sku,omitempty"`
	Tracked   bool   `json:"tracked,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UnitCost  *Money `json:"unitCost,omitempty"`
}

type Quantity struct {
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
}

type InventoryLevel struct {
	ID         string            `json:"id,omitempty"`
	Quantities []Quantity        `json:"quantities,omitempty"`
	Item       *InventoryItemRef `json:"item,omitempty"`
	Location   *LocationRef      `json:"location,omitempty"`
}

// FlatInventoryLevel carries the named quantities as plain fields.
type FlatInventoryLevel struct {
	ID        string            `json:"id"`
	Available int               `json:"available"`
	OnHand    int               `json:"onHand"`
	Item      *InventoryItemRef `json:"inventoryItem,omitempty"`
	Location  *LocationRef      `json:"location,omitempty"`
}

func (l InventoryLevel) Flatten() FlatInventoryLevel {
	flat := FlatInventoryLevel{ID: l.ID, Item: l.Item, Location: l.Location}
	for _, q := range l.Quantities {
		switch q.Name {
		case "available":
			flat.Available = q.Quantity
		case "on_hand":
			flat.OnHand = q.Quantity
		}
	}
	return flat
}

// --- Per-operation response payloads ---

type GetProductsData struct {
	Products domain.Connection[Product] `json:"products"`
}

type GetProductData struct {
	Product *Product `json:"product"`
}

type ProductCreateData struct {
	ProductCreate struct {
		Product    *Product           `json:"product,omitempty"`
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"productCreate"`
}

type GetCustomersData struct {
	Customers domain.Connection[Customer] `json:"customers"`
}

type CustomerCreateData struct {
	CustomerCreate struct {
		Customer   *Customer          `json:"customer,omitempty"`
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"customerCreate"`
}

type CustomerUpdateData struct {
	CustomerUpdate struct {
		Customer   *Customer          `json:"customer,omitempty"`
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"customerUpdate"`
}

type GetOrdersData struct {
	Orders domain.Connection[Order] `json:"orders"`
}

type GetOrderData struct {
	Order *Order `json:"order"`
}

type OrderCreateData struct {
	OrderCreate struct {
		Order      *Order             `json:"order,omitempty"`
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"orderCreate"`
}

type OrderUpdateData struct {
	OrderUpdate struct {
		Order      *Order             `json:"order,omitempty"`
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"orderUpdate"`
}

type FulfillmentCreateData struct {
	FulfillmentCreateV2 struct {
		Fulfillment *Fulfillment       `json:"fulfillment,omitempty"`
		UserErrors  []domain.UserError `json:"userErrors,omitempty"`
	} `json:"fulfillmentCreateV2"`
}

type CollectionCreateData struct {
	CollectionCreate struct {
		Collection *Collection        `json:"collection,omitempty"`
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"collectionCreate"`
}

type MetafieldsSetData struct {
	MetafieldsSet struct {
		Metafields []Metafield        `json:"metafields,omitempty"`
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"metafieldsSet"`
}

type GetLocationsData struct {
	Locations domain.Connection[Location] `json:"locations"`
}

type GetInventoryItemsData struct {
	InventoryItems domain.Connection[InventoryItem] `json:"inventoryItems"`
}

// LocationLevels pairs a location with its inventory levels.
type LocationLevels struct {
	ID              string                            `json:"id,omitempty"`
	Name            string                            `json:"name,omitempty"`
	InventoryLevels domain.Connection[InventoryLevel] `json:"inventoryLevels,omitempty"`
}

type GetInventoryLevelsAtLocationData struct {
	Location *LocationLevels `json:"location"`
}

type GetInventoryLevelsData struct {
	Locations domain.Connection[LocationLevels] `json:"locations"`
}

type InventoryAdjustData struct {
	InventoryAdjustQuantities struct {
		InventoryAdjustmentGroup *struct {
			Changes []struct {
				Name                string `json:"name,omitempty"`
				Delta               int    `json:"delta"`
				QuantityAfterChange int    `json:"quantityAfterChange"`
			} `json:"changes,omitempty"`
		} `json:"inventoryAdjustmentGroup,omitempty"`
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"inventoryAdjustQuantities"`
}

type InventoryItemUpdateData struct {
	InventoryItemUpdate struct {
		InventoryItem *InventoryItem     `json:"inventoryItem,omitempty"`
		UserErrors    []domain.UserError `json:"userErrors,omitempty"`
	} `json:"inventoryItemUpdate"`
}

type InventoryActivateData struct {
	InventoryActivate struct {
		InventoryLevel *InventoryLevel    `json:"inventoryLevel,omitempty"`
		UserErrors     []domain.UserError `json:"userErrors,omitempty"`
	} `json:"inventoryActivate"`
}

type InventoryDeactivateData struct {
	InventoryDeactivate struct {
		UserErrors []domain.UserError `json:"userErrors,omitempty"`
	} `json:"inventoryDeactivate"`
}
