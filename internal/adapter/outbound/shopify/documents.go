package shopify

// Hand-authored GraphQL documents, composed from shared fragments so every
// tool that returns the same resource selects the same fields.

const moneyFragment = `
fragment MoneyFields on MoneyV2 {
  amount
  currencyCode
}`

const imageFragment = `
fragment ImageFields on Image {
  id
  url
  altText
}`

const variantFragment = `
fragment VariantFields on ProductVariant {
  id
  title
  price
  sku
  availableForSale
  inventoryQuantity
  inventoryItem {
    id
  }
}`

const productFragment = `
fragment ProductFields on Product {
  id
  title
  descriptionHtml
  vendor
  productType
  status
  tags
  createdAt
  variants(first: 20) {
    edges {
      node {
        ...VariantFields
      }
    }
  }
  images(first: 10) {
    edges {
      node {
        ...ImageFields
      }
    }
  }
  collections(first: 10) {
    edges {
      node {
        id
        title
      }
    }
  }
}` + variantFragment + imageFragment

const addressFragment = `
fragment AddressFields on MailingAddress {
  firstName
  lastName
  address1
  address2
  city
  province
  country
  zip
  phone
}`

const customerFragment = `
fragment CustomerFields on Customer {
  id
  firstName
  lastName
  email
  phone
  note
  tags
  taxExempt
  createdAt
  defaultAddress {
    ...AddressFields
  }
}` + addressFragment

const orderFragment = `
fragment OrderFields on Order {
  id
  name
  email
  note
  tags
  createdAt
  displayFinancialStatus
  displayFulfillmentStatus
  totalPriceSet {
    shopMoney {
      ...MoneyFields
    }
  }
  customer {
    id
    email
  }
  shippingAddress {
    ...AddressFields
  }
  lineItems(first: 50) {
    edges {
      node {
        id
        title
        quantity
        sku
        variant {
          id
        }
      }
    }
  }
  fulfillmentOrders(first: 5) {
    edges {
      node {
        id
        status
      }
    }
  }
}` + moneyFragment + addressFragment

const collectionFragment = `
fragment CollectionFields on Collection {
  id
  title
  handle
  description
  sortOrder
  ruleSet {
    appliedDisjunctively
    rules {
      column
      relation
      condition
    }
  }
}`

const locationFragment = `
fragment LocationFields on Location {
  id
  name
  isActive
  address {
    address1
    city
    province
    country
    zip
  }
}`

const inventoryItemFragment = `
fragment InventoryItemFields on InventoryItem {
  id
  sku
  tracked
  createdAt
  unitCost {
    ...MoneyFields
  }
}` + moneyFragment

const inventoryLevelFragment = `
fragment InventoryLevelFields on InventoryLevel {
  id
  quantities(names: ["available", "on_hand"]) {
    name
    quantity
  }
  item {
    id
    sku
  }
  location {
    id
    name
  }
}`

// --- Queries ---

const GetProductsQuery = `
query GetProducts($first: Int!, $query: String) {
  products(first: $first, query: $query) {
    edges {
      node {
        ...ProductFields
      }
    }
  }
}` + productFragment

const GetProductByIDQuery = `
query GetProductByID($id: ID!) {
  product(id: $id) {
    ...ProductFields
  }
}` + productFragment

const GetCustomersQuery = `
query GetCustomers($first: Int!, $query: String) {
  customers(first: $first, query: $query) {
    edges {
      node {
        ...CustomerFields
      }
    }
  }
}` + customerFragment

const GetOrdersQuery = `
query GetOrders($first: Int!, $query: String) {
  orders(first: $first, query: $query) {
    edges {
      node {
        ...OrderFields
      }
    }
  }
}` + orderFragment

const GetOrderByIDQuery = `
query GetOrderByID($id: ID!) {
  order(id: $id) {
    ...OrderFields
  }
}` + orderFragment

const GetLocationsQuery = `
query GetLocations($first: Int!, $includeInactive: Boolean!) {
  locations(first: $first, includeInactive: $includeInactive) {
    edges {
      node {
        ...LocationFields
      }
    }
  }
}` + locationFragment

const GetInventoryItemsQuery = `
query GetInventoryItems($first: Int!, $query: String) {
  inventoryItems(first: $first, query: $query) {
    edges {
      node {
        ...InventoryItemFields
      }
    }
  }
}` + inventoryItemFragment

const GetInventoryLevelsAtLocationQuery = `
query GetInventoryLevelsAtLocation($locationId: ID!, $first: Int!) {
  location(id: $locationId) {
    id
    name
    inventoryLevels(first: $first) {
      edges {
        node {
          ...InventoryLevelFields
        }
      }
    }
  }
}` + inventoryLevelFragment

const GetInventoryLevelsQuery = `
query GetInventoryLevels($first: Int!, $locations: Int!) {
  locations(first: $locations, includeInactive: false) {
    edges {
      node {
        id
        name
        inventoryLevels(first: $first) {
          edges {
            node {
              ...InventoryLevelFields
            }
          }
        }
      }
    }
  }
}` + inventoryLevelFragment

// --- Mutations ---

const ProductCreateMutation = `
mutation ProductCreate($input: ProductInput!) {
  productCreate(input: $input) {
    product {
      ...ProductFields
    }
    userErrors {
      field
      message
    }
  }
}` + productFragment

const CustomerCreateMutation = `
mutation CustomerCreate($input: CustomerInput!) {
  customerCreate(input: $input) {
    customer {
      ...CustomerFields
    }
    userErrors {
      field
      message
    }
  }
}` + customerFragment

const CustomerUpdateMutation = `
mutation CustomerUpdate($input: CustomerInput!) {
  customerUpdate(input: $input) {
    customer {
      ...CustomerFields
    }
    userErrors {
      field
      message
    }
  }
}` + customerFragment

const OrderCreateMutation = `
mutation OrderCreate($order: OrderCreateOrderInput!) {
  orderCreate(order: $order) {
    order {
      ...OrderFields
    }
    userErrors {
      field
      message
    }
  }
}` + orderFragment

const OrderUpdateMutation = `
mutation OrderUpdate($input: OrderInput!) {
  orderUpdate(input: $input) {
    order {
      ...OrderFields
    }
    userErrors {
      field
      message
    }
  }
}` + orderFragment

const FulfillmentCreateMutation = `
mutation FulfillmentCreate($fulfillment: FulfillmentV2Input!) {
  fulfillmentCreateV2(fulfillment: $fulfillment) {
    fulfillment {
      id
      status
      createdAt
      trackingInfo {
        number
        company
        url
      }
    }
    userErrors {
      field
      message
    }
  }
}`

const CollectionCreateMutation = `
mutation CollectionCreate($input: CollectionInput!) {
  collectionCreate(input: $input) {
    collection {
      ...CollectionFields
    }
    userErrors {
      field
      message
    }
  }
}` + collectionFragment

const MetafieldsSetMutation = `
mutation MetafieldsSet($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    metafields {
      id
      namespace
      key
      value
      type
    }
    userErrors {
      field
      message
    }
  }
}`

const InventoryAdjustMutation = `
mutation AdjustInventory($inventoryItemId: ID!, $locationId: ID!, $availableDelta: Int!, $reason: String!) {
  inventoryAdjustQuantities(
    input: {
      name: "available"
      reason: $reason
      changes: [{inventoryItemId: $inventoryItemId, locationId: $locationId, delta: $availableDelta}]
    }
  ) {
    inventoryAdjustmentGroup {
      changes {
        name
        delta
        quantityAfterChange
      }
    }
    userErrors {
      field
      message
    }
  }
}`

const InventoryItemUpdateMutation = `
mutation InventoryItemUpdate($id: ID!, $input: InventoryItemUpdateInput!) {
  inventoryItemUpdate(id: $id, input: $input) {
    inventoryItem {
      ...InventoryItemFields
    }
    userErrors {
      field
      message
    }
  }
}` + inventoryItemFragment

const InventoryActivateMutation = `
mutation InventoryActivate($inventoryItemId: ID!, $locationId: ID!, $available: Int) {
  inventoryActivate(inventoryItemId: $inventoryItemId, locationId: $locationId, available: $available) {
    inventoryLevel {
      ...InventoryLevelFields
    }
    userErrors {
      field
      message
    }
  }
}` + inventoryLevelFragment

const InventoryDeactivateMutation = `
mutation InventoryDeactivate($inventoryLevelId: ID!) {
  inventoryDeactivate(inventoryLevelId: $inventoryLevelId) {
    userErrors {
      field
      message
    }
  }
}`
