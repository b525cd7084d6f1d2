package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/storeops/shopify-admin-mcp/internal/adapter/outbound/shopify"
	"github.com/storeops/shopify-admin-mcp/internal/domain"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// Products returns the product tool registrations.
func Products(client shopify.Client) []usecase.Registration {
	return []usecase.Registration{
		getProducts(client),
		getProductByID(client),
		createProduct(client),
	}
}

func getProducts(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("get-products",
		mcp.WithDescription("List products, optionally filtered by title."),
		mcp.WithString("searchTitle",
			mcp.Description("Return only products whose title contains this text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of products to return."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(250),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		vars := map[string]any{"first": intOr(args, "limit", 10)}
		var clauses []string
		if title, ok := stringArg(args, "searchTitle"); ok && title != "" {
			clauses = append(clauses, "title:*"+title+"*")
		}
		if q := searchQuery(clauses...); q != "" {
			vars["query"] = q
		}

		var data shopify.GetProductsData
		if err := client.Execute(ctx, shopify.GetProductsQuery, vars, &data); err != nil {
			return nil, err
		}

		products := domain.UnwrapEdges(data.Products)
		flat := make([]shopify.FlatProduct, 0, len(products))
		for _, p := range products {
			flat = append(flat, p.Flatten())
		}
		return map[string]any{"products": flat}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func getProductByID(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("get-product-by-id",
		mcp.WithDescription("Fetch a single product with its variants and images."),
		mcp.WithString("productId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Product id, bare numeric or gid form."),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		rawID, _ := stringArg(args, "productId")
		id := domain.GID(domain.ResourceProduct, rawID)

		var data shopify.GetProductData
		if err := client.Execute(ctx, shopify.GetProductByIDQuery, map[string]any{"id": id}, &data); err != nil {
			return nil, err
		}
		if data.Product == nil {
			return nil, domain.NotFoundError("get product by id", "product", id)
		}
		return map[string]any{"product": data.Product.Flatten()}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}

func createProduct(client shopify.Client) usecase.Registration {
	tool := mcp.NewTool("create-product",
		mcp.WithDescription("Create a product."),
		mcp.WithString("title", mcp.Required(), mcp.MinLength(1), mcp.Description("Product title.")),
		mcp.WithString("descriptionHtml", mcp.Description("Product description, HTML allowed.")),
		mcp.WithString("vendor", mcp.Description("Vendor name.")),
		mcp.WithString("productType", mcp.Description("Product type label.")),
		mcp.WithString("status",
			mcp.Description("Initial product status."),
			mcp.Enum("ACTIVE", "DRAFT", "ARCHIVED"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags to apply."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("options",
			mcp.Description("Option names, e.g. Size or Color."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithObject("seo",
			mcp.Description("Search engine listing overrides."),
			mcp.Properties(map[string]any{
				"title":       stringSchema("SEO title."),
				"description": stringSchema("SEO description."),
			}),
		),
		mcp.WithArray("collectionsToJoin",
			mcp.Description("Collection ids the product should be added to."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	execute := func(ctx context.Context, args map[string]any) (any, error) {
		title, _ := stringArg(args, "title")
		input := map[string]any{"title": title}
		setString(input, args, "descriptionHtml")
		setString(input, args, "vendor")
		setString(input, args, "productType")
		setString(input, args, "status")
		setStrings(input, args, "tags")
		setStrings(input, args, "options")
		setMap(input, args, "seo")
		if ids, ok := stringsArg(args, "collectionsToJoin"); ok {
			qualified := make([]string, 0, len(ids))
			for _, id := range ids {
				qualified = append(qualified, domain.GID(domain.ResourceCollection, id))
			}
			input["collectionsToJoin"] = qualified
		}

		var data shopify.ProductCreateData
		if err := client.Execute(ctx, shopify.ProductCreateMutation, map[string]any{"input": input}, &data); err != nil {
			return nil, err
		}
		if err := domain.UserErrorsToError("create product", data.ProductCreate.UserErrors); err != nil {
			return nil, err
		}
		if data.ProductCreate.Product == nil {
			return nil, domain.EmptyPayloadError("create product")
		}
		return map[string]any{"product": data.ProductCreate.Product.Flatten()}, nil
	}

	return usecase.Registration{Tool: tool, Execute: execute}
}
