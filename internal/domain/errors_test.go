package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeops/shopify-admin-mcp/internal/domain"
)

func TestUserErrorsToError(t *testing.T) {
	t.Run("empty list is nil", func(t *testing.T) {
		assert.NoError(t, domain.UserErrorsToError("create product", nil))
		assert.NoError(t, domain.UserErrorsToError("create product", []domain.UserError{}))
	})

	t.Run("aggregates field message pairs", func(t *testing.T) {
		err := domain.UserErrorsToError("create product", []domain.UserError{
			{Field: []string{"input", "sku"}, Message: "has already been taken"},
			{Field: []string{"input", "title"}, Message: "can't be blank"},
		})
		require.Error(t, err)

		var be *domain.BusinessError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, "Failed to create product: input.sku: has already been taken, input.title: can't be blank", be.Message)
	})

	t.Run("hint derived from variant field name", func(t *testing.T) {
		err := domain.UserErrorsToError("create order", []domain.UserError{
			{Field: []string{"lineItems", "variantId"}, Message: "is invalid"},
		})
		var be *domain.BusinessError
		require.ErrorAs(t, err, &be)
		assert.Contains(t, be.Hint, "variant id")
		assert.Contains(t, be.Error(), "Failed to create order: lineItems.variantId: is invalid")
	})

	t.Run("no hint without a recognized field", func(t *testing.T) {
		err := domain.UserErrorsToError("create product", []domain.UserError{
			{Field: []string{"input", "tags"}, Message: "is invalid"},
		})
		var be *domain.BusinessError
		require.ErrorAs(t, err, &be)
		assert.Empty(t, be.Hint)
	})
}

func TestNotFoundError(t *testing.T) {
	err := domain.NotFoundError("get product by id", "product", "gid://shopify/Product/1")
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "Failed to get product by id")
}

func TestWrapToolError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, domain.WrapToolError("get products", nil))
	})

	t.Run("business errors pass through unchanged", func(t *testing.T) {
		be := domain.NotFoundError("get product by id", "product", "1")
		wrapped := domain.WrapToolError("get product by id", be)
		assert.Same(t, be, wrapped.(*domain.BusinessError))
	})

	t.Run("transport errors keep original text verbatim", func(t *testing.T) {
		cause := &domain.TransportError{Err: errors.New("graphql: server returned a non-200 status code: 502")}
		wrapped := domain.WrapToolError("get orders", cause)
		assert.Equal(t, "Failed to get orders: graphql: server returned a non-200 status code: 502", wrapped.Error())

		var te *domain.TransportError
		assert.ErrorAs(t, wrapped, &te)
	})

	t.Run("validation errors keep their type in the chain", func(t *testing.T) {
		cause := domain.NewValidationError("lineItems", "must be valid JSON")
		wrapped := domain.WrapToolError("create order", cause)

		var ve *domain.ValidationError
		assert.ErrorAs(t, wrapped, &ve)
		assert.Equal(t, "lineItems", ve.Field)
	})
}
