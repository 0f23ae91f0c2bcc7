package validator

import (
	"testing"

	"prelovin/internal/usecase"

	"github.com/stretchr/testify/require"
)

func TestValidate_AddToCartQuantityOptional(t *testing.T) {
	v := New()

	// Quantity may be left out of the payload; negative values and a
	// missing product are still rejected.
	require.NoError(t, v.Validate(&usecase.AddToCartInput{ProductID: 5}))
	require.NoError(t, v.Validate(&usecase.AddToCartInput{ProductID: 5, Quantity: 2}))
	require.Error(t, v.Validate(&usecase.AddToCartInput{ProductID: 5, Quantity: -1}))
	require.Error(t, v.Validate(&usecase.AddToCartInput{Quantity: 1}))
}
