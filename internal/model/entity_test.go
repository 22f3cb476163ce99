package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goldtracker/internal/model"
)

func Test_VolatilityClass(t *testing.T) {
	t.Run("should quote international prices in dollars per ounce", func(t *testing.T) {
		require.Equal(t, "USD/盎司", model.International.Unit())
		require.Equal(t, "$", model.International.CurrencySymbol())
	})

	t.Run("should quote domestic prices in yuan per gram", func(t *testing.T) {
		require.Equal(t, "元/克", model.Domestic.Unit())
		require.Equal(t, "¥", model.Domestic.CurrencySymbol())
	})

	t.Run("should parse known classes only", func(t *testing.T) {
		class, err := model.ParseVolatilityClass("international")
		require.NoError(t, err)
		require.Equal(t, model.International, class)

		_, err = model.ParseVolatilityClass("lunar")
		require.Error(t, err)
	})
}
