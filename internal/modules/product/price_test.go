package product

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Price_Marshals_With_Two_Fraction_Digits(t *testing.T) {
	// Arrange
	price := Price(450)

	// Act
	data, err := json.Marshal(price)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "4.50", string(data))
}

func Test_Price_Unmarshals_Decimal_Number(t *testing.T) {
	// Arrange
	var price Price

	// Act
	err := json.Unmarshal([]byte("4.50"), &price)

	// Assert
	require.NoError(t, err)
	require.Equal(t, Price(450), price)
}

func Test_Price_Round_Trips_Whole_Numbers(t *testing.T) {
	// Arrange
	var price Price
	require.NoError(t, json.Unmarshal([]byte("5"), &price))

	// Act
	data, err := json.Marshal(price)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "5.00", string(data))
	require.Equal(t, Price(500), price)
}

func Test_PriceFromFloat_Rounds_To_Nearest_Cent(t *testing.T) {
	require.Equal(t, Price(1001), PriceFromFloat(10.01))
	require.Equal(t, Price(999), PriceFromFloat(9.994))
}
