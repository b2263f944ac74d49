package product

import (
	"bytes"
	"math"
	"strconv"
)

// Price is a monetary amount in cents. It marshals as a JSON number with
// two fraction digits (450 <-> 4.50) so no float state lives in the entity.
type Price int64

func PriceFromFloat(v float64) Price {
	return Price(math.Round(v * 100))
}

func (p Price) Float() float64 {
	return float64(p) / 100
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(p.Float(), 'f', 2, 64)), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(bytes.TrimSpace(data)), 64)
	if err != nil {
		return err
	}

	*p = PriceFromFloat(v)
	return nil
}
