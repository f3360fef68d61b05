package esi

import (
	"encoding/json"
	"sort"
)

// PriceEntry mirrors one element of the ESI market prices payload. Pointer
// fields distinguish absent values from zeroes; entries missing either the
// type id or the average price are dropped during candidate selection.
type PriceEntry struct {
	TypeID        *int32   `json:"type_id"`
	AveragePrice  *float64 `json:"average_price"`
	AdjustedPrice *float64 `json:"adjusted_price"`
}

// FetchCandidateTypes returns type IDs for candidate items ranked by market
// average price, descending. When maxAveragePrice > 0, entries above the
// ceiling are dropped before ranking. Ties keep the upstream payload order.
func (c *Client) FetchCandidateTypes(limit int, maxAveragePrice float64) ([]int32, error) {
	url := c.base + "/markets/prices/?datasource=tranquility"
	body, _, err := c.get(url)
	if err != nil {
		return nil, err
	}

	raw, err := decodeList(url, body)
	if err != nil {
		return nil, err
	}

	var prices []PriceEntry
	for _, msg := range raw {
		var entry PriceEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			continue
		}
		if entry.TypeID == nil || entry.AveragePrice == nil {
			continue
		}
		if maxAveragePrice > 0 && *entry.AveragePrice > maxAveragePrice {
			continue
		}
		prices = append(prices, entry)
	}

	sort.SliceStable(prices, func(i, j int) bool {
		return *prices[i].AveragePrice > *prices[j].AveragePrice
	})

	if limit < 0 {
		limit = 0
	}
	if len(prices) > limit {
		prices = prices[:limit]
	}

	ids := make([]int32, 0, len(prices))
	for _, entry := range prices {
		ids = append(ids, *entry.TypeID)
	}
	return ids, nil
}
