package esi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MarketOrder mirrors the ESI market order response. Price and IsBuyOrder are
// pointers so that orders missing either field can be skipped downstream
// instead of masquerading as zero-priced sell orders.
type MarketOrder struct {
	OrderID      int64    `json:"order_id"`
	TypeID       int32    `json:"type_id"`
	LocationID   int64    `json:"location_id"`
	SystemID     int32    `json:"system_id"`
	Price        *float64 `json:"price"`
	VolumeRemain int32    `json:"volume_remain"`
	IsBuyOrder   *bool    `json:"is_buy_order"`
}

// FetchOrdersForType fetches the full order book for one item in a region,
// both sides, following X-Pages pagination sequentially. A page whose body is
// valid JSON but not a list contributes zero orders without aborting the
// fetch; a transport failure on any page aborts it.
func (c *Client) FetchOrdersForType(regionID, typeID int32) ([]MarketOrder, error) {
	url := fmt.Sprintf("%s/markets/%d/orders/?datasource=tranquility&order_type=all&type_id=%d",
		c.base, regionID, typeID)

	body, headers, err := c.get(url + "&page=1")
	if err != nil {
		return nil, err
	}

	totalPages := 1
	if p := headers.Get("X-Pages"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 1 {
			totalPages = n
		}
	}

	orders, err := decodeOrderPage(url, body)
	if err != nil {
		return nil, err
	}

	for page := 2; page <= totalPages; page++ {
		pageURL := fmt.Sprintf("%s&page=%d", url, page)
		pageBody, _, err := c.get(pageURL)
		if err != nil {
			return nil, err
		}
		pageOrders, err := decodeOrderPage(pageURL, pageBody)
		if err != nil {
			return nil, err
		}
		orders = append(orders, pageOrders...)
	}
	return orders, nil
}

// decodeOrderPage decodes one page of orders, skipping malformed entries.
func decodeOrderPage(url string, body []byte) ([]MarketOrder, error) {
	raw, err := decodeList(url, body)
	if err != nil {
		return nil, err
	}

	orders := make([]MarketOrder, 0, len(raw))
	for _, msg := range raw {
		var o MarketOrder
		if err := json.Unmarshal(msg, &o); err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}
