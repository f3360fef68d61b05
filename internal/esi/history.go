package esi

import (
	"errors"
	"fmt"
	"sort"
)

// HistoryEntry represents a single day of market history for an item in a region.
type HistoryEntry struct {
	Date       string  `json:"date"`
	Average    float64 `json:"average"`
	Highest    float64 `json:"highest"`
	Lowest     float64 `json:"lowest"`
	Volume     int64   `json:"volume"`
	OrderCount int64   `json:"order_count"`
}

// FetchMarketHistory fetches the recent market history series for a type in a region.
func (c *Client) FetchMarketHistory(regionID, typeID int32) ([]HistoryEntry, error) {
	url := fmt.Sprintf("%s/markets/%d/history/?datasource=tranquility&type_id=%d",
		c.base, regionID, typeID)

	var entries []HistoryEntry
	if err := c.GetJSON(url, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LatestDailyVolume returns the traded volume of the most recent history day,
// or 0 when the series is empty or malformed. ESI does not guarantee
// chronological order, so entries are sorted by date first.
func (c *Client) LatestDailyVolume(regionID, typeID int32) (float64, error) {
	entries, err := c.FetchMarketHistory(regionID, typeID)
	if err != nil {
		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) {
			return 0, err
		}
		// Valid JSON that is not a history series counts as no data.
		return 0, nil
	}
	return LatestVolume(entries), nil
}

// LatestVolume extracts the most recent day's volume from a history series.
func LatestVolume(entries []HistoryEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sorted := make([]HistoryEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return float64(sorted[len(sorted)-1].Volume)
}
