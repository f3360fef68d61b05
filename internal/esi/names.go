package esi

import "encoding/json"

// nameEntry mirrors one element of the universe names response.
type nameEntry struct {
	ID       *int32  `json:"id"`
	Name     *string `json:"name"`
	Category string  `json:"category"`
}

// ResolveNames resolves type IDs to display names in one bulk request.
// Entries lacking a valid id or name are skipped. An empty input returns an
// empty map without touching the network.
func (c *Client) ResolveNames(typeIDs []int32) (map[int32]string, error) {
	names := make(map[int32]string, len(typeIDs))
	if len(typeIDs) == 0 {
		return names, nil
	}

	url := c.base + "/universe/names/?datasource=tranquility"
	body, err := c.post(url, typeIDs)
	if err != nil {
		return nil, err
	}

	raw, err := decodeList(url, body)
	if err != nil {
		return nil, err
	}

	for _, msg := range raw {
		var entry nameEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			continue
		}
		if entry.ID == nil || entry.Name == nil {
			continue
		}
		names[*entry.ID] = *entry.Name
	}
	return names, nil
}
