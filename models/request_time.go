package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Zone-less layouts accepted for request instants, read as UTC. Fractional
// seconds after the seconds field are accepted by time.Parse on its own.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseRequestTime reads a request instant. Values without a zone are taken as
// UTC; anything else must be RFC3339.
func ParseRequestTime(s string) (time.Time, error) {
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected 2006-01-02T15:04:05 or RFC3339", s)
	}
	return t.UTC(), nil
}

// UnmarshalJSON accepts zone-less or RFC3339 start/end values and a string or
// numeric item id. Missing fields stay zero for the binding rules to report.
func (in *BookingRequestInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		ItemID json.RawMessage `json:"itemId"`
		Start  *string         `json:"start"`
		End    *string         `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	itemID, err := parseItemID(raw.ItemID)
	if err != nil {
		return err
	}
	out := BookingRequestInput{ItemID: itemID}
	if raw.Start != nil {
		if out.Start, err = ParseRequestTime(*raw.Start); err != nil {
			return fmt.Errorf("start: %w", err)
		}
	}
	if raw.End != nil {
		if out.End, err = ParseRequestTime(*raw.End); err != nil {
			return fmt.Errorf("end: %w", err)
		}
	}
	*in = out
	return nil
}

func parseItemID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("itemId must be a string or a number")
	}
	return n.String(), nil
}
