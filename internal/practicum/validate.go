package practicum

import (
	"encoding/json"
	"fmt"
)

// CheckResponse asserts the decoded body matches the documented shape:
// a JSON object with a "homeworks" key holding a list. On success it returns
// the typed response. Pure function; no logging, no side effects.
func CheckResponse(raw []byte) (*StatusResponse, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	rawList, ok := probe["homeworks"]
	if !ok {
		return nil, ErrMissingField
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawList, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedField, err)
	}

	var resp StatusResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedField, err)
	}
	return &resp, nil
}
