package providers

import (
	"encoding/json"
)

// parseUpdate validates that the raw metadata is a JSON object and extracts
// its version field. Anything that isn't an object is treated as absent
// metadata rather than an error worth surfacing.
func parseUpdate(body []byte) (Update, error) {
	var obj map[string]json.RawMessage

	err := json.Unmarshal(body, &obj)
	if err != nil || obj == nil {
		return nil, ErrNoUpdateAvailable
	}

	update := jsonUpdate{
		payload: body,
	}

	// The version field is expected but not required; metadata without one
	// never matches a client commit and is always served as an update.
	rawVersion, ok := obj["version"]
	if ok {
		_ = json.Unmarshal(rawVersion, &update.version)
	}

	return &update, nil
}
