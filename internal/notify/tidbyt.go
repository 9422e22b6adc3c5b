package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const tidbytPushURL = "https://api.tidbyt.com/v0/devices/%s/push"

type tidbytPushRequest struct {
	Image      string `json:"image"`
	Background bool   `json:"background"`
}

// pushToTidbyt sends a base64-encoded GIF to a Tidbyt device's push
// endpoint, authenticated with apiKey.
func pushToTidbyt(deviceID, apiKey, gifBase64 string) error {
	body, err := json.Marshal(tidbytPushRequest{Image: gifBase64})
	if err != nil {
		return fmt.Errorf("marshal tidbyt request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf(tidbytPushURL, deviceID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build tidbyt request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("push to tidbyt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tidbyt api returned status %s", resp.Status)
	}
	return nil
}
