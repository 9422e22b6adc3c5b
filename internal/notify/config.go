// Package notify sends best-effort, non-blocking post-game
// notifications: a Discord webhook summary and, optionally, a replay
// GIF pushed to a Tidbyt display and archived to Cloud Storage.
// Grounded on the teacher's discord.go/tidbyt.go/bucket.go/renderer.go,
// generalized off the hardcoded webhook/device/bucket values those
// carried into environment-driven configuration.
package notify

import "os"

// Config holds every external endpoint the notifier talks to. Every
// field is optional: a notifier built from a zero Config is a no-op.
type Config struct {
	DiscordWebhookURL string
	TidbytDeviceID    string
	TidbytAPIKey      string
	BucketName        string
	ReplayEnabled     bool
}

// ConfigFromEnv reads the notifier's configuration from the process
// environment, the idiomatic place for deployment secrets (Cloud Run
// injects Secret Manager values as env vars at container start).
func ConfigFromEnv() Config {
	return Config{
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		TidbytDeviceID:    os.Getenv("TIDBYT_DEVICE_ID"),
		TidbytAPIKey:      os.Getenv("TIDBYT_API_KEY"),
		BucketName:        os.Getenv("REPLAY_BUCKET_NAME"),
		ReplayEnabled:     os.Getenv("REPLAY_ENABLED") == "true",
	}
}
