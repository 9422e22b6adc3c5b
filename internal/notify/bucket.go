package notify

import (
	"bytes"
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// uploadReplayGIF streams data into bucketName under "<gameID>.gif".
func uploadReplayGIF(ctx context.Context, bucketName, gameID string, data []byte) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	object := client.Bucket(bucketName).Object(gameID + ".gif")
	writer := object.NewWriter(ctx)
	if _, err := bytes.NewReader(data).WriteTo(writer); err != nil {
		return fmt.Errorf("write replay to bucket: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close bucket writer: %w", err)
	}
	return nil
}
