package notify

import (
	"context"
	"fmt"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// FetchSecret reads the latest version of a Secret Manager secret
// given its full resource name, e.g.
// "projects/my-project/secrets/discord-webhook/versions/latest".
// Generalized from the teacher's getSecret, which had the project and
// secret names hardcoded; the caller supplies the full name instead.
// Nothing in this repository calls it. If GOOGLE_APPLICATION_CREDENTIALS_JSON
// holds an inline service-account key (as opposed to the usual
// file-path env var the client library reads on its own), it's passed
// through explicitly since application-default-credentials discovery
// doesn't look at that variable.
func FetchSecret(ctx context.Context, name string) (string, error) {
	var opts []option.ClientOption
	if key := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"); key != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(key)))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("create secret manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", name, err)
	}
	return string(resp.Payload.Data), nil
}
