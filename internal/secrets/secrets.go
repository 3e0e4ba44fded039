package secrets

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Client reads secret payloads from Google Secret Manager. It is only
// needed during startup; callers should Close it once wiring is done.
type Client struct {
	sm *secretmanager.Client
}

func NewClient(ctx context.Context) (*Client, error) {
	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("secret manager client: %w", err)
	}
	return &Client{sm: sm}, nil
}

func (c *Client) Close() error {
	return c.sm.Close()
}

// Access returns the raw payload of the given secret version.
func (c *Client) Access(ctx context.Context, projectID, secretID, version string) ([]byte, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secretID, version)
	resp, err := c.sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, fmt.Errorf("access secret %s: %w", secretID, err)
	}
	return resp.GetPayload().GetData(), nil
}
