package client

import (
	"context"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/http"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// MessagesClient implements bandwidth.MessagesClient.
type MessagesClient struct {
	*resourceClient[bandwidth.Message]
}

// NewMessagesClient creates a new messages client.
func NewMessagesClient(httpClient *http.Client) *MessagesClient {
	return &MessagesClient{
		resourceClient: newResourceClient[bandwidth.Message](httpClient, constants.MessagesPath, "message"),
	}
}

// Send implements bandwidth.MessagesClient.Send.
func (c *MessagesClient) Send(ctx context.Context, message *bandwidth.Message) (string, error) {
	return c.create(ctx, message)
}

// Get implements bandwidth.MessagesClient.Get.
func (c *MessagesClient) Get(ctx context.Context, id string) (*bandwidth.Message, error) {
	return c.get(ctx, id)
}

// List implements bandwidth.MessagesClient.List.
func (c *MessagesClient) List(ctx context.Context, opts *bandwidth.ListOptions) ([]bandwidth.Message, error) {
	return c.list(ctx, opts)
}
