package client

import (
	"context"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/http"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// RecordingsClient implements bandwidth.RecordingsClient.
type RecordingsClient struct {
	*resourceClient[bandwidth.Recording]
}

// NewRecordingsClient creates a new recordings client.
func NewRecordingsClient(httpClient *http.Client) *RecordingsClient {
	return &RecordingsClient{
		resourceClient: newResourceClient[bandwidth.Recording](httpClient, constants.RecordingsPath, "recording"),
	}
}

// Get implements bandwidth.RecordingsClient.Get.
func (c *RecordingsClient) Get(ctx context.Context, id string) (*bandwidth.Recording, error) {
	return c.get(ctx, id)
}

// List implements bandwidth.RecordingsClient.List.
func (c *RecordingsClient) List(ctx context.Context, opts *bandwidth.ListOptions) ([]bandwidth.Recording, error) {
	return c.list(ctx, opts)
}
