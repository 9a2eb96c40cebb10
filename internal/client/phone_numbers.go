package client

import (
	"context"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/http"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// PhoneNumbersClient implements bandwidth.PhoneNumbersClient.
type PhoneNumbersClient struct {
	*resourceClient[bandwidth.PhoneNumber]
}

// NewPhoneNumbersClient creates a new phone numbers client.
func NewPhoneNumbersClient(httpClient *http.Client) *PhoneNumbersClient {
	return &PhoneNumbersClient{
		resourceClient: newResourceClient[bandwidth.PhoneNumber](httpClient, constants.PhoneNumbersPath, "phone number"),
	}
}

// Create implements bandwidth.PhoneNumbersClient.Create.
func (c *PhoneNumbersClient) Create(ctx context.Context, number *bandwidth.PhoneNumber) (string, error) {
	return c.create(ctx, number)
}

// Get implements bandwidth.PhoneNumbersClient.Get.
func (c *PhoneNumbersClient) Get(ctx context.Context, id string) (*bandwidth.PhoneNumber, error) {
	return c.get(ctx, id)
}

// List implements bandwidth.PhoneNumbersClient.List.
func (c *PhoneNumbersClient) List(ctx context.Context, opts *bandwidth.ListOptions) ([]bandwidth.PhoneNumber, error) {
	return c.list(ctx, opts)
}

// Update implements bandwidth.PhoneNumbersClient.Update.
func (c *PhoneNumbersClient) Update(ctx context.Context, id string, number *bandwidth.PhoneNumber) error {
	_, err := c.update(ctx, id, number)

	return err
}

// Delete implements bandwidth.PhoneNumbersClient.Delete.
func (c *PhoneNumbersClient) Delete(ctx context.Context, id string) error {
	return c.delete(ctx, id)
}
