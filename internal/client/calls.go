package client

import (
	"context"
	"fmt"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/http"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// CallsClient implements bandwidth.CallsClient.
type CallsClient struct {
	*resourceClient[bandwidth.Call]
}

// NewCallsClient creates a new calls client.
func NewCallsClient(httpClient *http.Client) *CallsClient {
	return &CallsClient{
		resourceClient: newResourceClient[bandwidth.Call](httpClient, constants.CallsPath, "call"),
	}
}

// Create implements bandwidth.CallsClient.Create.
func (c *CallsClient) Create(ctx context.Context, call *bandwidth.Call) (string, error) {
	return c.create(ctx, call)
}

// Update implements bandwidth.CallsClient.Update.
func (c *CallsClient) Update(ctx context.Context, id string, call *bandwidth.Call) (string, error) {
	return c.update(ctx, id, call)
}

// Get implements bandwidth.CallsClient.Get.
func (c *CallsClient) Get(ctx context.Context, id string) (*bandwidth.Call, error) {
	return c.get(ctx, id)
}

// List implements bandwidth.CallsClient.List.
func (c *CallsClient) List(ctx context.Context, opts *bandwidth.ListOptions) ([]bandwidth.Call, error) {
	return c.list(ctx, opts)
}

// PlayAudio implements bandwidth.CallsClient.PlayAudio.
func (c *CallsClient) PlayAudio(ctx context.Context, id string, audio *bandwidth.PlayAudio) error {
	err := requireID("call", id)
	if err != nil {
		return err
	}

	if audio == nil || (audio.FileURL == "" && audio.Sentence == "") {
		return fmt.Errorf("%w: audio needs a file url or a sentence", bandwidth.ErrInvalidArgument)
	}

	path := constants.CallsPath + "/" + http.EscapeDataString(id) + "/" + constants.CallAudioPath

	_, err = c.httpClient.Post(ctx, path, "", audio)
	if err != nil {
		return fmt.Errorf("playing audio: %w", err)
	}

	return nil
}
