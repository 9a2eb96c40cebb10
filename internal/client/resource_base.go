package client

import (
	"context"
	"fmt"

	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/http"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// resourceClient provides the JSON operations shared by every account collection.
type resourceClient[T any] struct {
	httpClient   *http.Client
	resourcePath string
	kind         string
}

func newResourceClient[T any](httpClient *http.Client, resourcePath, kind string) *resourceClient[T] {
	return &resourceClient[T]{
		httpClient:   httpClient,
		resourcePath: resourcePath,
		kind:         kind,
	}
}

// create posts body and returns the id from the Location header.
func (c *resourceClient[T]) create(ctx context.Context, body *T) (string, error) {
	if body == nil {
		return "", fmt.Errorf("%w: %s is required", bandwidth.ErrInvalidArgument, c.kind)
	}

	resp, err := c.httpClient.Post(ctx, c.resourcePath, "", body)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", c.kind, err)
	}

	id, err := http.CreatedID(resp, c.resourcePath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", c.kind, err)
	}

	return id, nil
}

// get returns nil without error when the response carries no decodable body
// or a JSON null.
func (c *resourceClient[T]) get(ctx context.Context, id string) (*T, error) {
	err := requireID(c.kind, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.resourcePath, id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.kind, err)
	}

	// A JSON null leaves resource nil.
	var resource *T

	ok, err := c.httpClient.Decode(resp, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.kind, err)
	}

	if !ok {
		return nil, nil
	}

	return resource, nil
}

func (c *resourceClient[T]) list(ctx context.Context, opts *bandwidth.ListOptions) ([]T, error) {
	query, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.resourcePath, "", query)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", c.kind, err)
	}

	var resources []T

	_, err = c.httpClient.Decode(resp, &resources)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.kind, err)
	}

	return resources, nil
}

// update posts body to the resource and returns the Location header, which
// may be empty.
func (c *resourceClient[T]) update(ctx context.Context, id string, body *T) (string, error) {
	err := requireID(c.kind, id)
	if err != nil {
		return "", err
	}

	if body == nil {
		return "", fmt.Errorf("%w: %s is required", bandwidth.ErrInvalidArgument, c.kind)
	}

	resp, err := c.httpClient.Post(ctx, c.resourcePath, id, body)
	if err != nil {
		return "", fmt.Errorf("updating %s: %w", c.kind, err)
	}

	return resp.Headers.Get(constants.HeaderLocation), nil
}

func (c *resourceClient[T]) delete(ctx context.Context, id string) error {
	err := requireID(c.kind, id)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, c.resourcePath, id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.kind, err)
	}

	return nil
}
