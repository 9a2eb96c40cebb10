package client

import (
	"context"
	"fmt"

	"github.com/dannycabrera/bandwidth-go/internal/codec"
	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/http"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// AvailableNpaNxxClient implements bandwidth.AvailableNpaNxxClient. The
// endpoint speaks XML.
//
// Searches are sent under the user path (/users/<id>/availableNpaNxx) like
// every other resource, not the Iris /accounts/<accountId>/availableNpaNxx
// path, since the client is configured with a user id only.
type AvailableNpaNxxClient struct {
	httpClient *http.Client
}

// NewAvailableNpaNxxClient creates a new NPA-NXX search client.
func NewAvailableNpaNxxClient(httpClient *http.Client) *AvailableNpaNxxClient {
	return &AvailableNpaNxxClient{
		httpClient: httpClient,
	}
}

// List implements bandwidth.AvailableNpaNxxClient.List.
func (c *AvailableNpaNxxClient) List(ctx context.Context, query *bandwidth.AvailableNpaNxxQuery) ([]bandwidth.AvailableNpaNxx, error) {
	var params http.Query

	if query != nil {
		if query.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative, got %d", bandwidth.ErrInvalidArgument, query.Quantity)
		}

		params.AddString(constants.QueryAreaCode, query.AreaCode)
		params.AddInt(constants.QueryQuantity, query.Quantity)
		params.AddString(constants.QueryState, query.State)
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:   "GET",
		Path:     constants.AvailableNpaNxxPath,
		Query:    params,
		Encoding: codec.XML,
	})
	if err != nil {
		return nil, fmt.Errorf("listing available npa-nxx: %w", err)
	}

	var result bandwidth.AvailableNpaNxxResult

	_, err = c.httpClient.Decode(resp, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing available npa-nxx response: %w", err)
	}

	return result.AvailableNpaNxxList, nil
}
