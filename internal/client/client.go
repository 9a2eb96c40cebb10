package client

import (
	"fmt"
	"strings"

	"github.com/dannycabrera/bandwidth-go/internal/codec"
	"github.com/dannycabrera/bandwidth-go/internal/constants"
	"github.com/dannycabrera/bandwidth-go/internal/http"
	"github.com/dannycabrera/bandwidth-go/internal/metrics"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// Client implements the bandwidth.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	calls           bandwidth.CallsClient
	recordings      bandwidth.RecordingsClient
	messages        bandwidth.MessagesClient
	phoneNumbers    bandwidth.PhoneNumbersClient
	availableNpaNxx bandwidth.AvailableNpaNxxClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *bandwidth.Config) ([]http.Option, error) {
	httpOpts := []http.Option{
		http.WithCodecs(codec.NewSet(codec.Settings{
			DisallowUnknownFields: config.Serialization.DisallowUnknownFields,
			XMLDeclaration:        config.Serialization.XMLDeclaration,
		})),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.MetricsRegisterer != nil {
		requestMetrics, err := metrics.New(config.MetricsRegisterer)
		if err != nil {
			return nil, err
		}

		httpOpts = append(httpOpts, http.WithObserver(requestMetrics))
	}

	return httpOpts, nil
}

// New creates a client for the account described by config.
func New(config *bandwidth.Config) (*Client, error) {
	if config == nil {
		return nil, bandwidth.ErrConfigRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient, err := http.NewClient(http.Connection{
		Host:      config.Host,
		UserID:    config.UserID,
		APIToken:  config.APIToken,
		APISecret: config.APISecret,
	}, httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.calls = NewCallsClient(c.httpClient)
	c.recordings = NewRecordingsClient(c.httpClient)
	c.messages = NewMessagesClient(c.httpClient)
	c.phoneNumbers = NewPhoneNumbersClient(c.httpClient)
	c.availableNpaNxx = NewAvailableNpaNxxClient(c.httpClient)
}

// Calls implements bandwidth.Client.Calls.
func (c *Client) Calls() bandwidth.CallsClient {
	return c.calls
}

// Recordings implements bandwidth.Client.Recordings.
func (c *Client) Recordings() bandwidth.RecordingsClient {
	return c.recordings
}

// Messages implements bandwidth.Client.Messages.
func (c *Client) Messages() bandwidth.MessagesClient {
	return c.messages
}

// PhoneNumbers implements bandwidth.Client.PhoneNumbers.
func (c *Client) PhoneNumbers() bandwidth.PhoneNumbersClient {
	return c.phoneNumbers
}

// AvailableNpaNxx implements bandwidth.Client.AvailableNpaNxx.
func (c *Client) AvailableNpaNxx() bandwidth.AvailableNpaNxxClient {
	return c.availableNpaNxx
}

// Close implements bandwidth.Client.Close.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// requireID rejects ids that are empty or would escape their path segment.
func requireID(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s id is required", bandwidth.ErrInvalidArgument, kind)
	}

	if strings.Contains(id, "/") {
		return fmt.Errorf("%w: %s id %q must not contain '/'", bandwidth.ErrInvalidArgument, kind, id)
	}

	if http.IsDotSegment(id) {
		return fmt.Errorf("%w: %s id %q is a relative path segment", bandwidth.ErrInvalidArgument, kind, id)
	}

	return nil
}

// listQuery renders page and size, each only when supplied.
func listQuery(opts *bandwidth.ListOptions) (http.Query, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	var query http.Query

	if opts != nil {
		query.AddInt(constants.QueryPage, opts.Page)
		query.AddInt(constants.QuerySize, opts.Size)
	}

	return query, nil
}
