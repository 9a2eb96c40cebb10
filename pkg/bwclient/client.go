// Package bwclient provides the main entry point for creating Bandwidth API clients
package bwclient

import (
	"fmt"

	"github.com/dannycabrera/bandwidth-go/internal/client"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
)

// New creates a new Bandwidth API client.
func New(config *bandwidth.Config) (bandwidth.Client, error) {
	if config == nil {
		return nil, bandwidth.ErrConfigRequired
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithCredentials creates a client for the default API host.
func NewWithCredentials(userID, apiToken, apiSecret string) (bandwidth.Client, error) {
	return New(&bandwidth.Config{
		UserID:    userID,
		APIToken:  apiToken,
		APISecret: apiSecret,
	})
}

// NewWithHost creates a client for a specific API host.
func NewWithHost(host, userID, apiToken, apiSecret string) (bandwidth.Client, error) {
	return New(&bandwidth.Config{
		Host:      host,
		UserID:    userID,
		APIToken:  apiToken,
		APISecret: apiSecret,
	})
}
