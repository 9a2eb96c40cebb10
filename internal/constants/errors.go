package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentialsConfigured = errors.New("no credentials configured, use 'bw login' first")
	ErrUnknownConfigKey        = errors.New("unknown configuration key")
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)

// Response errors.
var (
	ErrEmptyResponse = errors.New("API returned no content")
)

// Flag validation errors.
var (
	ErrToRequired        = errors.New("--to flag is required")
	ErrFromRequired      = errors.New("--from flag is required")
	ErrAudioRequired     = errors.New("either --file-url or --sentence is required")
	ErrNoUpdateSpecified = errors.New("no update specified, use --state, --callback-url or --tag")
	ErrSecretRequired    = errors.New("API secret is required")
)
