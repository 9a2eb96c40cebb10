package bandwidth

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CallsClient manages voice calls.
type CallsClient interface {
	// Create places an outbound call and returns the id assigned by the API.
	Create(ctx context.Context, call *Call) (string, error)
	// Update changes a call and returns the Location header of the response.
	Update(ctx context.Context, id string, call *Call) (string, error)
	Get(ctx context.Context, id string) (*Call, error)
	List(ctx context.Context, opts *ListOptions) ([]Call, error)
	PlayAudio(ctx context.Context, id string, audio *PlayAudio) error
}

// RecordingsClient reads call recordings.
type RecordingsClient interface {
	Get(ctx context.Context, id string) (*Recording, error)
	List(ctx context.Context, opts *ListOptions) ([]Recording, error)
}

// MessagesClient sends and reads messages.
type MessagesClient interface {
	// Send sends a message and returns the id assigned by the API.
	Send(ctx context.Context, message *Message) (string, error)
	Get(ctx context.Context, id string) (*Message, error)
	List(ctx context.Context, opts *ListOptions) ([]Message, error)
}

// PhoneNumbersClient manages numbers allocated to the account.
type PhoneNumbersClient interface {
	// Create allocates a number and returns the id assigned by the API.
	Create(ctx context.Context, number *PhoneNumber) (string, error)
	Get(ctx context.Context, id string) (*PhoneNumber, error)
	List(ctx context.Context, opts *ListOptions) ([]PhoneNumber, error)
	Update(ctx context.Context, id string, number *PhoneNumber) error
	// Delete releases a number from the account.
	Delete(ctx context.Context, id string) error
}

// AvailableNpaNxxClient searches area code / exchange combinations. It uses
// /users/<id>/availableNpaNxx rather than the Iris account path.
type AvailableNpaNxxClient interface {
	List(ctx context.Context, query *AvailableNpaNxxQuery) ([]AvailableNpaNxx, error)
}

// Client is the entry point to the API. It is safe for concurrent use.
type Client interface {
	Calls() CallsClient
	Recordings() RecordingsClient
	Messages() MessagesClient
	PhoneNumbers() PhoneNumbersClient
	AvailableNpaNxx() AvailableNpaNxxClient

	// Close releases pooled connections. It is idempotent. Requests issued
	// afterwards fail with ErrClientClosed.
	Close() error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// SerializationOptions tunes the codecs used by a client. The values are
// copied at construction and never change afterwards.
type SerializationOptions struct {
	// DisallowUnknownFields makes JSON decoding fail on fields the target type does not declare.
	DisallowUnknownFields bool
	// XMLDeclaration prefixes encoded XML bodies with the standard declaration.
	XMLDeclaration bool
}

// Config represents client configuration for building a bandwidth.Client.
//
// UserID, APIToken and APISecret are required. Every request carries the same
// Basic Authorization header built from APIToken and APISecret.
//
// Per-request deadlines should be set through the context passed to client
// methods. HTTPTimeout bounds a whole round trip regardless of the context.
type Config struct {
	// UserID is the account id. Resource paths are rooted at /v1/users/<UserID>.
	UserID string
	// APIToken is the Basic auth user name.
	APIToken string
	// APISecret is the Basic auth password.
	APISecret string

	// Host overrides the API host. A value with an http:// or https:// scheme
	// is used as the base URL as-is.
	Host string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout bounds each round trip. Zero uses the default.
	HTTPTimeout time.Duration
	// HTTPClient replaces the underlying *http.Client. Its Timeout is left alone.
	HTTPClient *http.Client

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// MetricsRegisterer receives request metrics when set.
	MetricsRegisterer prometheus.Registerer

	Serialization SerializationOptions
}
