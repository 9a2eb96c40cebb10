package constants

import "time"

// API endpoint.
const (
	// DefaultHost is the production Catapult API host.
	DefaultHost = "api.catapult.inetwork.com"

	// APIVersion is the fixed version segment appended to the host.
	APIVersion = "v1"

	// UserPathPrefix is the collection under which every account resource lives.
	UserPathPrefix = "users"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "bandwidth-go/1.0"
)

// Resource collections.
const (
	CallsPath           = "calls"
	CallAudioPath       = "audio"
	RecordingsPath      = "recordings"
	MessagesPath        = "messages"
	PhoneNumbersPath    = "phoneNumbers"
	AvailableNpaNxxPath = "availableNpaNxx"
)

// Query parameter names.
const (
	QueryPage     = "page"
	QuerySize     = "size"
	QueryAreaCode = "areaCode"
	QueryQuantity = "quantity"
	QueryState    = "state"
)

// Media types.
const (
	MediaTypeJSON    = "application/json"
	MediaTypeXML     = "application/xml"
	MediaTypeTextXML = "text/xml"
	CharsetUTF8      = "charset=utf-8"
)

// HTTP headers.
const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	HeaderLocation      = "Location"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds a single round trip when the caller's context has no deadline.
	DefaultHTTPTimeout = 30 * time.Second

	// EventFlushTimeout bounds the NATS connect and the flush after each publish.
	EventFlushTimeout = 5 * time.Second
)

// Pagination.
const (
	// StandardPageSize is the page size the CLI requests by default.
	StandardPageSize = 25

	// DefaultMaxPages caps page walks that were given no explicit limit.
	DefaultMaxPages = 100
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Display constants.
const (
	// NotAvailable is printed for empty table cells.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in printed configuration.
	MaskedSecret = "***"

	// YAMLIndentSize is the indentation used for YAML output.
	YAMLIndentSize = 2
)

// Format constants.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Events.
const (
	// DefaultEventSubject is the NATS subject creation events are published on.
	DefaultEventSubject = "bandwidth.resources.created"

	// EventClientName identifies the CLI's NATS connection.
	EventClientName = "bw-cli"
)

// CLI.
const (
	// CLIUserAgent is sent by the bw command line tool.
	CLIUserAgent = "bw-cli/1.0"

	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".bandwidth"

	// ConfigFileName is the CLI config file inside ConfigDirName.
	ConfigFileName = "config.yml"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "BANDWIDTH"
)
