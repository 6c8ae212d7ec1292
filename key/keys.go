// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Source Endpoints - these keys locate the remote tv.garden channel dataset.
const (
	CatalogBaseURL   = "catalog.base_url"
	CatalogTimeout   = "catalog.fetch_timeout"
	CatalogFreeLimit = "catalog.free_channel_limit"
)

// Stream Resolution - these keys govern the HTML scraping and extraction layer.
const (
	ScrapeBaseURL  = "scrape.base_url"
	ScrapeTimeout  = "scrape.timeout"
	ScrapeRetries  = "scrape.retries"
	ScrapeBackoff  = "scrape.backoff"
	ScrapeSpoofTLS = "scrape.spoof_tls"
)

// Search Interaction - these keys define the behavior of free-text catalog search.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchEmptyQueryAll        = "search.empty_query_all"
)

// History Tracking - these keys configure the persistence of watched channel state.
const (
	HistorySaveOnWatch = "history.save_on_watch"
)

// Playback Handoff - these keys configure how resolved streams are handed to a local player.
const (
	WatchApp = "watch.app"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
