// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Output Formatting - these keys govern how extracted records are rendered.
const (
	DateFormat = "date.format"
	OutputWrap = "output.wrap"
)

// Listings Site - these keys locate the page family being scraped.
const (
	SiteBaseURL = "site.base_url"
	SiteTVPath  = "site.tv_path"
)

// Retrieval - these keys configure the document loader and resolver transport.
const (
	FetchTimeout            = "fetch.timeout"
	FetchMaxRedirects       = "fetch.max_redirects"
	FetchRetries            = "fetch.retries"
	FetchUserAgent          = "fetch.user_agent"
	FetchImpersonateBrowser = "fetch.impersonate_browser"
	FetchCacheTTL           = "fetch.cache_ttl"
)

// Link Resolution - these keys manage host resolver discovery.
const (
	ResolversCustom = "resolvers.custom"
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

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored = "cli.colored"
)
