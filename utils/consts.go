package utils

const (
	// DefaultConfigPath - default application configuration file path
	DefaultConfigPath = "./configs.yml"

	// DefaultBotTitle - bot title used when the configuration does not set one
	DefaultBotTitle = "Bitcoin Bot"

	// DefaultUpdateButton - refresh button label used when the configuration does not set one
	DefaultUpdateButton = "🔄"

	// DefaultDateFormat - date layout used when the configuration does not set one
	DefaultDateFormat = "02/01/2006"

	// DefaultHourFormat - time layout used when the configuration does not set one
	DefaultHourFormat = "15:04"
)
