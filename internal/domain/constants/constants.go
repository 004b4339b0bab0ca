package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Report file names served to clients.
const (
	PersonsReportCSV   = "PersonsReport.csv"
	PersonsReportExcel = "PersonsReport.xlsx"
	PersonsReportPDF   = "PersonsReport.pdf"
)

// AuthCookieName is the cookie that carries the access token for browser clients.
const AuthCookieName = "Auth-Key"
