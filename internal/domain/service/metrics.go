package service

// ContactsMetrics records business counters.
type ContactsMetrics interface {
	PersonCreated()
	PersonUpdated()
	PersonDeleted()
	CountriesAdded(n int)
	ReportGenerated(format string)
	ContactEventProcessed(eventType string, outcome string)
}
