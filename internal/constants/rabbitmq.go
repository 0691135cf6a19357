package constants

// Топология RabbitMQ для событий каталога.
const (
	ExchangeCatalogEvents     = "catalog_events_exchange"
	RoutingKeyPropertyChanged = "catalog.property.changed"
)
