package mongodb_adapter

// Имена коллекций каталога.
const (
	CollectionProperties     = "properties"
	CollectionOwners         = "owners"
	CollectionPropertyImages = "property_images"
	CollectionPropertyTraces = "property_traces"
)
