package domain

// CollectionLocator resolves an installed collection prefix to the path of
// its icon-set JSON file. Implementations return an error wrapping their
// not-found sentinel when the prefix is unknown to them.
type CollectionLocator interface {
	Locate(prefix Prefix) (string, error)
}

// CollectionFetcher downloads the raw icon-set JSON for a prefix.
type CollectionFetcher interface {
	FetchCollection(prefix Prefix) ([]byte, error)
}

// CollectionWriter persists a fetched collection and returns the path it
// was stored under.
type CollectionWriter interface {
	WriteCollection(prefix Prefix, data []byte) (string, error)
}
