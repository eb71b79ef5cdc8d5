package ports

// ChannelResolver defines the interface for mapping between channel URLs
// and channel labels.
//
//go:generate mockgen -source=channel.go -destination=mocks/mock_channel.go -package=mocks
type ChannelResolver interface {
	// Label derives the short channel label for an archive or collection
	// URL. The default channel yields the empty string; URLs outside the
	// configured alias yield the full channel URL as their label.
	Label(url string) string

	// Collections expands the configured channels into collection URLs for
	// the given platform subdirectory, in priority order. Every returned
	// URL ends in a slash.
	Collections(platform string) []string
}
