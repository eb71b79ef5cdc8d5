package host

// NewHostWithOS exposes the platform seam for tests.
var NewHostWithOS = newHostWithOS
