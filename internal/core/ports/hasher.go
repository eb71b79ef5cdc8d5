package ports

// Hasher defines the interface for computing file digests.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// FileMD5 returns the hex MD5 digest of the file contents. MD5 is the
	// digest the archive format carries; it is an integrity check only.
	FileMD5(path string) (string, error)
}
