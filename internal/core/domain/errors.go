package domain

import "go.trai.ch/zerr"

var (
	// ErrNotAnArchive is returned when an explicit specification names a
	// location that does not end in the package archive suffix.
	ErrNotAnArchive = zerr.New("not a package archive")

	// ErrLocalArchiveMissing is returned when an explicit specification
	// names a local path that does not exist.
	ErrLocalArchiveMissing = zerr.New("local archive does not exist")

	// ErrPackageNotInIndex is returned when a distribution that must be
	// fetched has no entry in its channel index.
	ErrPackageNotInIndex = zerr.New("package not found in channel index")

	// ErrChecksumMismatch is returned when the checksum requested by an
	// explicit specification disagrees with the channel index.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrArchiveMissing is returned when plan execution needs an archive
	// that is not present in the cache.
	ErrArchiveMissing = zerr.New("archive not present in cache")

	// ErrNoEnvironment is returned when no ancestor of a path is an
	// environment prefix.
	ErrNoEnvironment = zerr.New("path is not inside an environment")

	// ErrPrefixExists is returned when a clone target already exists.
	ErrPrefixExists = zerr.New("target prefix already exists")
)
