package domain

import "path/filepath"

const (
	// MetaDirName is the name of the per-environment package metadata directory.
	MetaDirName = "conda-meta"

	// PkgsDirName is the name of the archive cache directory under the root prefix.
	PkgsDirName = "pkgs"

	// EnvsDirName is the name of the named-environments directory under the root prefix.
	EnvsDirName = "envs"

	// ArchiveSuffix is the package archive extension. Every installable
	// distribution is a bzip2-compressed tarball with this suffix.
	ArchiveSuffix = ".tar.bz2"

	// InfoDirName is the metadata directory inside an extracted archive.
	InfoDirName = "info"

	// InfoFilesName is the file manifest inside the info directory, one
	// relative path per line.
	InfoFilesName = "files"

	// InfoIndexName is the package record inside the info directory.
	InfoIndexName = "index.json"

	// InfoHasPrefixName lists the files that embed the build-time prefix
	// and need rewriting at link time.
	InfoHasPrefixName = "has_prefix"

	// PrefixPlaceholder is the build-time prefix assumed for has_prefix
	// entries that do not record an explicit placeholder.
	PrefixPlaceholder = "/opt/anaconda1anaconda2anaconda3"

	// RepodataFileName is the name of the per-collection index file.
	RepodataFileName = "repodata.json"

	// URLLedgerFileName is the name of the cache ledger that maps archive
	// slots to the URL and channel label they were fetched under.
	URLLedgerFileName = "urls.json"

	// NonAdminFileName marks a root prefix as installed without elevated
	// privileges. Environments derived from such a root get the same marker.
	NonAdminFileName = ".nonadmin"

	// ManagerPackageName is the package name under which the environment
	// manager itself is installed. Cloning skips it.
	ManagerPackageName = "conda"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// MetaPath returns the path of the metadata record for dist inside prefix.
// Records are keyed by the unlabeled distribution name so that filenames
// stay portable.
func MetaPath(prefix string, dist Dist) string {
	return filepath.Join(prefix, MetaDirName, dist.Base()+".json")
}

// MetaDir returns the metadata directory of an environment prefix.
func MetaDir(prefix string) string {
	return filepath.Join(prefix, MetaDirName)
}
