package domain

// PackageRecord is the metadata of one distribution. The same shape is used
// for entries of a channel index and for the per-environment metadata
// records written at link time; a linked record additionally carries the
// list of files it owns.
type PackageRecord struct {
	Name        string   `json:"name,omitempty"`
	Version     string   `json:"version,omitempty"`
	Build       string   `json:"build,omitempty"`
	BuildNumber int      `json:"build_number,omitempty"`
	Channel     string   `json:"channel,omitempty"`
	Depends     []string `json:"depends,omitempty"`
	Files       []string `json:"files,omitempty"`
	MD5         string   `json:"md5,omitempty"`
	URL         string   `json:"url,omitempty"`
	Size        int64    `json:"size,omitempty"`
	Icon        string   `json:"icon,omitempty"`

	// FileHash is only present on records of locally built packages, such
	// as the ones a clone writes for copied prefixes.
	FileHash string `json:"file_hash,omitempty"`
}

// SelfBuilt reports whether the record describes a locally built package
// rather than one fetched from a channel.
func (r *PackageRecord) SelfBuilt() bool {
	return r.FileHash != ""
}

// Index maps labeled archive filenames to their records. Keys come from
// Dist.Key: entries of the default channel are bare filenames, entries of
// labeled channels keep their "label::" prefix.
type Index map[string]*PackageRecord

// Merge copies every entry of other into the index.
func (idx Index) Merge(other Index) {
	for key, rec := range other {
		idx[key] = rec
	}
}

// IndexCache memoizes fetched channel indexes by collection URL so that a
// single run never fetches the same collection twice. Callers create one
// per run and pass it down; operations mutate it in place.
type IndexCache map[string]Index
