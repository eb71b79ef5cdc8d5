package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ExplicitMarker is the sentinel line in explicit specification lists.
	// It states that the list is complete and needs no dependency
	// resolution; the marker itself installs nothing.
	ExplicitMarker = "@EXPLICIT"

	// checksumAnchor separates the archive location from its expected MD5
	// digest in an explicit specification line.
	checksumAnchor = ":#"
)

// ExplicitSpec is one parsed line of an explicit specification list: an
// archive URL or local path, with an optional expected MD5 digest.
type ExplicitSpec struct {
	Location string
	MD5      string
}

// ParseExplicitSpec parses a single explicit specification line of the form
// "(url|path)(:#md5)?". The location must name a package archive.
func ParseExplicitSpec(line string) (ExplicitSpec, error) {
	location, md5, _ := strings.Cut(line, checksumAnchor)
	if !strings.HasSuffix(location, ArchiveSuffix) {
		return ExplicitSpec{}, zerr.With(ErrNotAnArchive, "spec", line)
	}
	return ExplicitSpec{Location: location, MD5: md5}, nil
}
