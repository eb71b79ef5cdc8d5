package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ChannelSep separates a channel label from the package part of a
// distribution name, as in "conda-forge::zlib-1.2.8-0".
const ChannelSep = "::"

// Dist is the canonical name of a distribution: "name-version-build",
// optionally prefixed with a channel label and ChannelSep. The default
// channel carries no label.
type Dist string

// DistFromFilename builds a Dist from an archive filename and an already
// formatted label prefix ("" for the default channel, "label::" otherwise).
func DistFromFilename(labelPrefix, filename string) (Dist, error) {
	base, ok := strings.CutSuffix(filename, ArchiveSuffix)
	if !ok {
		return "", zerr.With(ErrNotAnArchive, "filename", filename)
	}
	return Dist(labelPrefix + base), nil
}

func (d Dist) String() string {
	return string(d)
}

// Channel returns the channel label of the distribution, or the empty
// string for the default channel.
func (d Dist) Channel() string {
	label, _, ok := strings.Cut(string(d), ChannelSep)
	if !ok {
		return ""
	}
	return label
}

// LabelPrefix returns the formatted channel prefix, either "" or "label::".
func (d Dist) LabelPrefix() string {
	if label := d.Channel(); label != "" {
		return label + ChannelSep
	}
	return ""
}

// Base returns the distribution name without its channel label.
func (d Dist) Base() string {
	_, base, ok := strings.Cut(string(d), ChannelSep)
	if !ok {
		return string(d)
	}
	return base
}

// Name returns the package name, i.e. the base name without the trailing
// version and build segments. Package names may themselves contain dashes.
func (d Dist) Name() string {
	base := d.Base()
	i := strings.LastIndex(base, "-")
	if i < 0 {
		return base
	}
	j := strings.LastIndex(base[:i], "-")
	if j < 0 {
		return base[:i]
	}
	return base[:j]
}

// Version returns the version segment of the distribution, or "" when the
// name has no version segment.
func (d Dist) Version() string {
	base := d.Base()
	i := strings.LastIndex(base, "-")
	if i < 0 {
		return ""
	}
	j := strings.LastIndex(base[:i], "-")
	if j < 0 {
		return base[i+1:]
	}
	return base[j+1 : i]
}

// Build returns the build segment of the distribution, or "" when the name
// has no build segment.
func (d Dist) Build() string {
	base := d.Base()
	i := strings.LastIndex(base, "-")
	if i < 0 {
		return ""
	}
	if strings.LastIndex(base[:i], "-") < 0 {
		return ""
	}
	return base[i+1:]
}

// Filename returns the unlabeled archive filename of the distribution.
func (d Dist) Filename() string {
	return d.Base() + ArchiveSuffix
}

// Key returns the labeled archive filename, which is how index entries are
// keyed: the label prefix survives, the default channel stays bare.
func (d Dist) Key() string {
	return string(d) + ArchiveSuffix
}
