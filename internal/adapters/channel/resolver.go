// Package channel maps between channel URLs, channel labels, and the
// collection URLs the configured channels expand to.
package channel

import (
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
)

// Resolver implements ports.ChannelResolver over a resolved configuration.
type Resolver struct {
	cfg domain.Config
}

// NewResolver creates a Resolver.
func NewResolver(cfg domain.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Label derives the channel label for an archive or collection URL. The
// default channels yield the empty label, alias-hosted channels yield their
// short name, and anything else is labeled with its full channel URL.
func (r *Resolver) Label(url string) string {
	channel := channelURL(url)

	for _, def := range r.cfg.DefaultChannels {
		if channel == strings.TrimSuffix(def, "/") {
			return ""
		}
	}
	if alias := r.cfg.ChannelAlias; alias != "" && strings.HasPrefix(channel, alias) {
		if label := strings.Trim(channel[len(alias):], "/"); label != "" {
			return label
		}
	}
	return channel
}

// Collections expands the configured channels into collection URLs for one
// platform subdirectory, in priority order.
func (r *Resolver) Collections(platform string) []string {
	urls := make([]string, 0, len(r.cfg.Channels))
	for _, ch := range r.cfg.Channels {
		if ch == domain.DefaultChannelName {
			for _, def := range r.cfg.DefaultChannels {
				urls = append(urls, collectionURL(def, platform))
			}
			continue
		}
		if domain.IsURL(ch) {
			urls = append(urls, collectionURL(ch, platform))
			continue
		}
		urls = append(urls, collectionURL(r.cfg.ChannelAlias+ch, platform))
	}
	return urls
}

// IconURL returns the URL of a record's icon, hosted under the channel
// root next to the platform subdirectories. Records without an icon or a
// channel yield the empty string.
func (r *Resolver) IconURL(rec *domain.PackageRecord) string {
	if rec == nil || rec.Icon == "" || rec.Channel == "" {
		return ""
	}
	parent, _ := domain.SplitURL(strings.TrimSuffix(rec.Channel, "/"))
	return parent + "/icons/" + rec.Icon
}

// channelURL strips the filename and platform subdirectory off a URL,
// leaving the channel root.
func channelURL(url string) string {
	s := strings.TrimSuffix(url, "/")
	if strings.HasSuffix(s, domain.ArchiveSuffix) {
		s, _ = domain.SplitURL(s)
	}
	if parent, last := domain.SplitURL(s); domain.IsPlatformSubdir(last) {
		s = parent
	}
	return s
}

// collectionURL joins a channel root with a platform subdirectory. The
// result always ends in a slash.
func collectionURL(channel, platform string) string {
	return strings.TrimSuffix(channel, "/") + "/" + platform + "/"
}

var _ ports.ChannelResolver = (*Resolver)(nil)
