package actions

import (
	"context"
	"crypto/md5" //nolint:gosec // MD5 is the checksum format archives carry
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// fetchPhase downloads all scheduled archives, a bounded number at a time.
// The first failure cancels the remaining downloads.
func (e *Executor) fetchPhase(ctx context.Context, steps []domain.Dist, index domain.Index) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for _, dist := range steps {
		g.Go(func() error {
			_, vtx := e.tel.Record(ctx, fmt.Sprintf("%s %s", domain.OpFetch, dist))
			err := e.fetch(ctx, vtx, dist, index)
			vtx.Complete(err)
			if err != nil {
				return stepError(err, domain.OpFetch, dist)
			}
			return nil
		})
	}

	return g.Wait()
}

// fetch downloads one archive into its cache slot and records the source
// URL in the ledger.
func (e *Executor) fetch(ctx context.Context, vtx ports.Vertex, dist domain.Dist, index domain.Index) error {
	rec := index[dist.Key()]
	if rec == nil {
		return domain.ErrPackageNotInIndex
	}
	url := rec.URL
	if url == "" {
		if rec.Channel == "" {
			return domain.ErrPackageNotInIndex
		}
		url = strings.TrimSuffix(rec.Channel, "/") + "/" + dist.Filename()
	}

	body, err := e.open(ctx, url)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	n, err := e.download(body, dist, rec.MD5)
	if err != nil {
		return err
	}
	vtx.Log(domain.LogLevelInfo, fmt.Sprintf("fetched %s (%d bytes)", dist.Filename(), n))

	return e.cache.RecordURL(url, dist)
}

// open returns the archive byte stream for a fetch URL. Local file URLs
// bypass HTTP.
func (e *Executor) open(ctx context.Context, url string) (io.ReadCloser, error) {
	if strings.HasPrefix(url, domain.FileURLPrefix) {
		f, err := os.Open(domain.PathFromFileURL(url)) //nolint:gosec // URL comes from the explicit specification
		if err != nil {
			return nil, zerr.Wrap(err, "failed to open local archive")
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build download request"), "url", url)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to download archive"), "url", url)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, zerr.With(zerr.With(zerr.New("unexpected download response"),
			"status_code", resp.StatusCode), "url", url)
	}
	return resp.Body, nil
}

// download streams the archive into a temp file, verifies the checksum
// when one is expected, and moves the file into its slot atomically.
func (e *Executor) download(r io.Reader, dist domain.Dist, wantMD5 string) (int64, error) {
	dst := e.cache.ArchivePath(dist)

	tmp, err := os.CreateTemp(filepath.Dir(dst), "fetch-*"+domain.ArchiveSuffix)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to create temp archive")
	}
	defer func() {
		// Best effort cleanup on failure. After a successful rename the
		// temp file no longer exists.
		if _, statErr := os.Stat(tmp.Name()); statErr == nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	h := md5.New() //nolint:gosec // Integrity check against index checksums, not security
	n, err := io.Copy(io.MultiWriter(tmp, h), r)
	if err != nil {
		_ = tmp.Close()
		return 0, zerr.Wrap(err, "failed to write archive")
	}
	if err := tmp.Close(); err != nil {
		return 0, zerr.Wrap(err, "failed to close archive")
	}

	if wantMD5 != "" {
		got := hex.EncodeToString(h.Sum(nil))
		if got != wantMD5 {
			return 0, zerr.With(zerr.With(domain.ErrChecksumMismatch,
				"expected", wantMD5), "actual", got)
		}
	}

	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return 0, zerr.Wrap(err, "failed to set archive permissions")
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return 0, zerr.Wrap(err, "failed to move archive into cache")
	}
	return n, nil
}
