package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 60 * time.Second

// Client implements ports.IndexClient: it fetches per-collection repodata
// over HTTP or from local file collections, keeping an on-disk copy per
// collection so previously seen indexes survive going offline.
type Client struct {
	cacheDir   string
	httpClient *http.Client
}

// NewClient creates an index client caching under cacheDir.
func NewClient(cacheDir string) (*Client, error) {
	return newClientWithHTTP(cacheDir, &http.Client{Timeout: httpClientTimeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(cacheDir string, httpClient *http.Client) (*Client, error) {
	cleanDir := filepath.Clean(cacheDir)
	if err := os.MkdirAll(cleanDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create index cache directory")
	}
	return &Client{
		cacheDir:   cleanDir,
		httpClient: httpClient,
	}, nil
}

// repodata is the wire format of a collection index.
type repodata struct {
	Packages map[string]domain.PackageRecord `json:"packages"`
}

// FetchIndex retrieves one collection's index, keyed by labeled filename.
// A collection without an index file yields an empty index. When the
// collection is unreachable, a previously cached copy is used instead.
func (c *Client) FetchIndex(ctx context.Context, collectionURL, labelPrefix string) (domain.Index, error) {
	raw, err := c.fetchRepodata(ctx, collectionURL)
	if err != nil {
		cached, cacheErr := os.ReadFile(c.cachePath(collectionURL))
		if cacheErr != nil {
			return nil, err
		}
		raw = cached
	} else if raw != nil {
		// Refresh the on-disk copy. Failing to cache never fails the fetch.
		_ = c.atomicWriteFile(c.cachePath(collectionURL), raw)
	}

	if raw == nil {
		return domain.Index{}, nil
	}

	var data repodata
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse repodata"), "url", collectionURL)
	}

	index := make(domain.Index, len(data.Packages))
	for fn, rec := range data.Packages {
		rec.Channel = collectionURL
		rec.URL = collectionURL + fn
		index[labelPrefix+fn] = &rec
	}
	return index, nil
}

// fetchRepodata returns the raw repodata bytes, or nil when the collection
// has no index file.
func (c *Client) fetchRepodata(ctx context.Context, collectionURL string) ([]byte, error) {
	if strings.HasPrefix(collectionURL, domain.FileURLPrefix) {
		dir := domain.PathFromFileURL(collectionURL)
		data, err := os.ReadFile(filepath.Join(dir, domain.RepodataFileName))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to read local repodata"), "url", collectionURL)
		}
		return data, nil
	}

	url := collectionURL + domain.RepodataFileName
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build repodata request"), "url", url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to fetch repodata"), "url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.With(zerr.New("unexpected repodata response"),
			"status_code", resp.StatusCode), "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read repodata response"), "url", url)
	}
	return body, nil
}

// cachePath returns the on-disk cache file for one collection URL.
func (c *Client) cachePath(collectionURL string) string {
	return filepath.Join(c.cacheDir, fmt.Sprintf("%016x.json", xxhash.Sum64String(collectionURL)))
}

// atomicWriteFile writes data through a temp file and renames it into place.
func (c *Client) atomicWriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(c.cacheDir, "repodata-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

var _ ports.IndexClient = (*Client)(nil)
