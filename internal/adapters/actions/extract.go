package actions

import (
	"archive/tar"
	"compress/bzip2"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/zerr"
)

// extract unpacks the cached archive of dist into its extraction slot.
// Archives are bzip2-compressed tarballs.
func (e *Executor) extract(dist domain.Dist) error {
	archive, ok := e.cache.Fetched(dist)
	if !ok {
		return domain.ErrArchiveMissing
	}
	root := e.cache.ExtractedPath(dist)

	f, err := os.Open(archive) //nolint:gosec // Path is constructed from the trusted cache directory
	if err != nil {
		return zerr.Wrap(err, "failed to open archive")
	}
	defer func() { _ = f.Close() }()

	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create extraction directory")
	}

	tr := tar.NewReader(bzip2.NewReader(f))
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read archive entry")
		}
		if err := writeEntry(root, hdr, tr); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to extract archive entry"), "entry", hdr.Name)
		}
	}
}

// writeEntry materializes one tar entry under root. Entries that would
// escape the extraction root are rejected.
func writeEntry(root string, hdr *tar.Header, r io.Reader) error {
	name := filepath.FromSlash(hdr.Name)
	if !filepath.IsLocal(name) {
		return zerr.New("entry path escapes extraction root")
	}
	path := filepath.Join(root, name)

	switch hdr.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(path, fs.FileMode(hdr.Mode).Perm()|0o700)
	case tar.TypeSymlink:
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return err
		}
		return os.Symlink(hdr.Linkname, path)
	case tar.TypeLink:
		target := filepath.FromSlash(hdr.Linkname)
		if !filepath.IsLocal(target) {
			return zerr.New("entry link target escapes extraction root")
		}
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return err
		}
		return os.Link(filepath.Join(root, target), path)
	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return err
		}
		out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fs.FileMode(hdr.Mode).Perm()) //nolint:gosec // Entry path is validated above
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, r); err != nil { //nolint:gosec // Archive sizes are bounded by the channel index
			_ = out.Close()
			return err
		}
		return out.Close()
	default:
		// Package archives carry only files, directories and links.
		return nil
	}
}
