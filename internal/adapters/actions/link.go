package actions

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/zerr"
)

// prefixEntry is one parsed has_prefix manifest line: the placeholder
// embedded at build time and whether the file is text or binary.
type prefixEntry struct {
	placeholder string
	mode        string
}

// link materializes the extracted copy of dist into the prefix and writes
// its metadata record. Files are hard linked where possible; files that
// embed the build-time prefix are copied with the prefix rewritten.
func (e *Executor) link(prefix string, dist domain.Dist, index domain.Index) error {
	src := e.cache.ExtractedPath(dist)
	infoDir := filepath.Join(src, domain.InfoDirName)

	files, err := readLines(filepath.Join(infoDir, domain.InfoFilesName))
	if err != nil {
		return zerr.Wrap(err, "failed to read file manifest")
	}
	hasPrefix, err := readHasPrefix(filepath.Join(infoDir, domain.InfoHasPrefixName))
	if err != nil {
		return zerr.Wrap(err, "failed to read prefix manifest")
	}

	for _, f := range files {
		if err := e.linkFile(src, prefix, f, hasPrefix); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to link file"), "file", f)
		}
	}

	return e.writeMeta(prefix, dist, infoDir, files, index)
}

func (e *Executor) linkFile(src, prefix, name string, hasPrefix map[string]prefixEntry) error {
	from := filepath.Join(src, filepath.FromSlash(name))
	to := filepath.Join(prefix, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(to), domain.DirPerm); err != nil {
		return err
	}
	if _, err := os.Lstat(to); err == nil {
		// Leftovers of an interrupted earlier link make way.
		if err := os.Remove(to); err != nil {
			return err
		}
	}

	if entry, ok := hasPrefix[name]; ok {
		return rewritePrefix(from, to, entry, prefix)
	}

	info, err := os.Lstat(from)
	if err != nil {
		return err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(from)
		if err != nil {
			return err
		}
		return os.Symlink(target, to)
	}

	if err := os.Link(from, to); err != nil {
		// Cache and prefix on different filesystems fall back to a copy.
		return copyFile(from, to, info.Mode().Perm())
	}
	return nil
}

// rewritePrefix copies a file while replacing the build-time placeholder
// with the target prefix.
func rewritePrefix(from, to string, entry prefixEntry, prefix string) error {
	info, err := os.Stat(from)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(from) //nolint:gosec // Path is constructed from the trusted cache directory
	if err != nil {
		return err
	}

	if entry.mode == "binary" {
		data, err = binaryReplace(data, []byte(entry.placeholder), []byte(prefix))
		if err != nil {
			return err
		}
	} else {
		data = bytes.ReplaceAll(data, []byte(entry.placeholder), []byte(prefix))
	}

	return os.WriteFile(to, data, info.Mode().Perm())
}

// binaryReplace replaces the placeholder inside null-terminated strings,
// padding with null bytes so byte offsets in the binary stay valid. The
// target prefix must not be longer than the placeholder.
func binaryReplace(data, placeholder, prefix []byte) ([]byte, error) {
	if len(prefix) > len(placeholder) {
		return nil, zerr.With(zerr.New("target prefix longer than placeholder"),
			"placeholder", string(placeholder))
	}

	pat := regexp.MustCompile(regexp.QuoteMeta(string(placeholder)) + `[^\x00]*\x00`)
	out := pat.ReplaceAllFunc(data, func(m []byte) []byte {
		padding := (len(placeholder) - len(prefix)) * bytes.Count(m, placeholder)
		m = bytes.ReplaceAll(m, placeholder, prefix)
		return append(m, bytes.Repeat([]byte{0}, padding)...)
	})
	if len(out) != len(data) {
		return nil, zerr.New("binary replacement changed file size")
	}
	return out, nil
}

// writeMeta writes the environment metadata record for dist: the package
// record from the extracted info directory, enriched with the file
// manifest and the channel index entry when one is known.
func (e *Executor) writeMeta(prefix string, dist domain.Dist, infoDir string, files []string, index domain.Index) error {
	var meta domain.PackageRecord
	data, err := os.ReadFile(filepath.Join(infoDir, domain.InfoIndexName)) //nolint:gosec // Path is constructed from the trusted cache directory
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &meta); err != nil {
			return zerr.Wrap(err, "failed to parse package record")
		}
	case errors.Is(err, fs.ErrNotExist):
		// Tolerated; the record is rebuilt from the index entry alone.
	default:
		return zerr.Wrap(err, "failed to read package record")
	}

	if rec := index[dist.Key()]; rec != nil {
		meta.Channel = rec.Channel
		meta.URL = rec.URL
		meta.MD5 = rec.MD5
	}
	meta.Files = files

	if err := os.MkdirAll(domain.MetaDir(prefix), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create metadata directory")
	}
	out, err := json.MarshalIndent(&meta, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal metadata record")
	}
	if err := os.WriteFile(domain.MetaPath(prefix, dist), out, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write metadata record")
	}
	return nil
}

// unlink removes the files of a linked distribution from the prefix, then
// its metadata record. Directories left empty are pruned.
func (e *Executor) unlink(prefix string, dist domain.Dist) error {
	metaPath := domain.MetaPath(prefix, dist)
	data, err := os.ReadFile(metaPath) //nolint:gosec // Path is constructed from the target prefix
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.log.Warn(fmt.Sprintf("cannot unlink %s: no metadata record in %s", dist, prefix))
			return nil
		}
		return zerr.Wrap(err, "failed to read metadata record")
	}
	var meta domain.PackageRecord
	if err := json.Unmarshal(data, &meta); err != nil {
		return zerr.Wrap(err, "failed to parse metadata record")
	}

	dirs := make(map[string]struct{})
	for _, f := range meta.Files {
		path := filepath.Join(prefix, filepath.FromSlash(f))
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to remove file"), "file", f)
		}
		dirs[filepath.Dir(path)] = struct{}{}
	}
	pruneDirs(prefix, dirs)

	if err := os.Remove(metaPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to remove metadata record")
	}
	return nil
}

// pruneDirs removes directories that became empty, deepest first,
// stopping at the prefix itself. Non-empty directories stay.
func pruneDirs(prefix string, dirs map[string]struct{}) {
	paths := make([]string, 0, len(dirs))
	for d := range dirs {
		paths = append(paths, d)
	}
	sort.Slice(paths, func(i, j int) bool { return len(paths[i]) > len(paths[j]) })

	for _, d := range paths {
		for d != prefix && strings.HasPrefix(d, prefix) {
			if err := os.Remove(d); err != nil {
				break
			}
			d = filepath.Dir(d)
		}
	}
}

// readLines returns the non-empty lines of a text file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is constructed from the trusted cache directory
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// readHasPrefix parses the optional has_prefix manifest. Each line is
// either "placeholder mode path" or a bare path, which gets the default
// placeholder in text mode. A missing manifest is an empty one.
func readHasPrefix(path string) (map[string]prefixEntry, error) {
	lines, err := readLines(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entries := make(map[string]prefixEntry, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		for i, f := range fields {
			fields[i] = strings.Trim(f, `"'`)
		}
		if len(fields) == 3 {
			entries[fields[2]] = prefixEntry{placeholder: fields[0], mode: fields[1]}
		} else {
			entries[line] = prefixEntry{placeholder: domain.PrefixPlaceholder, mode: "text"}
		}
	}
	return entries, nil
}

func copyFile(from, to string, perm fs.FileMode) error {
	in, err := os.Open(from) //nolint:gosec // Path is constructed from the trusted cache directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) //nolint:gosec // Path is constructed from the target prefix
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
