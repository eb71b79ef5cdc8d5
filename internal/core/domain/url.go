package domain

import (
	"path/filepath"
	"strings"
)

// FileURLPrefix is the scheme prefix of local-file URLs.
const FileURLPrefix = "file://"

// IsURL reports whether the string carries a URL scheme. Bare filesystem
// paths, relative or absolute, do not.
func IsURL(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	for _, r := range s[:i] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// FileURL converts a local filesystem path to a canonical file URL. The
// path is made absolute first, so equal files yield equal URLs regardless
// of how they were spelled.
func FileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths need a separating slash after the scheme.
		p = "/" + p
	}
	return FileURLPrefix + p
}

// PathFromFileURL converts a file URL produced by FileURL back to a native
// filesystem path.
func PathFromFileURL(url string) string {
	p := strings.TrimPrefix(url, FileURLPrefix)
	if len(p) > 2 && p[0] == '/' && p[2] == ':' {
		// Strip the separating slash in front of a Windows drive letter.
		p = p[1:]
	}
	return filepath.FromSlash(p)
}

// SplitURL splits a URL into the collection part and the trailing filename.
func SplitURL(url string) (parent, filename string) {
	i := strings.LastIndex(url, "/")
	if i < 0 {
		return "", url
	}
	return url[:i], url[i+1:]
}
