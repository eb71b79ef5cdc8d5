package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseExplicitSpec(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		location string
		md5      string
	}{
		{
			name:     "url without checksum",
			line:     "https://repo.anaconda.com/pkgs/main/linux-64/zlib-1.2.8-0.tar.bz2",
			location: "https://repo.anaconda.com/pkgs/main/linux-64/zlib-1.2.8-0.tar.bz2",
			md5:      "",
		},
		{
			name:     "url with checksum anchor",
			line:     "https://repo.anaconda.com/pkgs/main/linux-64/zlib-1.2.8-0.tar.bz2:#d1a4e07dea180b5eb40a6d61032881a6",
			location: "https://repo.anaconda.com/pkgs/main/linux-64/zlib-1.2.8-0.tar.bz2",
			md5:      "d1a4e07dea180b5eb40a6d61032881a6",
		},
		{
			name:     "local path",
			line:     "/tmp/downloads/readline-6.2-2.tar.bz2",
			location: "/tmp/downloads/readline-6.2-2.tar.bz2",
			md5:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := domain.ParseExplicitSpec(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.location, spec.Location)
			assert.Equal(t, tt.md5, spec.MD5)
		})
	}
}

func TestParseExplicitSpec_NotAnArchive(t *testing.T) {
	_, err := domain.ParseExplicitSpec("https://example.com/zlib-1.2.8-0.zip")
	require.ErrorIs(t, err, domain.ErrNotAnArchive)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "https://example.com/zlib-1.2.8-0.zip", zErr.Metadata()["spec"])
}

func TestParseExplicitSpec_ChecksumAnchorIsFirstMatch(t *testing.T) {
	// Anything after the first anchor belongs to the digest, so a location
	// containing the anchor itself cannot round-trip. The parser cuts at
	// the first occurrence, matching the list format.
	spec, err := domain.ParseExplicitSpec("/pkgs/a-1-0.tar.bz2:#abc:#def")
	require.NoError(t, err)
	assert.Equal(t, "/pkgs/a-1-0.tar.bz2", spec.Location)
	assert.Equal(t, "abc:#def", spec.MD5)
}
