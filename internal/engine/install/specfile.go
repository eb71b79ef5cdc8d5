package install

import (
	"bufio"
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// ReadSpecFile loads explicit specification lines from a file, dropping
// blank lines and comments.
func ReadSpecFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open specification file"), "path", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read specification file"), "path", path)
	}
	return lines, nil
}
