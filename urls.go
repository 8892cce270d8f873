// ABOUTME: URL list loading for batch discovery inputs
// ABOUTME: Reads newline-delimited URL files, skipping blanks and comments

package rssminer

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadURLs loads URLs from a newline-delimited text file. Whitespace is
// trimmed, blank lines and lines beginning with '#' are skipped.
func ReadURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewError(ErrorTypeIO, "failed to read URL file").WithCause(err)
	}
	defer file.Close()

	urls, err := ReadURLsFrom(file)
	if err != nil {
		return nil, err
	}
	return urls, nil
}

// ReadURLsFrom reads URLs from r with the same line rules as ReadURLs
func ReadURLsFrom(r io.Reader) ([]string, error) {
	urls := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, NewError(ErrorTypeIO, "failed to read URL list").WithCause(err)
	}
	return urls, nil
}
