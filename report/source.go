// Copyright © 2025 The whyerr authors

package report

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// SourceProvider returns source text for a file identifier. It backs both
// the context window shown in the report and the diagnostic renderer.
type SourceProvider interface {
	// Line returns the text of the 1-based line.
	Line(file string, line int) (string, error)

	// Window returns up to context lines before the 1-based line, the
	// line itself, and the 1-based number of the first returned line.
	Window(file string, line, context int) ([]string, int, error)
}

// FileProvider is a SourceProvider reading files through a pluggable read
// function, os.ReadFile when nil.
type FileProvider struct {
	ReadFile func(string) ([]byte, error)
}

var _ SourceProvider = (*FileProvider)(nil)

func (p *FileProvider) readLines(file string) ([]string, error) {
	read := p.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(file)
	if err != nil {
		return nil, err
	}
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// Line implements SourceProvider.
func (p *FileProvider) Line(file string, line int) (string, error) {
	lines, err := p.readLines(file)
	if err != nil {
		return "", err
	}
	if line < 1 || line > len(lines) {
		return "", fmt.Errorf("%s has no line %d", file, line)
	}
	return lines[line-1], nil
}

// Window implements SourceProvider.
func (p *FileProvider) Window(file string, line, context int) ([]string, int, error) {
	lines, err := p.readLines(file)
	if err != nil {
		return nil, 0, err
	}
	if line < 1 || line > len(lines) {
		return nil, 0, fmt.Errorf("%s has no line %d", file, line)
	}
	first := line - context
	if first < 1 {
		first = 1
	}
	return lines[first-1 : line], first, nil
}

// readable reports whether file names something a provider could read, as
// opposed to a pseudo-file like "<stdin>".
func readable(file string) bool {
	return file != "" && !strings.HasPrefix(file, "<")
}
