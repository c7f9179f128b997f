// Package vocab parses the unit-list text format used for vocabulary files.
//
// The format is line oriented:
//
//	===          starts a new unit
//	<title>
//	+++          promotes the previous line to the unit title
//	---          starts a word group inside the unit
//	<word>       any other non-blank line is a word in the current group
package vocab

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Unit is one vocabulary unit: a title and its word groups.
type Unit struct {
	Title  string     `json:"title"`
	Groups [][]string `json:"groups"`
}

// ParseFile parses the vocabulary file at path. A missing file yields an
// empty slice, not an error.
func ParseFile(path string) ([]Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Unit{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses the unit-list format from r.
func Parse(r io.Reader) ([]Unit, error) {
	units := []Unit{}
	var current *Unit
	var group []string
	inGroup := false
	previousLine := ""

	flushGroup := func() {
		if inGroup && current != nil {
			current.Groups = append(current.Groups, group)
			group = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "==="):
			flushGroup()
			inGroup = false
			if current != nil {
				units = append(units, *current)
			}
			current = &Unit{Groups: [][]string{}}
			previousLine = ""
		case strings.HasPrefix(line, "+++"):
			if current != nil && previousLine != "" {
				current.Title = previousLine
				previousLine = ""
			}
		case strings.HasPrefix(line, "---"):
			flushGroup()
			inGroup = true
			group = []string{}
		default:
			previousLine = line
			if inGroup && current != nil && current.Title != "" {
				group = append(group, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flushGroup()
	if current != nil {
		units = append(units, *current)
	}
	return units, nil
}
