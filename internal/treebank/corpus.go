package treebank

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// CanonicalExt marks files holding the full-sentence register, one
	// bracketed tree per line.
	CanonicalExt = ".canonical"
	// HeadlineExt marks the line-aligned compressed-register companion file.
	HeadlineExt = ".headline"
)

// SentencePair is one aligned canonical/headline sentence with its
// constituency parses. Either tree may be nil when the corresponding line
// held no parse; the driver skips such pairs.
type SentencePair struct {
	Newspaper     string
	SentenceID    string
	Canonical     *ParseTree
	Headline      *ParseTree
	CanonicalText string
	HeadlineText  string
}

// HeadlinePathFor returns the companion headline file for a canonical file.
func HeadlinePathFor(canonicalPath string) string {
	return strings.TrimSuffix(canonicalPath, CanonicalExt) + HeadlineExt
}

// LoadPairFile reads a canonical corpus file and its line-aligned headline
// companion, parsing one bracketed tree per line. Blank lines yield a nil
// tree. Lines that fail to parse also yield a nil tree; each such line is
// reported in the returned warnings so data loss stays observable.
//
// The newspaper identifier is the canonical file's base name without
// extension; sentence ids are "<newspaper>-<line number>".
func LoadPairFile(canonicalPath string) ([]*SentencePair, []error, error) {
	headlinePath := HeadlinePathFor(canonicalPath)

	canonicalLines, err := readLines(canonicalPath)
	if err != nil {
		return nil, nil, err
	}
	headlineLines, err := readLines(headlinePath)
	if err != nil {
		return nil, nil, err
	}

	if len(canonicalLines) != len(headlineLines) {
		return nil, nil, fmt.Errorf("misaligned corpus files: %s has %d lines, %s has %d",
			canonicalPath, len(canonicalLines), headlinePath, len(headlineLines))
	}

	newspaper := strings.TrimSuffix(filepath.Base(canonicalPath), CanonicalExt)

	var pairs []*SentencePair
	var warnings []error

	for i := range canonicalLines {
		pair := &SentencePair{
			Newspaper:  newspaper,
			SentenceID: fmt.Sprintf("%s-%d", newspaper, i+1),
		}

		if tree, err := parseLine(canonicalLines[i]); err != nil {
			warnings = append(warnings, fmt.Errorf("%s line %d (canonical): %w", canonicalPath, i+1, err))
		} else if tree != nil {
			pair.Canonical = tree
			pair.CanonicalText = tree.Text()
		}

		if tree, err := parseLine(headlineLines[i]); err != nil {
			warnings = append(warnings, fmt.Errorf("%s line %d (headline): %w", headlinePath, i+1, err))
		} else if tree != nil {
			pair.Headline = tree
			pair.HeadlineText = tree.Text()
		}

		pairs = append(pairs, pair)
	}

	return pairs, warnings, nil
}

// parseLine parses one corpus line; a blank line means "no parse available".
func parseLine(line string) (*ParseTree, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	return ParseBracket(line)
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
