package bpe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrCorruptRules reports a rule file that cannot be trusted: a malformed
// line, a blank symbol, or a premature end of input. Loading refuses to
// return a partial rule list because rule rank is positional.
var ErrCorruptRules = errors.New("bpe: corrupt rules")

// WriteRules serializes rules one per line as "left right". Line order is
// rank order, so a round trip preserves encoding behavior exactly.
func WriteRules(w io.Writer, rules []MergeRule) error {
	bw := bufio.NewWriter(w)
	for _, r := range rules {
		if _, err := fmt.Fprintf(bw, "%s %s\n", r.Left, r.Right); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveRules writes rules to path, replacing any previous file.
func SaveRules(path string, rules []MergeRule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRules(f, rules); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadRules parses a rule list written by WriteRules. Any malformed line
// aborts the load with ErrCorruptRules; no partial list is ever returned.
func ReadRules(r io.Reader) ([]MergeRule, error) {
	var rules []MergeRule
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		left, right, ok := strings.Cut(text, " ")
		if !ok || left == "" || right == "" || strings.ContainsRune(right, ' ') {
			return nil, fmt.Errorf("%w: line %d: %q", ErrCorruptRules, line, text)
		}
		rules = append(rules, MergeRule{Left: left, Right: right})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptRules, line, err)
	}
	return rules, nil
}

// LoadRules reads a rule file from disk.
func LoadRules(path string) ([]MergeRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRules(f)
}
