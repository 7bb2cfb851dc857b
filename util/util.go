// Package util holds small helpers shared by the CLI and the extractors.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pftv-cli/pftv/filesystem"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Quantify pairs a count with the right noun form, e.g. "1 link", "3 links".
func Quantify(count int, singular, plural string) string {
	return strconv.Itoa(count) + " " + lo.Ternary(count == 1, singular, plural)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TerminalSize reports the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FileStem strips the last extension from the base name, so "vidhost.com.lua" becomes "vidhost.com".
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ReGroups maps named capture groups of the first match to their values.
// Groups that did not participate in the match are omitted, so callers can tell
// "absent" from "matched empty" with the two-value map lookup.
func ReGroups(pattern *regexp.Regexp, str string) map[string]string {
	groups := make(map[string]string)
	match := pattern.FindStringSubmatchIndex(str)
	if match == nil {
		return groups
	}

	for i, name := range pattern.SubexpNames() {
		if i == 0 || name == "" || match[2*i] < 0 {
			continue
		}
		groups[name] = str[match[2*i]:match[2*i+1]]
	}
	return groups
}

// PrintErasable prints msg on the current line and returns a func that blanks it again.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Max returns the largest item, or the zero value when there are none.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Delete removes path, recursing into directories. A missing path is an error.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
