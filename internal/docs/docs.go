// Package docs is the documentation collaborator of the pipeline: it
// turns a command's doc text into (summary, description) and extracts
// per-parameter help from `help:` struct tags. The core never parses
// documentation itself; it consumes this package's output.
package docs

import (
	"reflect"
	"strings"
)

// Split normalizes doc text and divides it into the command's summary
// and description. The summary is the first paragraph with its lines
// joined by single spaces; the description is the full dedented text.
func Split(text string) (summary, description string) {
	description = strings.TrimSpace(Dedent(text))
	if description == "" {
		return "", ""
	}
	var first []string
	for _, line := range strings.Split(description, "\n") {
		if strings.TrimSpace(line) == "" {
			break
		}
		first = append(first, strings.TrimSpace(line))
	}
	return strings.Join(first, " "), description
}

// Dedent strips the longest whitespace prefix common to all non-blank
// lines, so doc text written as an indented raw string literal reads
// flush left.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	prefix := ""
	found := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix, found = indent, true
			continue
		}
		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	if prefix == "" {
		return text
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(out, "\n")
}

// ParamHelp extracts the help text mapping for an argument struct,
// keyed by Go field name. A nil type yields an empty mapping.
func ParamHelp(t reflect.Type) map[string]string {
	help := make(map[string]string)
	if t == nil || t.Kind() != reflect.Struct {
		return help
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if text := field.Tag.Get("help"); text != "" {
			help[field.Name] = text
		}
	}
	return help
}
