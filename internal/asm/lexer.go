package asm

import "strings"

// stripComment drops everything from the first '#' onward and trims
// surrounding whitespace.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// splitFields splits a comma-separated operand list, trimming each
// field. An empty input yields no fields.
func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}
	return fields
}

// splitMnemonic separates a line's leading whitespace-delimited token
// (the mnemonic or directive name) from the rest of the line.
func splitMnemonic(line string) (head, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

func isDirectiveLine(line string) bool {
	return len(line) > 0 && line[0] == '.'
}

// stripLabels peels off zero or more "label:" prefixes from the front
// of a line, in source order, returning each label name and what
// remains of the line after removing all of them. Several labels may
// share one address ("L1: L2: add ...").
func stripLabels(line string) (labels []string, rest string) {
	for {
		i := strings.IndexByte(line, ':')
		if i < 0 {
			break
		}
		name := strings.TrimSpace(line[:i])
		if name != "" {
			labels = append(labels, name)
		}
		line = strings.TrimSpace(line[i+1:])
	}
	return labels, line
}
