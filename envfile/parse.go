package envfile

import "strings"

type recordKind int

const (
	// rawRecord is passthrough text: blank lines, comment lines, lines
	// without '=' and anything else the parser could not claim. Serialized
	// byte-for-byte.
	rawRecord recordKind = iota
	// pairRecord is a key=value declaration. It may cover several physical
	// lines when the value is a quoted multi-line span.
	pairRecord
)

// A record is one unit of the document: its exact original text
// (terminators included) plus, for declarations, the key it defines.
type record struct {
	kind recordKind
	text string
	key  string
}

// parseRecords walks content line by line and produces the record sequence,
// reporting each parsed key/value through store. Lines inside an open
// quoted span are accumulated into a single declaration record. The walk
// never fails; anything unparseable becomes a raw record.
func parseRecords(content string, store func(key, value string)) []record {
	var (
		records []record
		inSpan  bool
		spanKey string
		spanVal strings.Builder
		spanRaw strings.Builder
	)
	closeSpan := func() {
		records = append(records, record{kind: pairRecord, text: spanRaw.String(), key: spanKey})
		store(spanKey, FormatValue(spanVal.String()))
		spanVal.Reset()
		spanRaw.Reset()
		inSpan = false
	}
	for _, phys := range splitPhysical(content) {
		line := strings.TrimSpace(cutComment(strings.TrimRight(phys, "\r\n")))
		if inSpan {
			spanRaw.WriteString(phys)
			if line == "" {
				continue
			}
			spanVal.WriteByte('\n')
			spanVal.WriteString(line)
			if endsWithQuote(line) {
				closeSpan()
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			records = append(records, record{kind: rawRecord, text: phys})
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			// No assignment on this line. Carry it through untouched.
			records = append(records, record{kind: rawRecord, text: phys})
			continue
		}
		key := strings.TrimSpace(line[:eq])
		val := strings.TrimSpace(line[eq+1:])
		if key == "" {
			records = append(records, record{kind: rawRecord, text: phys})
			continue
		}
		if opensSpan(val) {
			inSpan = true
			spanKey = key
			spanVal.WriteString(val)
			spanRaw.WriteString(phys)
			continue
		}
		records = append(records, record{kind: pairRecord, text: phys, key: key})
		store(key, FormatValue(val))
	}
	if inSpan {
		// Unterminated span at EOF: keep what accumulated.
		closeSpan()
	}
	return records
}

// splitPhysical splits content into physical lines, each keeping its own
// terminator. \n, \r\n and \r are all recognized, mixed freely.
func splitPhysical(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i+1])
			start = i + 1
		case '\r':
			end := i + 1
			if end < len(content) && content[end] == '\n' {
				end++
			}
			lines = append(lines, content[start:end])
			start = end
			i = end - 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// opensSpan reports whether a trimmed value starts a multi-line quoted
// span: it opens with a quote but does not close one on the same line.
func opensSpan(val string) bool {
	if val == "" {
		return false
	}
	first := val[0]
	if first != '"' && first != '\'' {
		return false
	}
	return !endsWithQuote(val) || len(val) == 1
}

func endsWithQuote(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == '"' || last == '\''
}
