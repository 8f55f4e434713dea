// Package envfile reads, edits, and rewrites ".env"-style files while
// preserving the surrounding content. Comments, blank lines, ordering and
// unrecognized lines are carried through untouched; only the lines a caller
// actually sets or unsets are rewritten. It is an editor, not a runtime
// configuration reader: no interpolation, no type coercion, one documented
// quoting dialect.
package envfile

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	// ErrNoDestination is returned by Save when neither a source path nor an
	// explicit destination is known.
	ErrNoDestination = errors.New("envfile: no destination path")

	// ErrInvalidKey is returned when adding a new variable whose name
	// contains characters outside letters, digits, underscore and dot.
	ErrInvalidKey = errors.New("envfile: invalid key")
)

// keyName is the naming rule for new keys. Keys already present in a loaded
// document are never re-validated.
var keyName = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// A File is a .env document under edit. It holds the original text as an
// ordered sequence of line records plus a variable table derived from them.
// The zero value is not usable; call New, Parse or Load.
//
// A File is not safe for concurrent use. The only storage touchpoint is
// Save/SaveAs.
type File struct {
	records []record
	vars    map[string]string
	keys    []string
	path    string
	changed bool
}

// New returns an empty document with no source path.
func New() *File {
	return &File{vars: make(map[string]string)}
}

// Load reads the file at path and parses it. A missing or unreadable file is
// an error; use New to start from nothing.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("envfile: read %s: %w", path, err)
	}
	f := Parse(string(data))
	f.path = path
	return f, nil
}

// Parse parses content into a document with no source path. Parsing is
// best-effort and never fails: malformed lines are kept verbatim as
// passthrough text and contribute nothing to the variable table.
func Parse(content string) *File {
	f := New()
	f.records = parseRecords(content, f.setParsed)
	return f
}

// setParsed records a parsed key without touching the changed flag.
func (f *File) setParsed(key, value string) {
	if _, ok := f.vars[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.vars[key] = value
}

// Path returns the path the document was loaded from, or "".
func (f *File) Path() string { return f.path }

// Has reports whether key is present in the document.
func (f *File) Has(key string) bool {
	_, ok := f.vars[key]
	return ok
}

// Get returns the parsed value for key, or "" when absent. The value is the
// formatted form: comments cut, quotes stripped, escapes resolved.
func (f *File) Get(key string) string {
	return f.vars[key]
}

// GetLiteral returns the raw right-hand side of the first declaration of
// key, exactly as it appears in the document (quotes, padding and trailing
// comment included), or "" when absent.
func (f *File) GetLiteral(key string) string {
	for _, r := range f.records {
		if r.kind == pairRecord && r.key == key {
			if i := strings.IndexByte(r.text, '='); i >= 0 {
				return strings.TrimRight(r.text[i+1:], "\r\n")
			}
		}
	}
	return ""
}

// Keys returns the variable names in parse/insertion order.
func (f *File) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

// Values returns a copy of the variable table.
func (f *File) Values() map[string]string {
	vars := make(map[string]string, len(f.vars))
	for k, v := range f.vars {
		vars[k] = v
	}
	return vars
}

// Len returns the number of variables in the document.
func (f *File) Len() int { return len(f.vars) }

// Changed reports whether any Set or Unset has been applied since the
// document was created. A successful Save clears it again, so an unforced
// second Save is a no-op.
func (f *File) Changed() bool { return f.changed }

// Content returns the full document text. Records never touched by an edit
// serialize byte-for-byte, original line terminators included.
func (f *File) Content() string {
	var sb strings.Builder
	for _, r := range f.records {
		sb.WriteString(r.text)
	}
	return sb.String()
}

// Set stores key=value, quoting the value only when it needs it (see
// EscapeValue). An existing key has its declaration rewritten in place; a
// key whose value spans multiple lines collapses to a single rewritten
// line. A new key is validated against the naming rule and appended on its
// own line. On failure the document is left unmodified.
func (f *File) Set(key, value string) error {
	return f.set(key, value, false)
}

// SetQuoted is Set with quoting forced regardless of content.
func (f *File) SetQuoted(key, value string) error {
	return f.set(key, value, true)
}

// SetAll applies Set for every entry of values, in map iteration order.
// There is no per-entry force-quote. The first failure aborts.
func (f *File) SetAll(values map[string]string) error {
	for key, value := range values {
		if err := f.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) set(key, value string, forceQuote bool) error {
	line := key + "=" + EscapeValue(value, forceQuote) + "\n"
	if f.Has(key) {
		// Rewrite every declaration of the key; duplicates all get the new
		// value so the table and the text cannot disagree.
		for i, r := range f.records {
			if r.kind == pairRecord && r.key == key {
				f.records[i].text = line
			}
		}
	} else {
		if !keyName.MatchString(key) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		f.ensureTerminated()
		f.records = append(f.records, record{kind: pairRecord, text: line, key: key})
		f.keys = append(f.keys, key)
	}
	// The table keeps the caller's value, not the escaped-for-storage form.
	f.vars[key] = value
	f.changed = true
	return nil
}

// ensureTerminated appends a newline to the last record if the document does
// not already end with a line terminator.
func (f *File) ensureTerminated() {
	n := len(f.records)
	if n == 0 {
		return
	}
	last := f.records[n-1].text
	if !strings.HasSuffix(last, "\n") && !strings.HasSuffix(last, "\r") {
		f.records[n-1].text += "\n"
	}
}

// Unset removes every declaration of key from the document and the key from
// the variable table. Unsetting an absent key is a no-op, not an error, and
// leaves the document and the changed flag untouched.
func (f *File) Unset(key string) {
	if !f.Has(key) {
		return
	}
	kept := f.records[:0]
	for _, r := range f.records {
		if r.kind == pairRecord && r.key == key {
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	delete(f.vars, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
	f.changed = true
}
