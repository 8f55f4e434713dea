package envfile

import "testing"

func TestParseBasics(t *testing.T) {
	content := `# leading comment
A=1
B = 2

C=three four
D=a=b=c
`
	f := Parse(content)

	tests := []struct {
		key  string
		want string
	}{
		{"A", "1"},
		{"B", "2"},
		{"C", "three four"},
		// Values may contain further '=' characters; only the first splits.
		{"D", "a=b=c"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := f.Get(tt.key); got != tt.want {
				t.Errorf("Get(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
	if f.Len() != 4 {
		t.Errorf("Len() = %d, want 4", f.Len())
	}
}

func TestParseQuotedValues(t *testing.T) {
	tests := []struct {
		name string
		line string
		key  string
		want string
	}{
		{"double quoted", `A="hello world"`, "A", "hello world"},
		{"single quoted", `A='hello world'`, "A", "hello world"},
		{"escaped quote", `A="say \"hi\""`, "A", `say "hi"`},
		{"escaped backslash", `A="a\\b"`, "A", `a\b`},
		{"padded", `A=   spaced   `, "A", "spaced"},
		{"inline comment", `A=value # note`, "A", "value"},
		{"comment only value", `A=# note`, "A", ""},
		{"escaped hash unquoted", `A=a\#b`, "A", `a\#b`},
		{"hash inside quotes is still a comment", `A="a#b"`, "A", `"a`},
		{"lone quote value", `A="" # empty`, "A", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Parse(tt.line + "\n")
			if got := f.Get(tt.key); got != tt.want {
				t.Errorf("Get(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	f := Parse("# a comment\n\n   \n#B=1\nA=1\n")
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
	if f.Has("B") {
		t.Error("Has(B) = true for commented-out assignment")
	}
}

func TestParsePassthroughLines(t *testing.T) {
	content := "not an assignment\nA=1\n=nokey\n"
	f := Parse(content)
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
	// Unparseable lines survive serialization byte-for-byte.
	if got := f.Content(); got != content {
		t.Errorf("Content() = %q, want %q", got, content)
	}
}

func TestParseMultilineSpan(t *testing.T) {
	content := "A=\"first\nsecond\nthird\"\nB=2\n"
	f := Parse(content)
	if got := f.Get("A"); got != "first\nsecond\nthird" {
		t.Errorf("Get(A) = %q, want %q", got, "first\nsecond\nthird")
	}
	if got := f.Get("B"); got != "2" {
		t.Errorf("Get(B) = %q, want %q", got, "2")
	}
	if got := f.Content(); got != content {
		t.Errorf("Content() = %q, want %q", got, content)
	}
}

func TestParseSingleQuotedSpan(t *testing.T) {
	f := Parse("A='one\ntwo'\n")
	if got := f.Get("A"); got != "one\ntwo" {
		t.Errorf("Get(A) = %q, want %q", got, "one\ntwo")
	}
}

func TestParseUnterminatedSpan(t *testing.T) {
	// Best effort: an open quote at EOF keeps what accumulated.
	f := Parse("A=\"never\ncloses\n")
	if !f.Has("A") {
		t.Fatal("Has(A) = false for unterminated span")
	}
	if got := f.Get("A"); got != "\"never\ncloses" {
		t.Errorf("Get(A) = %q, want %q", got, "\"never\ncloses")
	}
}

func TestParseLineEndings(t *testing.T) {
	f := Parse("A=1\r\nB=2\rC=3\nD=4")
	for key, want := range map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"} {
		if got := f.Get(key); got != want {
			t.Errorf("Get(%s) = %q, want %q", key, got, want)
		}
	}
	// Mixed terminators are preserved on serialization.
	if got := f.Content(); got != "A=1\r\nB=2\rC=3\nD=4" {
		t.Errorf("Content() = %q", got)
	}
}

func TestGetLiteral(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
		want string
	}{
		{"plain", "A=1\n", "A", "1"},
		{"padded with comment", "A=  'v'  # note\n", "A", "  'v'  # note"},
		{"absent", "A=1\n", "B", ""},
		{"crlf trimmed", "A=raw\r\n", "A", "raw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Parse(tt.doc)
			if got := f.GetLiteral(tt.key); got != tt.want {
				t.Errorf("GetLiteral(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	f := Parse("A=1\nA=2\n")
	// The later assignment wins in the table; the key is listed once.
	if got := f.Get("A"); got != "2" {
		t.Errorf("Get(A) = %q, want %q", got, "2")
	}
	if keys := f.Keys(); len(keys) != 1 {
		t.Errorf("Keys() = %v, want one entry", keys)
	}
}
