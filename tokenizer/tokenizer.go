package tokenizer

/////////////////////////////////////////////////////////////////////////////
// MODE
/////////////////////////////////////////////////////////////////////////////

// Mode selects how word boundaries are detected.
type Mode int

const (
	// EntireWords keeps a maximal run of name characters as one word.
	EntireWords Mode = iota
	// WordsInCamelCase additionally ends a word before an internal
	// upper-case letter (fooBar -> foo, Bar).
	WordsInCamelCase
)

func (m Mode) String() string {
	switch m {
	case EntireWords:
		return "EntireWords"
	case WordsInCamelCase:
		return "WordsInCamelCase"
	default:
		return "Mode(unknown)"
	}
}

/////////////////////////////////////////////////////////////////////////////
// TOKENIZER
/////////////////////////////////////////////////////////////////////////////

// Occurrence is one tokenized word at a specific 0-based line.
type Occurrence struct {
	Word string `json:"word"`
	Line int    `json:"line"`
}

type Tokenizer struct {
	input []byte
	pos   int
	line  int
	mode  Mode
}

func NewTokenizer(input []byte, mode Mode) *Tokenizer {
	return &Tokenizer{
		input: input,
		pos:   0,
		line:  0,
		mode:  mode,
	}
}

// isDelimiter reports whether c cannot be part of a name.
// Classification is byte-wise ASCII: multi-byte UTF-8 sequences delimit.
func isDelimiter(c byte) bool {
	allowedInName := c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
	return !allowedInName
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func (t *Tokenizer) isEndOfWord(c byte) bool {
	if t.mode == WordsInCamelCase {
		return isDelimiter(c) || isUpper(c)
	}
	return isDelimiter(c)
}

// Tokenize scans the whole input eagerly and returns every word with the
// line it starts on. Lines are counted from the newlines skipped between
// words; a word never contains a newline.
func (t *Tokenizer) Tokenize() []Occurrence {
	occurrences := make([]Occurrence, 0)

	for {
		start := t.skipDelimiters()
		if start < 0 {
			break
		}
		end := t.scanWord(start)
		occurrences = append(occurrences, Occurrence{
			Word: string(t.input[start:end]),
			Line: t.line,
		})
	}

	return occurrences
}

// skipDelimiters advances to the next word start, counting newlines on the
// way, and returns its position (-1 at end of input).
func (t *Tokenizer) skipDelimiters() int {
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if !isDelimiter(c) {
			return t.pos
		}
		if c == '\n' {
			t.line++
		}
		t.pos++
	}
	return -1
}

// scanWord returns the end of the word beginning at start. The scan begins
// one byte past start, so the first byte is never a split point even when
// upper-case.
func (t *Tokenizer) scanWord(start int) int {
	t.pos = start + 1
	for t.pos < len(t.input) && !t.isEndOfWord(t.input[t.pos]) {
		t.pos++
	}
	return t.pos
}
