package tclscan

// reservedWords is the set of Tcl/Tk command and builtin spellings that get
// the ReservedWord kind. Exact match, case-sensitive. "unkown" (sic) is the
// spelling renderers have always keyed on and is kept as-is.
var reservedWords = map[string]bool{
	"append": true, "array": true, "auto_mkindex": true, "concat": true,
	"console": true, "eval": true, "expr": true, "format": true,
	"global": true, "set": true, "trace": true, "unset": true,
	"upvar": true, "join": true, "lappend": true, "lindex": true,
	"linsert": true, "list": true, "llength": true, "lrange": true,
	"lreplace": true, "lsearch": true, "lsort": true, "split": true,
	"scan": true, "string": true, "regexp": true, "regsub": true,
	"if": true, "else": true, "elseif": true, "switch": true,
	"for": true, "foreach": true, "while": true, "break": true,
	"continue": true, "proc": true, "return": true, "source": true,
	"unkown": true, "uplevel": true, "cd": true, "close": true,
	"eof": true, "file": true, "flush": true, "gets": true,
	"glob": true, "open": true, "read": true, "puts": true,
	"pwd": true, "seek": true, "tell": true, "catch": true,
	"error": true, "exec": true, "pid": true, "after": true,
	"time": true, "exit": true, "history": true, "rename": true,
	"info": true, "ceil": true, "floor": true, "round": true,
	"incr": true, "hypot": true, "abs": true, "acos": true,
	"cos": true, "cosh": true, "asin": true, "sin": true,
	"sinh": true, "atan": true, "atan2": true, "tan": true,
	"tanh": true, "log": true, "log10": true, "fmod": true,
	"pow": true, "sqrt": true, "double": true, "int": true,
	"bind": true, "button": true, "canvas": true, "checkbutton": true,
	"destroy": true, "entry": true, "focus": true, "frame": true,
	"grab": true, "image": true, "label": true, "listbox": true,
	"lower": true, "menu": true, "menubutton": true, "message": true,
	"option": true, "pack": true, "placer": true, "radiobutton": true,
	"raise": true, "scale": true, "scrollbar": true, "selection": true,
	"send": true, "text": true, "tk": true, "tkerror": true,
	"tkwait": true, "toplevel": true, "update": true, "winfo": true,
	"wm": true,
}

// IsReservedWord reports whether word is one of the highlighted Tcl/Tk
// command spellings.
func IsReservedWord(word string) bool {
	return reservedWords[word]
}

// character classes; the scanner works on bytes, bytes >= 0x80 (any UTF-8
// multibyte sequence) count as letters so non-ASCII identifiers stay one token

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b >= 0x80
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func isIdentStart(b byte) bool {
	return isLetter(b) || b == '_' || b == '$'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f'
}

func isBracket(b byte) bool {
	return b == '(' || b == ')' || b == '{' || b == '}' || b == '[' || b == ']'
}

func isPunctuation(b byte) bool {
	return b == ';' || b == ',' || b == '.'
}

func isOperatorStart(b byte) bool {
	switch b {
	case '=', '!', '+', '-', '*', '/', '>', '<', '%', '&', '|', '^', '~':
		return true
	}
	return false
}

// isNonSeparator defines the catch-all error grammars: anything that is not
// whitespace, a bracket, the ; , . punctuation, a string quote, or an
// operator symbol.
func isNonSeparator(b byte) bool {
	return !isWhitespace(b) && !isBracket(b) && !isPunctuation(b) &&
		b != '"' && !isOperatorStart(b)
}

type action uint8

const (
	actContinue action = iota
	// actTerminateLine: emit the token, then the sentinel, and stop scanning
	// the line even if characters remain.
	actTerminateLine
)

// match is one rule's verdict at a position. n == 0 means no match.
type match struct {
	n    int
	kind Kind
	act  action
}

type rule struct {
	name   string
	states uint32 // bitmask of StateIDs the rule is active in
	apply  func(buf []byte, pos, end int) match
}

const inInitial = uint32(1) << uint(StateInitial)

// ruleTable is tried in full at every position: the greatest match length
// wins, and among equal lengths the earliest declared rule wins. The
// declaration order is load-bearing: identifiers before the error catch-all,
// the comment before the catch-all, number errors before identifier errors.
// Reserved words are not a separate table entry: the identifier rule checks
// the matched spelling against reservedWords, which is equivalent to
// declaring every keyword as a literal rule ahead of the identifier rule.
var ruleTable = []rule{
	{"identifier", inInitial, matchIdentifier},
	{"whitespace", inInitial, matchWhitespace},
	{"string", inInitial, matchString},
	{"comment", inInitial, matchComment},
	{"separator", inInitial, matchSeparator},
	{"punctuation", inInitial, matchPunctuation},
	{"operator", inInitial, matchOperator},
	{"decimal", inInitial, matchDecimalInt},
	{"hexoctal", inInitial, matchHexOctalInt},
	{"float", inInitial, matchFloat},
	{"badnumber", inInitial, matchNumberError},
	{"badident", inInitial, matchIdentError},
	{"catchall", inInitial, matchCatchAll},
}

// matchIdentifier scans IdentifierStart IdentifierPart* and reclassifies
// exact reserved-word spellings. Identifier parts formally also admit a
// u-plus-4-hex-digits escape; u is a letter and hex digits are letters or
// digits, so the plain part classes already cover it.
func matchIdentifier(buf []byte, pos, end int) match {
	if !isIdentStart(buf[pos]) {
		return match{}
	}
	i := pos + 1
	for i < end && isIdentPart(buf[i]) {
		i++
	}
	kind := Identifier
	if reservedWords[string(buf[pos:i])] {
		kind = ReservedWord
	}
	return match{n: i - pos, kind: kind}
}

// matchWhitespace consumes a whole run of space/tab/form-feed as one token.
func matchWhitespace(buf []byte, pos, end int) match {
	i := pos
	for i < end && isWhitespace(buf[i]) {
		i++
	}
	return match{n: i - pos, kind: Whitespace}
}

// matchString scans a double-quoted literal. A backslash escapes exactly one
// following character of any kind, including a quote. A missing closing quote
// turns the rest of the line into one unterminated-string error token and
// ends the line.
func matchString(buf []byte, pos, end int) match {
	if buf[pos] != '"' {
		return match{}
	}
	i := pos + 1
	for i < end {
		switch buf[i] {
		case '"':
			return match{n: i + 1 - pos, kind: StringLiteral}
		case '\\':
			if i+1 >= end {
				return match{n: end - pos, kind: UnterminatedStringError, act: actTerminateLine}
			}
			i += 2
		default:
			i++
		}
	}
	return match{n: end - pos, kind: UnterminatedStringError, act: actTerminateLine}
}

// matchComment swallows # to end of line as a single token and ends the line.
func matchComment(buf []byte, pos, end int) match {
	if buf[pos] != '#' {
		return match{}
	}
	return match{n: end - pos, kind: LineComment, act: actTerminateLine}
}

func matchSeparator(buf []byte, pos, end int) match {
	if isBracket(buf[pos]) {
		return match{n: 1, kind: Separator}
	}
	return match{}
}

// matchPunctuation classifies ; , . as Identifier tokens. They have never
// been separators or operators in this grammar and renderers color on that,
// so the quirk stays.
func matchPunctuation(buf []byte, pos, end int) match {
	if isPunctuation(buf[pos]) {
		return match{n: 1, kind: Identifier}
	}
	return match{}
}

func matchOperator(buf []byte, pos, end int) match {
	b := buf[pos]
	if !isOperatorStart(b) {
		return match{}
	}
	if (b == '>' || b == '<') && pos+1 < end && buf[pos+1] == '=' {
		return match{n: 2, kind: Operator}
	}
	return match{n: 1, kind: Operator}
}

// matchDecimalInt scans 0 or a nonzero digit followed by digits, with an
// optional l/L suffix. A lone 0 also matches the hex/octal rule at the same
// length; this rule is declared first, so 0 classifies as decimal.
func matchDecimalInt(buf []byte, pos, end int) match {
	i := pos
	if buf[i] == '0' {
		i++
	} else if buf[i] >= '1' && buf[i] <= '9' {
		i++
		for i < end && isDigit(buf[i]) {
			i++
		}
	} else {
		return match{}
	}
	if i < end && (buf[i] == 'l' || buf[i] == 'L') {
		i++
	}
	return match{n: i - pos, kind: IntegerLiteral}
}

// matchHexOctalInt scans 0x/0X plus hex digits, or 0 plus octal digits,
// with an optional l/L suffix.
func matchHexOctalInt(buf []byte, pos, end int) match {
	if buf[pos] != '0' {
		return match{}
	}
	i := pos + 1
	if i < end && (buf[i] == 'x' || buf[i] == 'X') && i+1 < end && isHexDigit(buf[i+1]) {
		i += 2
		for i < end && isHexDigit(buf[i]) {
			i++
		}
	} else {
		for i < end && isOctalDigit(buf[i]) {
			i++
		}
	}
	if i < end && (buf[i] == 'l' || buf[i] == 'L') {
		i++
	}
	return match{n: i - pos, kind: HexLiteral}
}

func isFloatSuffix(b byte) bool {
	return b == 'f' || b == 'F' || b == 'd' || b == 'D'
}

// matchExponent consumes e/E, an optional sign and at least one digit,
// returning the index after the exponent or i unchanged if it is not one.
func matchExponent(buf []byte, i, end int) int {
	if i >= end || (buf[i] != 'e' && buf[i] != 'E') {
		return i
	}
	j := i + 1
	if j < end && (buf[j] == '+' || buf[j] == '-') {
		j++
	}
	if j >= end || !isDigit(buf[j]) {
		return i
	}
	for j < end && isDigit(buf[j]) {
		j++
	}
	return j
}

// matchFloat scans digits.digits, .digits, digits with an exponent, or bare
// digits with a float suffix, each with optional exponent and f/F/d/D suffix.
func matchFloat(buf []byte, pos, end int) match {
	i := pos
	for i < end && isDigit(buf[i]) {
		i++
	}
	digits := i - pos
	switch {
	case i < end && buf[i] == '.' && (digits > 0 || (i+1 < end && isDigit(buf[i+1]))):
		i++
		for i < end && isDigit(buf[i]) {
			i++
		}
	case digits > 0:
		if j := matchExponent(buf, i, end); j > i {
			i = j
			if i < end && isFloatSuffix(buf[i]) {
				i++
			}
			return match{n: i - pos, kind: FloatLiteral}
		}
		if i < end && isFloatSuffix(buf[i]) {
			return match{n: i + 1 - pos, kind: FloatLiteral}
		}
		return match{}
	default:
		return match{}
	}
	i = matchExponent(buf, i, end)
	if i < end && isFloatSuffix(buf[i]) {
		i++
	}
	return match{n: i - pos, kind: FloatLiteral}
}

func nonSeparatorRun(buf []byte, pos, end int) int {
	i := pos
	for i < end && isNonSeparator(buf[i]) {
		i++
	}
	return i - pos
}

// matchNumberError fuses a numeric literal and the non-separator characters
// glued to it into one error token, so 123abc is a single malformed number
// rather than an integer followed by an identifier.
func matchNumberError(buf []byte, pos, end int) match {
	best := 0
	for _, m := range [3]match{
		matchDecimalInt(buf, pos, end),
		matchHexOctalInt(buf, pos, end),
		matchFloat(buf, pos, end),
	} {
		if m.n == 0 {
			continue
		}
		if run := nonSeparatorRun(buf, pos+m.n, end); run > 0 && m.n+run > best {
			best = m.n + run
		}
	}
	if best == 0 {
		return match{}
	}
	return match{n: best, kind: NumberFormatError}
}

// matchIdentError is the run catch-all: any non-separator run that none of
// the earlier rules claimed at equal or greater length.
func matchIdentError(buf []byte, pos, end int) match {
	if run := nonSeparatorRun(buf, pos, end); run > 0 {
		return match{n: run, kind: IdentifierFormatError}
	}
	return match{}
}

// matchCatchAll claims exactly one byte of anything, guaranteeing the
// scanner always advances no matter the input.
func matchCatchAll(buf []byte, pos, end int) match {
	return match{n: 1, kind: IdentifierFormatError}
}
