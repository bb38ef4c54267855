package tclscan

// Kind classifies a run of characters for highlighting.
type Kind int

const (
	Identifier Kind = iota
	Whitespace
	StringLiteral
	UnterminatedStringError
	LineComment
	Separator
	Operator
	IntegerLiteral
	HexLiteral
	FloatLiteral
	NumberFormatError
	IdentifierFormatError
	ReservedWord
	End
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Whitespace:
		return "Whitespace"
	case StringLiteral:
		return "StringLiteral"
	case UnterminatedStringError:
		return "UnterminatedStringError"
	case LineComment:
		return "LineComment"
	case Separator:
		return "Separator"
	case Operator:
		return "Operator"
	case IntegerLiteral:
		return "IntegerLiteral"
	case HexLiteral:
		return "HexLiteral"
	case FloatLiteral:
		return "FloatLiteral"
	case NumberFormatError:
		return "NumberFormatError"
	case IdentifierFormatError:
		return "IdentifierFormatError"
	case ReservedWord:
		return "ReservedWord"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

// IsError reports whether k is one of the error token kinds.
func (k Kind) IsError() bool {
	return k == UnterminatedStringError || k == NumberFormatError || k == IdentifierFormatError
}

// Token is the basic data type of the lexer.
// It covers buf[Start:End) of the line buffer it was scanned from;
// the buffer is owned by the caller and the token never copies out of it.
// Offset is the absolute position of Start in the whole document.
// Every line ends with a single zero-width End token whose Next is nil.
type Token struct {
	Kind   Kind
	Start  int
	End    int
	Offset int
	Next   *Token

	buf []byte
}

// Text returns the covered bytes without copying. The result aliases the
// line buffer handed to the scanner and is valid for as long as that buffer.
func (t *Token) Text() []byte {
	return t.buf[t.Start:t.End]
}

// Len is End - Start; zero only for the End sentinel.
func (t *Token) Len() int {
	return t.End - t.Start
}
