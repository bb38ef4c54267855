package tclscan

// FileType is the static, language-level metadata an editor needs alongside
// the scanner: which files the language owns, indentation, and the comment
// markers used by toggle-comment style commands.
type FileType struct {
	Name                     string
	Extensions               []string
	TabSize                  int
	CommentLineBeginingChars []byte
	CommentLineEndChars      []byte
}

// CommentDelimiters returns the line comment start and end markers.
// end is nil when comments run to end of line.
func (f *FileType) CommentDelimiters() (start, end []byte) {
	return f.CommentLineBeginingChars, f.CommentLineEndChars
}

var TclFileType = FileType{
	Name:                     "Tcl",
	Extensions:               []string{".tcl", ".tk"},
	TabSize:                  4,
	CommentLineBeginingChars: []byte("#"),
}

// CommentDelimiters is the package-level query for the grammar this scanner
// implements: # starts a comment, nothing ends it before the line does.
func CommentDelimiters() (start, end []byte) {
	return TclFileType.CommentDelimiters()
}
