package model

// Path represents a file system path.
type Path string

// Script holds the raw text of a source-dialect script together with its
// origin. The converter never mutates it.
type Script struct {
	Origin Path
	Text   string
}

// Comment markers of the two dialects. The splitter makes no attempt to track
// quoting state; a marker inside a string literal still splits the line. That
// is an accepted limitation of the lexical approach.
const (
	SourceCommentMarker = "'"
	TargetCommentMarker = "//"
)

// TargetExt is the conventional extension of converted scripts.
const TargetExt = ".js"
