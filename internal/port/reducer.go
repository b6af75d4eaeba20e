package port

// Reducer turns Markdown into plain prose.
type Reducer interface {
	Reduce(markdown string) string
}

// SourceReader loads a Markdown document from a path, or from standard
// input when path is empty or "-".
type SourceReader interface {
	Read(path string) (string, error)
}
