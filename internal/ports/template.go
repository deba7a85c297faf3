package ports

// TemplateStorePort reads and writes XBPS template files.
type TemplateStorePort interface {
	Read(path string) (string, error)
	// Write replaces the whole template atomically.
	Write(path string, content string) error
	Append(path string, content string) error
}

// SyntaxCheckPort verifies that a template is still valid shell.
type SyntaxCheckPort interface {
	Check(name string, content string) error
}
