package adapters

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"mvdan.cc/sh/v3/syntax"

	"xbps-tmpl/internal/ports"
)

// ShellSyntaxAdapter parses templates as bash, which is what xbps-src
// sources them with.
type ShellSyntaxAdapter struct{}

func NewShellSyntaxAdapter() ShellSyntaxAdapter {
	return ShellSyntaxAdapter{}
}

func (a ShellSyntaxAdapter) Check(name string, content string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(content), name); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("template is not valid shell: %s", name)).
			WithCause(err)
	}
	return nil
}

var _ ports.SyntaxCheckPort = ShellSyntaxAdapter{}
