package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/renameio/v2"
	"github.com/rs/zerolog/log"

	"xbps-tmpl/internal/ports"
)

type TemplateFileAdapter struct{}

func NewTemplateFileAdapter() TemplateFileAdapter {
	return TemplateFileAdapter{}
}

func (a TemplateFileAdapter) Read(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("invalid path: %s", path)).
			WithCause(err)
	}
	if info.IsDir() {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("invalid path: %s", path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read template %s", path)).
			WithCause(err)
	}
	return string(data), nil
}

func (a TemplateFileAdapter) Write(path string, content string) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithExistingPermissions())
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to open template %s for writing", path)).
			WithCause(err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			log.Debug().Err(err).Str("path", path).Msg("cleanup pending template")
		}
	}()
	if _, err := pending.WriteString(content); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write template %s", path)).
			WithCause(err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to replace template %s", path)).
			WithCause(err)
	}
	return nil
}

// Append adds content to the end of the template. The file is rewritten as a
// whole so a failed write never leaves a partial stanza behind.
func (a TemplateFileAdapter) Append(path string, content string) error {
	existing, err := a.Read(path)
	if err != nil {
		return err
	}
	return a.Write(path, existing+content)
}

var _ ports.TemplateStorePort = TemplateFileAdapter{}
