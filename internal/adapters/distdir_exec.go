package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xbps-tmpl/internal/ports"
	"xbps-tmpl/internal/shared"
)

const defaultDistDirCommand = "xdistdir"

// DistDirAdapter resolves the void-packages root. A configured directory
// wins; otherwise the xdistdir helper is asked.
type DistDirAdapter struct {
	Dir     string
	Command string
}

func NewDistDirAdapter(dir string) DistDirAdapter {
	return DistDirAdapter{Dir: dir, Command: defaultDistDirCommand}
}

func (a DistDirAdapter) Locate(ctx context.Context) (string, error) {
	if dir := strings.TrimSpace(a.Dir); dir != "" {
		return dir, nil
	}
	command := a.Command
	if command == "" {
		command = defaultDistDirCommand
	}
	output, err := exec.CommandContext(ctx, command).Output()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to run " + command).
			WithCause(shared.CommandError(output, err))
	}
	dir := strings.TrimRight(string(output), "\r\n")
	if strings.TrimSpace(dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(command + " returned an empty directory")
	}
	log.Ctx(ctx).Debug().Str("distdir", dir).Msg("distdir located")
	return dir, nil
}

var _ ports.DistDirPort = DistDirAdapter{}
