package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"xbps-tmpl/internal/types"
)

const (
	sharedObjectMove  = `"/usr/lib/*.so"`
	staticLibraryMove = `"/usr/lib/*.a"`
	symlinkMarker     = " ->"
)

// develDirs are moved wholesale into the -devel package when present.
var develDirs = []string{
	"/usr/include",
	"/usr/lib/pkgconfig",
	"/usr/share/pkgconfig",
	"/usr/lib/cmake",
	"/usr/share/cmake",
	"/usr/share/aclocal",
	"/usr/share/man/man3",
	"/usr/share/info",
	"/usr/share/gtk-doc",
	"/usr/share/gir-1.0",
	"/usr/lib/girepository-1.0",
}

type DevelGenerator struct{}

func NewDevelGenerator() DevelGenerator {
	return DevelGenerator{}
}

func (g DevelGenerator) Generate(ctx context.Context, pkgName string, develName string, fileList string) types.DevelStanza {
	paths := splitFileList(fileList)
	stanza := types.DevelStanza{PkgName: pkgName, DevelName: develName}

	for _, dir := range develDirs {
		if containsDir(paths, dir) {
			stanza.Moves = append(stanza.Moves, dir)
		}
	}

	sharedSeen, staticSeen := false, false
	for _, path := range paths {
		if !sharedSeen && strings.HasSuffix(path, ".so") {
			stanza.Moves = append(stanza.Moves, sharedObjectMove)
			sharedSeen = true
		}
		if !staticSeen && strings.HasSuffix(path, ".a") {
			stanza.Moves = append(stanza.Moves, staticLibraryMove)
			staticSeen = true
		}
	}

	log.Ctx(ctx).Debug().
		Str("devel", stanza.FullName()).
		Int("moves", len(stanza.Moves)).
		Msg("devel stanza generated")
	return stanza
}

// Render produces the template text appended for a devel package.
func (g DevelGenerator) Render(stanza types.DevelStanza) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s_package() {\n", stanza.FullName())
	b.WriteString("\tshort_desc+=\" - development files\"\n")
	fmt.Fprintf(&b, "\tdepends=\"%s>=${version}_${revision}\"\n", stanza.PkgName)
	b.WriteString("\tpkg_install() {\n")
	for _, move := range stanza.Moves {
		fmt.Fprintf(&b, "\t\tvmove %s\n", move)
	}
	b.WriteString("\t}\n")
	b.WriteString("}\n")
	return b.String()
}

// HasDevelStanza reports whether text already mentions the devel package.
func HasDevelStanza(text string, develName string) bool {
	return strings.Contains(text, develName+"-devel")
}

func splitFileList(fileList string) []string {
	var paths []string
	for _, line := range strings.Split(fileList, "\n") {
		path, _, _ := strings.Cut(line, symlinkMarker)
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

func containsDir(paths []string, dir string) bool {
	for _, path := range paths {
		if path == dir || strings.HasPrefix(path, dir+"/") {
			return true
		}
	}
	return false
}
