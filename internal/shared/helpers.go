// Package shared provides small helpers used by more than one layer of
// xbps-tmpl.
package shared

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}

// TemplatePath returns the location of a package template below the
// void-packages root.
func TemplatePath(distDir string, pkgName string) string {
	return filepath.Join(distDir, "srcpkgs", pkgName, "template")
}

// SplitFields splits a list of field names given either as separate
// arguments or as one whitespace separated string.
func SplitFields(values []string) []string {
	var fields []string
	for _, value := range values {
		fields = append(fields, strings.Fields(value)...)
	}
	return fields
}
