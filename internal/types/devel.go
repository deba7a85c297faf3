package types

// DevelStanza is a generated "<name>-devel" sub-package definition.
type DevelStanza struct {
	PkgName   string
	DevelName string
	Moves     []string
}

// FullName returns the sub-package name including the -devel suffix.
func (s DevelStanza) FullName() string {
	return s.DevelName + "-devel"
}
