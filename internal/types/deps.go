package types

// DepField names a dependency assignment in an XBPS template.
type DepField string

const (
	DepFieldHostMakeDepends DepField = "hostmakedepends"
	DepFieldMakeDepends     DepField = "makedepends"
	DepFieldDepends         DepField = "depends"
	DepFieldCheckDepends    DepField = "checkdepends"
)

// DepFields lists the recognized fields in the order they appear in
// a conventional template.
var DepFields = []DepField{
	DepFieldHostMakeDepends,
	DepFieldMakeDepends,
	DepFieldDepends,
	DepFieldCheckDepends,
}

func (f DepField) Recognized() bool {
	for _, known := range DepFields {
		if f == known {
			return true
		}
	}
	return false
}

type FormatOptions struct {
	Width  int
	Marker string
}

const (
	DefaultWrapWidth = 80
	DefaultMarker    = "vopt_"
)

func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Width: DefaultWrapWidth, Marker: DefaultMarker}
}
