package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"xbps-tmpl/internal/types"
)

const sampleTemplate = `# Template file for 'foo'
pkgname=foo
version=1.0
revision=1
build_style=gnu-configure
hostmakedepends="pkg-config"
makedepends="libx-devel
 liby-devel
 $(vopt_if gtk gtk+3-devel)"
depends="bar"
checkdepends="check-devel"
short_desc="Foo library"
`

func TestPatchReplacesMultilineField(t *testing.T) {
	got, replaced := NewTemplatePatcher().Patch(t.Context(), sampleTemplate, map[types.DepField]string{
		types.DepFieldMakeDepends: `makedepends="libz-devel"`,
	})
	expected := `# Template file for 'foo'
pkgname=foo
version=1.0
revision=1
build_style=gnu-configure
hostmakedepends="pkg-config"
makedepends="libz-devel"
depends="bar"
checkdepends="check-devel"
short_desc="Foo library"
`
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("unexpected template (-want +got):\n%s", diff)
	}
	assert.Equal(t, []types.DepField{types.DepFieldMakeDepends}, replaced)
}

func TestPatchMatchesFieldFromLineStartOnly(t *testing.T) {
	got, replaced := NewTemplatePatcher().Patch(t.Context(), sampleTemplate, map[types.DepField]string{
		types.DepFieldDepends: "depends=\"baz\n qux\"",
	})
	expected := `# Template file for 'foo'
pkgname=foo
version=1.0
revision=1
build_style=gnu-configure
hostmakedepends="pkg-config"
makedepends="libx-devel
 liby-devel
 $(vopt_if gtk gtk+3-devel)"
depends="baz
 qux"
checkdepends="check-devel"
short_desc="Foo library"
`
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("unexpected template (-want +got):\n%s", diff)
	}
	assert.Equal(t, []types.DepField{types.DepFieldDepends}, replaced)
}

func TestPatchInsertsValueLiterally(t *testing.T) {
	got, _ := NewTemplatePatcher().Patch(t.Context(), "depends=\"old\"\n", map[types.DepField]string{
		types.DepFieldDepends: `depends="$(vopt_if x11 libX11) ${1}"`,
	})
	assert.Equal(t, "depends=\"$(vopt_if x11 libX11) ${1}\"\n", got)
}

func TestPatchSkipsUnrecognizedField(t *testing.T) {
	got, replaced := NewTemplatePatcher().Patch(t.Context(), sampleTemplate, map[types.DepField]string{
		types.DepField("short_desc"): `short_desc="changed"`,
	})
	assert.Equal(t, sampleTemplate, got)
	assert.Empty(t, replaced)
}

func TestPatchLeavesMissingFieldAlone(t *testing.T) {
	text := "pkgname=foo\ndepends=\"bar\"\n"
	got, replaced := NewTemplatePatcher().Patch(t.Context(), text, map[types.DepField]string{
		types.DepFieldHostMakeDepends: `hostmakedepends="pkg-config"`,
	})
	assert.Equal(t, text, got)
	assert.Empty(t, replaced)
}

func TestPatchReportsFieldsInTemplateOrder(t *testing.T) {
	_, replaced := NewTemplatePatcher().Patch(t.Context(), sampleTemplate, map[types.DepField]string{
		types.DepFieldCheckDepends:    `checkdepends=""`,
		types.DepFieldHostMakeDepends: `hostmakedepends=""`,
		types.DepFieldDepends:         `depends=""`,
	})
	expected := []types.DepField{
		types.DepFieldHostMakeDepends,
		types.DepFieldDepends,
		types.DepFieldCheckDepends,
	}
	assert.Equal(t, expected, replaced)
}
