package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSharedObjectMovedOnce(t *testing.T) {
	files := strings.Join([]string{
		"/usr/lib/libx.so -> libx.so.1",
		"/usr/lib/libx.so.1 -> libx.so.1.2.3",
		"/usr/lib/libx.so.1.2.3",
		"/usr/lib/liby.so",
	}, "\n")
	generator := NewDevelGenerator()
	stanza := generator.Generate(t.Context(), "libx", "libx", files)
	rendered := generator.Render(stanza)
	assert.Equal(t, 1, strings.Count(rendered, `vmove "/usr/lib/*.so"`))
	assert.Equal(t, []string{`"/usr/lib/*.so"`}, stanza.Moves)
}

func TestGenerateDirectoriesInFixedOrder(t *testing.T) {
	files := strings.Join([]string{
		"/usr/share/man/man3/foo.3",
		"/usr/lib/libfoo.a",
		"/usr/lib/pkgconfig/foo.pc",
		"/usr/include/foo/foo.h",
		"/usr/lib/libfoo.so -> libfoo.so.2",
		"/usr/lib/cmake/Foo/FooConfig.cmake",
		"/usr/lib/libbar.a",
	}, "\n")
	stanza := NewDevelGenerator().Generate(t.Context(), "foo", "foo", files)
	expected := []string{
		"/usr/include",
		"/usr/lib/pkgconfig",
		"/usr/lib/cmake",
		"/usr/share/man/man3",
		`"/usr/lib/*.a"`,
		`"/usr/lib/*.so"`,
	}
	if diff := cmp.Diff(expected, stanza.Moves); diff != "" {
		t.Fatalf("unexpected moves (-want +got):\n%s", diff)
	}
}

func TestGenerateIgnoresSimilarDirectoryNames(t *testing.T) {
	files := "/usr/includes/foo.h\n/usr/share/information/x\n/usr/bin/foo.sh"
	stanza := NewDevelGenerator().Generate(t.Context(), "foo", "foo", files)
	assert.Empty(t, stanza.Moves)
}

func TestRenderStanza(t *testing.T) {
	generator := NewDevelGenerator()
	stanza := generator.Generate(t.Context(), "gtk+3", "gtk+3", "/usr/include/gtk-3.0/gtk.h\n/usr/lib/libgtk-3.so -> libgtk-3.so.0")
	expected := "\n" +
		"gtk+3-devel_package() {\n" +
		"\tshort_desc+=\" - development files\"\n" +
		"\tdepends=\"gtk+3>=${version}_${revision}\"\n" +
		"\tpkg_install() {\n" +
		"\t\tvmove /usr/include\n" +
		"\t\tvmove \"/usr/lib/*.so\"\n" +
		"\t}\n" +
		"}\n"
	if diff := cmp.Diff(expected, generator.Render(stanza)); diff != "" {
		t.Fatalf("unexpected stanza (-want +got):\n%s", diff)
	}
}

func TestRenderEmptyStanza(t *testing.T) {
	generator := NewDevelGenerator()
	stanza := generator.Generate(t.Context(), "foo", "libfoo", "")
	rendered := generator.Render(stanza)
	assert.Contains(t, rendered, "libfoo-devel_package() {")
	assert.Contains(t, rendered, "\tpkg_install() {\n\t}\n}\n")
	assert.NotContains(t, rendered, "vmove")
}

func TestHasDevelStanza(t *testing.T) {
	text := "pkgname=foo\n\nfoo-devel_package() {\n}\n"
	assert.True(t, HasDevelStanza(text, "foo"))
	assert.False(t, HasDevelStanza(text, "bar"))
}
