package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	report, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, path, report.Path)
	assert.Equal(t, int64(len(goregular.TTF)), report.Size)
	assert.Greater(t, report.NumGlyphs, 0)
	assert.Greater(t, report.UnitsPerEm, 0)

	assert.True(t, report.HasTable("cmap"))
	assert.True(t, report.HasTable("glyf"))
	assert.False(t, report.HasTable("zzzz"))

	for i := 1; i < len(report.Tables); i++ {
		assert.LessOrEqual(t, report.Tables[i-1].Tag, report.Tables[i].Tag, "tables sorted by tag")
	}

	family := report.Name(sfnt.NameIDFamily)
	assert.NotEmpty(t, family)
	assert.Contains(t, family, "Go")
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "nope.ttf"))
	require.Error(t, err)
}

func TestInspectNotAFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.ttf")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := Inspect(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not parse")
}

func TestTableDirectoryTruncated(t *testing.T) {
	assert.Empty(t, tableDirectory([]byte("short")))

	// header claims more tables than the data holds
	header := make([]byte, 12)
	copy(header, goregular.TTF[:12])
	assert.Empty(t, tableDirectory(header[:12]))
}
