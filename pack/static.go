package pack

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/chromana/chromana/errors"
)

//go:embed assets
var staticAssets embed.FS

// WriteStaticAssets materializes the shared preview assets (the base
// stylesheet and the page script with the live-reload client) into the
// demo directory. Existing files are overwritten so the assets track
// the binary that built the previews.
func WriteStaticAssets(demoDir string) error {
	if err := os.MkdirAll(demoDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrPackaging, err.Error())
	}

	entries, err := staticAssets.ReadDir("assets")
	if err != nil {
		return errors.Wrap(errors.ErrPackaging, err.Error())
	}
	for _, entry := range entries {
		data, err := staticAssets.ReadFile("assets/" + entry.Name())
		if err != nil {
			return errors.Wrap(errors.ErrPackaging, err.Error())
		}
		dst := filepath.Join(demoDir, entry.Name())
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrPackaging, err.Error())
		}
	}
	return nil
}
