// Package pipeline drives the build: discover icon sets, run the
// per-set stages on a bounded worker pool, merge the survivors, and
// clean up the scratch area.
//
// Stages within one icon set are strictly sequential; sets are
// independent of each other and share no mutable state, so fan-out
// needs nothing beyond path namespacing.
package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/iconset"
)

// Set is a discovered icon-set directory.
type Set struct {
	Code       string // directory name, confirmed against config on load
	Dir        string
	ConfigPath string
}

// Discover lists the icon-set directories under iconsRoot that carry a
// config file, sorted by code for stable output.
func Discover(iconsRoot string) ([]Set, error) {
	entries, err := os.ReadDir(iconsRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read icons directory %s", iconsRoot)
	}

	var sets []Set
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(iconsRoot, entry.Name())
		configPath, ok := iconset.FindConfig(dir)
		if !ok {
			continue
		}
		sets = append(sets, Set{
			Code:       entry.Name(),
			Dir:        dir,
			ConfigPath: configPath,
		})
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].Code < sets[j].Code })
	return sets, nil
}

// Select filters discovered sets down to the requested codes. An empty
// request selects everything. Requesting a code that does not exist is
// a user error, reported before any build work starts.
func Select(sets []Set, codes []string) ([]Set, error) {
	if len(codes) == 0 {
		return sets, nil
	}

	byCode := make(map[string]Set, len(sets))
	for _, s := range sets {
		byCode[s.Code] = s
	}

	selected := make([]Set, 0, len(codes))
	for _, code := range codes {
		s, ok := byCode[code]
		if !ok {
			return nil, errors.NewConfigError("no icon set named %q under the icons directory", code)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
