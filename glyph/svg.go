package glyph

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/logger"
)

var idAttrPattern = regexp.MustCompile(`\bid\s*=\s*"([^"]*)"`)

// PreprocessSVG copies src to dst, rewriting duplicate element
// identifiers so that merging many icons into one font artifact never
// collides on ids. The first occurrence of an id keeps its name;
// occurrence n of the same id becomes "{id}_{n}".
//
// On any parse failure the artwork is copied verbatim: malformed
// markup alone never fails a build. A missing or unreadable source
// file is an asset error.
//
// The returned bool reports whether the artwork was rewritten (false
// means a verbatim copy).
func PreprocessSVG(src, dst string) (bool, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return false, errors.NewAssetError(src, "failed to read artwork: %v", err)
	}

	if !wellFormedXML(data) {
		logger.Warnf("artwork %s is not well-formed XML, copying verbatim", src)
		return false, writeArtwork(dst, data)
	}

	counts := make(map[string]int)
	rewritten := false

	out := idAttrPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		sub := idAttrPattern.FindSubmatch(match)
		id := string(sub[1])
		counts[id]++
		if counts[id] == 1 {
			return match
		}
		rewritten = true
		return []byte(`id="` + id + "_" + strconv.Itoa(counts[id]-1) + `"`)
	})

	return rewritten, writeArtwork(dst, out)
}

// wellFormedXML tokenizes the document without building a tree; the
// rewrite itself is textual so the artwork survives byte-for-byte
// outside the duplicated attributes.
func wellFormedXML(data []byte) bool {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return true
		}
		if err != nil {
			return false
		}
	}
}

func writeArtwork(dst string, data []byte) error {
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return errors.NewAssetError(dst, "failed to write preprocessed artwork: %v", err)
	}
	return nil
}
