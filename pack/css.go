package pack

import (
	"os"
	"path/filepath"
	"text/template"

	"github.com/chromana/chromana/errors"
)

// StyleClass binds a style name to its stylistic-set feature tag for
// the stylesheet's toggle classes.
type StyleClass struct {
	Name        string // style name, becomes ".<code>-<name>"
	DisplayName string
	Tag         string // e.g. "ss01"
}

// FaceSource is one @font-face src entry.
type FaceSource struct {
	URL    string
	Format string
}

// CSSData feeds the stylesheet template.
type CSSData struct {
	FontName string
	Code     string
	Sources  []FaceSource
	Styles   []StyleClass
}

const cssTemplate = `/* {{.FontName}} Icon Font */
@font-face {
  font-family: '{{.FontName}}';
  src: {{range $i, $s := .Sources}}{{if $i}},
       {{end}}url('{{$s.URL}}') format('{{$s.Format}}'){{end}};
  font-weight: normal;
  font-style: normal;
}

.{{.Code}}-output {
  font-family: '{{.FontName}}';
  word-break: break-word;
}

.{{.Code}}-icon {
  font-family: '{{.FontName}}';
  font-weight: normal;
  font-style: normal;
  font-size: 24px;
  display: inline-block;
  line-height: 1;
  text-transform: none;
  letter-spacing: normal;
  word-wrap: normal;
  white-space: nowrap;
  direction: ltr;

  -webkit-font-smoothing: antialiased;
  text-rendering: optimizeLegibility;
  -moz-osx-font-smoothing: grayscale;
  font-feature-settings: 'liga';
}
{{range .Styles}}
/* {{.DisplayName}} style toggle */
.{{$.Code}}-{{.Name}} {
  font-feature-settings: 'liga', '{{.Tag}}';
}
{{end}}`

var cssTmpl = template.Must(template.New("css").Parse(cssTemplate))

// WriteCSS renders the stylesheet for one icon set.
func WriteCSS(path string, data CSSData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrPackaging, err.Error())
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrPackaging, err.Error())
	}
	defer f.Close()

	if err := cssTmpl.Execute(f, data); err != nil {
		return errors.Wrap(errors.ErrPackaging, err.Error())
	}
	return nil
}

// FaceSources derives the @font-face entries from the produced files,
// with URLs relative to the stylesheet location.
func FaceSources(files FontFiles, distHref string) []FaceSource {
	var sources []FaceSource
	for _, pair := range files.Formats() {
		sources = append(sources, FaceSource{
			URL:    distHref + "/" + filepath.Base(pair[1]),
			Format: pair[0],
		})
	}
	return sources
}
