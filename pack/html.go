package pack

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/iconset"
)

// SymbolCell is one icon in the preview grid.
type SymbolCell struct {
	Name     string
	Primary  string // first ligature, the one rendered
	All      string // every trigger, comma separated
	Overflow bool
}

// CategorySection groups preview cells under a category heading.
type CategorySection struct {
	Title   string
	Symbols []SymbolCell
}

// ExampleBlock is a sample text rendered in the preview.
type ExampleBlock struct {
	Text       string
	Desc       string
	StyleClass string // extra class toggling a style, may be empty
}

// PreviewData feeds the preview template.
type PreviewData struct {
	FontName string
	Code     string
	CSSHref  string
	Sections []CategorySection
	Examples []ExampleBlock
}

// BuildSections groups a config's symbols by category for the preview.
// Categories appear in configured order first; categories only seen on
// symbols follow in first-seen order. Symbols without a category land
// under "default".
func BuildSections(cfg *iconset.Config) []CategorySection {
	grouped := make(map[string][]SymbolCell)
	var seen []string

	for _, sym := range cfg.Symbols {
		category := sym.Category
		if category == "" {
			category = iconset.DefaultKey
		}
		if _, ok := grouped[category]; !ok {
			seen = append(seen, category)
		}

		cell := SymbolCell{Name: sym.Name, Overflow: sym.Overflow}
		if len(sym.Ligatures) > 0 {
			cell.Primary = sym.Ligatures[0]
			cell.All = strings.Join(sym.Ligatures, ", ")
		}
		grouped[category] = append(grouped[category], cell)
	}

	var order []string
	for _, cat := range cfg.Categories {
		if _, ok := grouped[cat.Name]; ok {
			order = append(order, cat.Name)
		}
	}
	for _, cat := range seen {
		found := false
		for _, o := range order {
			if o == cat {
				found = true
				break
			}
		}
		if !found {
			order = append(order, cat)
		}
	}

	sections := make([]CategorySection, 0, len(order))
	for _, cat := range order {
		sections = append(sections, CategorySection{
			Title:   cfg.CategoryDisplayName(cat),
			Symbols: grouped[cat],
		})
	}
	return sections
}

// BuildExamples converts configured example blocks, resolving style
// overrides to their toggle classes.
func BuildExamples(cfg *iconset.Config, styleClass func(style string) string) []ExampleBlock {
	var blocks []ExampleBlock
	for _, ex := range cfg.Examples {
		block := ExampleBlock{Text: ex.Text, Desc: ex.Desc}
		if ex.Style != "" {
			block.StyleClass = styleClass(ex.Style)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.FontName}} Icons</title>
  <link rel="stylesheet" href="./style.css">
  <link rel="stylesheet" href="{{.CSSHref}}">
  <script src="./action.js" defer></script>
</head>
<body>
  <div class="container">
    <h1>{{.FontName}} Icons</h1>

    <section class="section ligature-test">
      <h2>Ligature test</h2>
      <div class="test-controls">
        <input type="text" id="testInput" class="test-input" placeholder="Type a symbol code to test">
        <div class="font-size-control">
          <label for="fontSize">Font size:</label>
          <input type="range" id="fontSize" min="12" max="72" value="24">
          <span id="fontSizeDisplay">24px</span>
        </div>
        <button id="clearButton" class="test-button">Clear</button>
      </div>
      <div id="testOutput" class="test-output {{.Code}}-output"></div>
    </section>
{{if .Examples}}
    <section class="section">
      <h2>Examples</h2>
{{range .Examples}}      <div class="example-block">
        <div class="example-text {{$.Code}}-output{{with .StyleClass}} {{.}}{{end}}">{{.Text}}</div>
        {{with .Desc}}<div class="example-desc">{{.}}</div>{{end}}
      </div>
{{end}}    </section>
{{end}}
    <section class="section">
      <h2>Symbols</h2>
{{range .Sections}}      <div class="symbol-category">
        <h3 class="category-title">{{.Title}}</h3>
        <div class="icons-grid">
{{range .Symbols}}          <div class="icon-item{{if .Overflow}} wide-icon{{end}}">
            <i class="{{$.Code}}-icon icon-display">{{.Primary}}</i>
            <div class="icon-name">{{.Name}}</div>
            <div class="icon-code">{{.All}}</div>
          </div>
{{end}}        </div>
      </div>
{{end}}    </section>
  </div>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("preview").Parse(htmlTemplate))

// WriteHTML renders the preview document for one icon set.
func WriteHTML(path string, data PreviewData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrPackaging, err.Error())
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrPackaging, err.Error())
	}
	defer f.Close()

	if err := htmlTmpl.Execute(f, data); err != nil {
		return errors.Wrap(errors.ErrPackaging, err.Error())
	}
	return nil
}
