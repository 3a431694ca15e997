// Package output holds the non-badge emitters: the JSON map, plain
// "Label: value" lines and the configuration dump.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gitlab.com/tinyland/lab/terminal-widgets/pkg/widget"
)

var acronyms = map[string]string{
	"cpu": "CPU",
	"ram": "RAM",
	"os":  "OS",
}

// JSON writes name → text for every renderable widget, in table order.
func JSON(w io.Writer, widgets []widget.Widget) error {
	m := orderedmap.New[string, string]()
	for _, wd := range widgets {
		if wd.Renderable() {
			m.Set(wd.Name, wd.Text)
		}
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode widgets: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// Plain writes one "Label: value" line per renderable widget.
func Plain(w io.Writer, widgets []widget.Widget) error {
	var b strings.Builder
	for _, wd := range widgets {
		if !wd.Renderable() {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", Label(wd.Name), wd.Text)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Label turns a widget name into a display label: separators become
// spaces and each word is title cased ("package_count" → "Package Count").
func Label(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	caser := cases.Title(language.English)
	for i, word := range words {
		if a, ok := acronyms[strings.ToLower(word)]; ok {
			words[i] = a
			continue
		}
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
