// Package locale installs the embedded translation catalogues as gotext's
// global storage, so the rest of the code can call gotext.Get with keys.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when the requested language has no catalogue
const DefaultLanguage = "en"

const domain = "default"

//go:embed po/*.po
var catalogues embed.FS

// Languages lists the languages with an embedded catalogue
func Languages() []string {
	entries, err := fs.ReadDir(catalogues, "po")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(langs)
	return langs
}

// Init makes lang the active language. Region suffixes ("de_DE.UTF-8") are
// ignored. An unknown language falls back to DefaultLanguage and reports the
// language actually used.
func Init(lang string) (string, error) {
	lang = normalize(lang)

	data, err := catalogues.ReadFile("po/" + lang + ".po")
	if err != nil {
		lang = DefaultLanguage
		data, err = catalogues.ReadFile("po/" + lang + ".po")
		if err != nil {
			return "", fmt.Errorf("load %s catalogue: %w", lang, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)

	storage := gotext.NewLocale("", lang)
	storage.AddTranslator(domain, po)
	gotext.SetStorage(storage)

	return lang, nil
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_.-"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
