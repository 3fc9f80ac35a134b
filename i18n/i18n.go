// Package i18n holds the localized result messages. The site is bilingual;
// success messages follow the submitter's Accept-Language while error
// messages stay fixed (the forms match on them).
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const DefaultLocale = "en"

var catalogs = map[string]map[string]string{}

func init() {
	for _, locale := range []string{"en", "zh"} {
		raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", locale))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing locale %s: %v", locale, err))
		}
		catalog := map[string]string{}
		if err := yaml.Unmarshal(raw, &catalog); err != nil {
			panic(fmt.Sprintf("i18n: bad locale %s: %v", locale, err))
		}
		catalogs[locale] = catalog
	}
}

// MatchLocale picks a supported locale from an Accept-Language header.
func MatchLocale(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		base := strings.SplitN(tag, "-", 2)[0]
		if _, ok := catalogs[base]; ok {
			return base
		}
	}
	return DefaultLocale
}

// Message returns the catalog entry for key, falling back to the default
// locale, then to the key itself.
func Message(locale, key string) string {
	if msg, ok := catalogs[locale][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}
