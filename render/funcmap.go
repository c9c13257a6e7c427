package render

import (
	"html/template"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const DefaultLocale = monday.LocaleEnUS

func MakeTemplateFuncmap(locale monday.Locale) template.FuncMap {
	tagSet := NewTagSet()

	if locale == "" {
		locale = DefaultLocale
	}

	return template.FuncMap{
		"tagColor": tagSet.HexColor,
		"dateDisplay": func(t time.Time) string {
			return monday.Format(t, "2 January 2006", locale)
		},
		"yearMonthDisplay": func(t time.Time) string {
			return monday.Format(t, "January 2006", locale)
		},
		"join": func(sep string, items []string) string {
			return strings.Join(items, sep)
		},
		"today": time.Now,
	}
}
