package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Language int

const (
	English Language = iota
	Korean
)

func (l Language) String() string {
	switch l {
	case Korean:
		return "ko"
	default:
		return "en"
	}
}

var supported = []language.Tag{language.English, language.Korean}

var matcher = language.NewMatcher(supported)

// ParseLanguage maps a locale value such as "ko_KR.UTF-8", "ko" or "en-US"
// to a supported language. Anything unrecognised is English.
func ParseLanguage(value string) Language {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(value, "_", "-")
	if value == "" || strings.EqualFold(value, "C") || strings.EqualFold(value, "POSIX") {
		return English
	}
	tag, err := language.Parse(value)
	if err != nil {
		return English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English
	}
	if supported[index] == language.Korean {
		return Korean
	}
	return English
}

// Messages is the localized message set handed to every component that
// prints user-facing text.
type Messages struct {
	lang Language
}

func New(lang Language) *Messages {
	return &Messages{lang: lang}
}

func (m *Messages) Language() Language {
	if m == nil {
		return English
	}
	return m.lang
}

// Text returns the raw template for key.
func (m *Messages) Text(key Key) string {
	lang := m.Language()
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[English][key]; ok {
		return s
	}
	return string(key)
}

// Format renders key with fmt-style arguments.
func (m *Messages) Format(key Key, args ...any) string {
	tmpl := m.Text(key)
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
