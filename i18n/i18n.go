// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Supported locale codes. The set is closed; there is no runtime registry.
const (
	LangAR = "ar"
	LangEN = "en"
	LangKU = "ku"
)

// Locales lists the supported codes in canonical order.
var Locales = []string{LangAR, LangEN, LangKU}

// IsLocale reports whether lang is one of the supported codes.
func IsLocale(lang string) bool {
	return lang == LangAR || lang == LangEN || lang == LangKU
}

// Text is a three-locale text value. Older records stored plain strings
// instead of the locale object; those decode into the plain field and
// resolve to the same string for every requested locale.
type Text struct {
	AR string `json:"ar"`
	EN string `json:"en"`
	KU string `json:"ku"`

	plain string
}

// Plain returns a Text that resolves to s for every locale.
func Plain(s string) Text {
	return Text{plain: s}
}

// Empty returns a Text with all locales blank.
func Empty() Text {
	return Text{}
}

// Resolve returns the text for the requested locale, falling back to
// English, then the first non-empty of the remaining locales in the
// fixed order ar, ku. Returns "" when nothing is set.
func (t Text) Resolve(lang string) string {
	if t.plain != "" {
		return t.plain
	}
	switch lang {
	case LangAR:
		if t.AR != "" {
			return t.AR
		}
	case LangEN:
		if t.EN != "" {
			return t.EN
		}
	case LangKU:
		if t.KU != "" {
			return t.KU
		}
	}
	if t.EN != "" {
		return t.EN
	}
	if t.AR != "" {
		return t.AR
	}
	if t.KU != "" {
		return t.KU
	}
	return ""
}

// HasAny reports whether at least one locale is non-empty.
func (t Text) HasAny() bool {
	return t.plain != "" || t.AR != "" || t.EN != "" || t.KU != ""
}

// IsComplete reports whether all three locales are non-empty.
func (t Text) IsComplete() bool {
	return t.AR != "" && t.EN != "" && t.KU != ""
}

// MarshalJSON emits the locale object, or a bare string for legacy
// plain values so they round-trip unchanged.
func (t Text) MarshalJSON() ([]byte, error) {
	if t.plain != "" {
		return json.Marshal(t.plain)
	}
	type obj struct {
		AR string `json:"ar"`
		EN string `json:"en"`
		KU string `json:"ku"`
	}
	return json.Marshal(obj{AR: t.AR, EN: t.EN, KU: t.KU})
}

// UnmarshalJSON accepts either the locale object or a legacy plain string.
func (t *Text) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text{plain: s}
		return nil
	}
	type obj struct {
		AR string `json:"ar"`
		EN string `json:"en"`
		KU string `json:"ku"`
	}
	var o obj
	if err := json.Unmarshal(data, &o); err != nil {
		return err
	}
	*t = Text{AR: o.AR, EN: o.EN, KU: o.KU}
	return nil
}

// Value stores the text as its JSON encoding in a single TEXT column.
func (t Text) Value() (driver.Value, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads back the JSON encoding written by Value.
func (t *Text) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = Text{}
		return nil
	case string:
		return t.UnmarshalJSON([]byte(v))
	case []byte:
		return t.UnmarshalJSON(v)
	default:
		return fmt.Errorf("i18n: cannot scan %T into Text", src)
	}
}
