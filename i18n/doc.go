// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package i18n provides the three-locale text value used for every
user-visible string in the survey domain (poll titles, question text,
option labels, section content).

# Locales

The locale set is closed: ar (Arabic), en (English), ku (Kurdish).

# Resolution

Resolve picks the requested locale if set, then falls back:

	requested → en → ar → ku → ""

# Legacy values

Records written before localization stored plain strings. Text decodes
those transparently; a plain value resolves to the same string for every
locale and round-trips unchanged through JSON.

Text implements driver.Valuer and sql.Scanner, so a localized value
occupies one TEXT column holding its JSON encoding.
*/
package i18n
