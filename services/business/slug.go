package business

import (
	"fmt"
	"strings"
	"unicode"
)

// turkishFold maps Turkish letters to their ASCII slug equivalents.
var turkishFold = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'I': 'i',
	'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

// Slugify turns a business name into a URL-safe slug: Turkish letters fold to
// ASCII, everything non-alphanumeric collapses to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range name {
		if folded, ok := turkishFold[r]; ok {
			r = folded
		} else {
			r = unicode.ToLower(r)
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// uniqueSlug appends a numeric suffix until the slug is free.
func (s *DefaultBusinessService) uniqueSlug(name string) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "isletme"
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := s.Repo.SlugExists(slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", slug, err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
