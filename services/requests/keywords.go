package requests

import "strings"

// KeywordTable maps a legacy free-text business category to the service-name
// keywords that category matches. Businesses created before structured
// categories exist only carry this field, so the matcher folds the table into
// its query alongside the structured IDs.
type KeywordTable map[string][]string

// DefaultKeywordTable covers the legacy categories in circulation. Keys are
// matched case-insensitively; keywords are matched as case-insensitive
// substrings of the request's service name.
var DefaultKeywordTable = KeywordTable{
	"BARBER":      {"berber", "saç", "traş"},
	"HAIRDRESSER": {"kuaför", "saç", "fön"},
	"BEAUTY":      {"güzellik", "cilt", "bakım"},
	"NAIL":        {"tırnak", "manikür", "pedikür"},
	"MASSAGE":     {"masaj", "spa"},
	"DENTIST":     {"diş", "dolgu", "implant"},
	"VET":         {"veteriner", "aşı", "pet"},
	"CLEANING":    {"temizlik", "yıkama"},
	"TAILOR":      {"terzi", "dikiş", "tadilat"},
}

// KeywordsFor returns the keyword list for a legacy category, or nil when the
// category is unknown or empty.
func (t KeywordTable) KeywordsFor(category string) []string {
	if category == "" {
		return nil
	}
	return t[strings.ToUpper(strings.TrimSpace(category))]
}
