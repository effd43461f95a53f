package matching

import "github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"

// Alias tables linking fruit names to their tree/plant names and back, for
// the common orchard crops of the reference calendar. Keys and values are
// stored pre-normalized (lowercase, no diacritics).
var aliasesPT = map[string][]string{
	"figo":        {"figueira"},
	"figueira":    {"figo"},
	"laranja":     {"laranjeira"},
	"laranjeira":  {"laranja"},
	"maca":        {"macieira", "maca gala", "maca fuji"},
	"macieira":    {"maca", "maca gala", "maca fuji"},
	"pera":        {"pereira"},
	"pereira":     {"pera"},
	"ameixa":      {"ameixeira"},
	"ameixeira":   {"ameixa"},
	"pessego":     {"pessegueiro", "nectarina", "pessegueiro/nectarina"},
	"pessegueiro": {"pessego", "nectarina"},
	"nespera":     {"nespereira"},
	"nespereira":  {"nespera"},
	"roma":        {"romazeira", "romanzeira"},
	"romazeira":   {"roma", "roman"},
	"romanzeira":  {"roma"},
	"azeitona":    {"oliveira", "oliva"},
	"oliveira":    {"azeitona", "oliva"},
	"noz":         {"nogueira"},
	"nogueira":    {"noz"},
	"amendoa":     {"amendoeira"},
	"amendoeira":  {"amendoa"},
	"uva":         {"videira", "videira (uva de mesa)", "uva de mesa"},
	"videira":     {"uva"},
	"limao":       {"limoeiro"},
	"limoeiro":    {"limao"},
	"tangerina":   {"tangerineira", "mandarina", "clementina"},
	"tangerineira": {"tangerina", "mandarina", "clementina"},
	"abacate":     {"abacateiro"},
	"abacateiro":  {"abacate"},
	"kiwi":        {"actinidia", "kiwi hardy", "actinidia arguta"},
}

var aliasesEN = map[string][]string{
	"fig":              {"fig tree"},
	"fig tree":         {"fig"},
	"orange":           {"orange tree"},
	"orange tree":      {"orange"},
	"apple":            {"apple tree", "gala apple", "fuji apple"},
	"apple tree":       {"apple", "gala apple", "fuji apple"},
	"pear":             {"pear tree"},
	"pear tree":        {"pear"},
	"plum":             {"plum tree"},
	"plum tree":        {"plum"},
	"peach":            {"peach tree", "nectarine"},
	"peach tree":       {"peach", "nectarine"},
	"loquat":           {"loquat tree"},
	"loquat tree":      {"loquat"},
	"pomegranate":      {"pomegranate tree"},
	"pomegranate tree": {"pomegranate"},
	"olive":            {"olive tree"},
	"olive tree":       {"olive"},
	"walnut":           {"walnut tree"},
	"walnut tree":      {"walnut"},
	"almond":           {"almond tree"},
	"almond tree":      {"almond"},
	"grape":            {"grapevine", "vine"},
	"grapevine":        {"grape", "vine"},
	"lemon":            {"lemon tree"},
	"lemon tree":       {"lemon"},
	"tangerine":        {"mandarin", "tangerine tree"},
	"tangerine tree":   {"tangerine", "mandarin"},
	"avocado":          {"avocado tree"},
	"avocado tree":     {"avocado"},
	"kiwi":             {"kiwifruit", "kiwi vine"},
	"kiwi vine":        {"kiwi", "kiwifruit"},
}

// ExpandAliases returns the normalized term plus its known alternatives in
// the given locale. The term itself is always first.
func ExpandAliases(term string, locale domain.Locale) []string {
	base := Normalize(term)
	table := aliasesPT
	if locale == domain.LocaleEN {
		table = aliasesEN
	}
	out := []string{base}
	for _, alias := range table[base] {
		out = append(out, Normalize(alias))
	}
	return out
}
