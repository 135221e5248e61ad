package migration

import (
	"regexp"
	"strconv"
	"strings"

	"product-spec-api/internal/units"
	"product-spec-api/internal/value"
)

// TokenPosition selects which numeric token of a legacy text to take.
type TokenPosition string

// TokenPosition constants
const (
	TokenFirst  TokenPosition = "first"
	TokenSecond TokenPosition = "second"
	TokenLast   TokenPosition = "last"
)

// numberPattern matches decimal tokens with either separator, e.g.
// "2.5", "2,5", "300".
var numberPattern = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)

// ExtractNumber pulls the numeric token at the given position out of a
// free-text legacy value like "ca. 2,5 kg (brutto)". ok=false when the
// text holds no token at that position.
func ExtractNumber(text string, pos TokenPosition) (float64, bool) {
	tokens := numberPattern.FindAllString(text, -1)
	if len(tokens) == 0 {
		return 0, false
	}

	var token string
	switch pos {
	case TokenSecond:
		if len(tokens) < 2 {
			return 0, false
		}
		token = tokens[1]
	case TokenLast:
		token = tokens[len(tokens)-1]
	default:
		token = tokens[0]
	}

	f, err := strconv.ParseFloat(value.NormalizeDecimal(token), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// MatchUnit scans a legacy text for a measurement unit. Alias matches
// win over direct registry matches so "KG", "kilo" and friends can be
// folded onto one code; the first matching word decides. ok=false when
// no word resolves to a unit.
func MatchUnit(text string, aliases map[string]string, registry *units.Registry) (string, bool) {
	for _, word := range strings.Fields(text) {
		word = strings.ToLower(strings.Trim(word, ".,;:()[]"))
		if word == "" {
			continue
		}
		if code, ok := aliases[word]; ok {
			return code, true
		}
		if registry != nil && registry.Has(word) {
			return word, true
		}
	}
	return "", false
}
