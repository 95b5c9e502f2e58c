package runtime

import (
	"regexp"
	"strings"

	"github.com/aretw0/dynurl/pkg/domain"
)

var tokenPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ExtractTokens returns every `{name}` occurrence in template, in order.
// Braces do not nest: in "{a{b}" only "{b}" is a token.
func ExtractTokens(template string) []domain.Token {
	// Hot path: most paths carry no placeholders at all.
	if strings.IndexByte(template, '{') < 0 {
		return nil
	}
	matches := tokenPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]domain.Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, domain.Token{
			Match: template[m[0]:m[1]],
			Name:  template[m[2]:m[3]],
			Start: m[0],
			End:   m[1],
		})
	}
	return tokens
}
