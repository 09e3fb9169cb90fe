package assistant

import (
	"regexp"
	"strings"
)

// articleTokenRe matches candidate article codes: ASCII word tokens of at
// least three characters. Cyrillic text falls outside the class, so plain
// Russian words never produce candidates.
var articleTokenRe = regexp.MustCompile(`[A-Za-z0-9_]{3,}`)

// supplementaryKeywords flag requests for visual/contextual material
// (textures, photos, interior shots) rather than transactional product data.
var supplementaryKeywords = []string{
	"текстур", "интерьер", "фото", "изображен", "картинк", "выглядит", "смотрится",
}

type Intent struct {
	ArticleCode        string // lower-cased, empty when no code found
	WantsSupplementary bool
}

// Classify inspects a free-text message for an article code and for
// supplementary-material keywords. The article code is the first token
// containing at least one digit and one letter; ties are broken by
// left-to-right order. Pure and deterministic.
func Classify(message string) Intent {
	intent := Intent{}

	for _, token := range articleTokenRe.FindAllString(message, -1) {
		if hasDigit(token) && hasLetter(token) {
			intent.ArticleCode = strings.ToLower(token)
			break
		}
	}

	lower := strings.ToLower(message)
	for _, keyword := range supplementaryKeywords {
		if strings.Contains(lower, keyword) {
			intent.WantsSupplementary = true
			break
		}
	}

	return intent
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
