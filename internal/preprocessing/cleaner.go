// Package preprocessing normalizes raw Brazilian-Portuguese review text
// before any keyword scoring runs over it.
package preprocessing

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Stopwords tuned for Brazilian e-commerce review text. Besides the usual
// articles and prepositions it drops words present in nearly every review
// (produto, comprei, entrega...) that would dominate any frequency count.
var ecommerceStopwords = map[string]struct{}{
	"o": {}, "a": {}, "de": {}, "da": {}, "do": {}, "em": {}, "para": {},
	"com": {}, "por": {}, "no": {}, "na": {}, "os": {}, "as": {}, "dos": {},
	"das": {}, "um": {}, "uma": {}, "ao": {}, "aos": {}, "à": {}, "às": {},
	"produto": {}, "comprei": {}, "compra": {}, "chegou": {}, "recebi": {},
	"entrega": {}, "prazo": {}, "site": {}, "loja": {}, "e": {}, "que": {},
	"mais": {}, "muito": {}, "bem": {}, "quando": {}, "como": {},
	"também": {}, "já": {}, "está": {}, "foi": {}, "ser": {}, "ter": {},
}

// Informal contractions and abbreviations expanded by whole-token match.
var contractions = map[string]string{
	"tá":  "está",
	"pra": "para",
	"pro": "para o",
	"né":  "não é",
	"vc":  "você",
	"vcs": "vocês",
	"mt":  "muito",
	"mto": "muito",
	"tb":  "também",
	"tbm": "também",
	"q":   "que",
	"oq":  "o que",
	"pq":  "porque",
	"td":  "tudo",
	"blz": "beleza",
	"vlw": "valeu",
}

var (
	urlPattern   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	// Keeps word chars, whitespace, basic punctuation and the accented
	// letters Portuguese actually uses.
	specialCharPattern = regexp.MustCompile(`[^\w\s!?.,áàâãéèêíïóôõöúçñ-]`)
	punctRunPattern    = regexp.MustCompile(`[!?.,-]{2,}`)
	spacePattern       = regexp.MustCompile(`\s+`)
	emojiPattern       = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}]+`)
)

// Clean runs the full normalization pipeline. The step order matters:
// contractions are expanded before Unicode normalization, and special
// characters are stripped only after URLs and emails are gone so their
// domain tokens never leak into the output. Clean is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = expandContractions(text)
	text = norm.NFKC.String(text)
	text = specialCharPattern.ReplaceAllString(text, "")
	text = punctRunPattern.ReplaceAllString(text, " ")
	text = spacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

func expandContractions(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if expanded, ok := contractions[word]; ok {
			words[i] = expanded
		}
	}
	return strings.Join(words, " ")
}

// Tokenize splits cleaned text for word-frequency analysis, dropping
// stopwords and tokens of two runes or fewer.
func Tokenize(text string, removeStopwords bool) []string {
	var tokens []string
	for _, token := range strings.Fields(text) {
		if removeStopwords {
			if _, ok := ecommerceStopwords[token]; ok {
				continue
			}
		}
		if utf8.RuneCountInString(token) <= 2 {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// ExtractEmojis returns every emoji run found in the text, covering the
// emoticon, symbol/pictograph, transport and flag Unicode blocks.
func ExtractEmojis(text string) []string {
	return emojiPattern.FindAllString(text, -1)
}

// WordFrequencies counts stopword-filtered tokens across texts and returns
// the topN most frequent, ties broken alphabetically.
func WordFrequencies(texts []string, topN int) []models.WordCount {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, token := range Tokenize(text, true) {
			counts[token]++
		}
	}

	freqs := make([]models.WordCount, 0, len(counts))
	for word, count := range counts {
		freqs = append(freqs, models.WordCount{Word: word, Count: count})
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Word < freqs[j].Word
	})

	if topN > 0 && len(freqs) > topN {
		freqs = freqs[:topN]
	}
	return freqs
}
