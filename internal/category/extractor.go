// Package category maps cleaned review text to a product category by
// keyword co-occurrence counting.
package category

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/reviewpulse/internal/models"
)

type categoryKeywords struct {
	Name     string
	Keywords []string
}

// categoryTable is an ordered list, not a map: declaration order is the
// tie-break order when two categories reach the same match count.
var categoryTable = []categoryKeywords{
	{"Smartphones", []string{
		"celular", "smartphone", "iphone", "samsung", "motorola",
		"moto g", "galaxy", "xiaomi", "android", "ios", "fone",
		"bateria", "camera", "aplicativo", "tela touch",
	}},
	{"Notebooks e Computadores", []string{
		"notebook", "laptop", "computador", "pc", "desktop",
		"processador", "memoria ram", "ssd", "hd", "windows",
		"placa de video", "cooler",
	}},
	{"TVs e Monitores", []string{
		"tv", "televisao", "monitor", "smart tv", "led", "lcd",
		"4k", "hdmi", "polegadas", "controle remoto", "netflix",
		"youtube", "tela grande",
	}},
	{"Eletrodomésticos", []string{
		"geladeira", "freezer", "microondas", "fogao", "forno",
		"liquidificador", "batedeira", "aspirador", "lavadora",
		"ferro de passar", "ar condicionado", "ventilador", "aquecedor",
	}},
	{"Móveis", []string{
		"sofa", "cama", "colchao", "mesa", "cadeira", "estante",
		"guarda-roupa", "armario", "rack", "estofado", "madeira",
		"movel", "comoda",
	}},
	{"Beleza e Saúde", []string{
		"shampoo", "condicionador", "perfume", "maquiagem", "creme",
		"protetor", "cabelo", "pele", "hidratante", "sabonete",
		"esmalte", "batom", "cosmetico",
	}},
	{"Livros e Mídia", []string{
		"livro", "romance", "autor", "paginas", "leitura", "historia",
		"capitulo", "cd", "dvd", "filme", "blu-ray",
	}},
	{"Esporte e Lazer", []string{
		"bicicleta", "bike", "tenis", "corrida", "academia", "peso",
		"exercicio", "bola", "esporte", "treino",
	}},
	{"Moda e Vestuário", []string{
		"roupa", "camiseta", "calca", "vestido", "sapato", "bolsa",
		"tecido", "tamanho", "cor", "estampa", "moda",
	}},
	{"Casa e Decoração", []string{
		"panela", "cozinha", "decoracao", "quadro", "vaso", "tapete",
		"cortina", "almofada", "luminaria",
	}},
	{"Informática e Acessórios", []string{
		"mouse", "teclado", "headset", "webcam", "impressora",
		"pen drive", "cabo usb", "adaptador", "carregador",
	}},
}

// Brand/model mention patterns: known brands, model lines with an optional
// suffix, and the generic "word + 2-4 digit number" shape ("tv 55").
var mentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(samsung|apple|lg|motorola|xiaomi|sony|philips|brastemp|consul)\b`),
	regexp.MustCompile(`\b(galaxy|iphone|moto g|redmi|positivo)\s*\w*\b`),
	regexp.MustCompile(`\b(\w+\s*\d{2,4})\b`),
}

const (
	maxMentions = 5
	// Match count at which confidence saturates at 1.0.
	confidenceSaturation = 3
)

// Classify returns the category whose keywords co-occur most often in the
// cleaned text, with a confidence of min(matches/3, 1). Ties resolve to the
// category declared first in the table. Empty text yields ("Outros", 0).
func Classify(text string) models.CategoryResult {
	if text == "" {
		return models.CategoryResult{Category: models.CategoryOther, Confidence: 0.0}
	}

	lower := strings.ToLower(text)

	bestCategory := ""
	bestScore := 0
	for _, entry := range categoryTable {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestCategory = entry.Name
		}
	}

	if bestScore == 0 {
		return models.CategoryResult{Category: models.CategoryOther, Confidence: 0.0}
	}

	confidence := float64(bestScore) / confidenceSaturation
	if confidence > 1.0 {
		confidence = 1.0
	}

	return models.CategoryResult{Category: bestCategory, Confidence: confidence}
}

// ExtractProductMentions pulls brand and model mentions out of the text,
// deduplicated in first-seen order and capped at five.
func ExtractProductMentions(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)

	var mentions []string
	for _, pattern := range mentionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			mentions = append(mentions, match[1])
		}
	}

	seen := make(map[string]struct{}, len(mentions))
	var unique []string
	for _, mention := range mentions {
		if _, ok := seen[mention]; ok {
			continue
		}
		if utf8.RuneCountInString(mention) <= 2 {
			continue
		}
		seen[mention] = struct{}{}
		unique = append(unique, mention)
		if len(unique) == maxMentions {
			break
		}
	}

	return unique
}

// Distribution counts classified categories over a batch of texts.
func Distribution(texts []string) map[string]int {
	dist := make(map[string]int)
	for _, text := range texts {
		dist[Classify(text).Category]++
	}
	return dist
}

// AllCategories lists every category name in declaration order, plus the
// "Outros" sentinel.
func AllCategories() []string {
	names := make([]string, 0, len(categoryTable)+1)
	for _, entry := range categoryTable {
		names = append(names, entry.Name)
	}
	return append(names, models.CategoryOther)
}
