package product

import "oficina-criativa/internal/pkg/slug"

// slugByName maps the catalog's canonical product names, exactly as Hotmart
// reports them, to the storefront slugs. Hand-maintained so upstream renames
// stay auditable; keep entries in catalog order.
var slugByName = map[string]string{
	"+5000 Atividades":             "5000-atividades",
	"Kit Completo da Alfabetização": "kit-completo-alfabetizacao",
	"Kit Sala de Aula em 1 Hora":   "kit-sala-de-aula-1-hora",
	"Moldes Novos Todos os Meses":  "moldes-novos-todos-os-meses",
	"Painel das Palavras":          "painel-das-palavras",
	"Palavras Escondidas":          "palavras-escondidas",
}

// SlugForName resolves a provider product name to a catalog slug, falling
// back to a deterministic transform for names the table does not know.
func SlugForName(name string) string {
	if s, ok := slugByName[name]; ok {
		return s
	}
	return slug.Fallback(name)
}

// Catalog returns the built-in product set, used to seed an empty products
// table and as the public listing fallback.
func Catalog() []Attributes {
	return []Attributes{
		{
			Slug:             "5000-atividades",
			Name:             "+5000 Atividades",
			PriceText:        "€10,00",
			ShortDescription: "Mais de 5.000 atividades prontas a imprimir para todas as situações educativas.",
			WistiaMediaID:    "kfrilcm89f",
			WistiaAspect:     "0.75",
			IsActive:         true,
			SortOrder:        1,
		},
		{
			Slug:             "kit-completo-alfabetizacao",
			Name:             "Kit Completo da Alfabetização",
			PriceText:        "€7,00",
			ShortDescription: "Material completo para ensinar leitura e escrita de forma prática e divertida.",
			WistiaMediaID:    "wokphhfz63",
			WistiaAspect:     "0.5625",
			WistiaMediaID2:   "ys9jtv5vcm",
			WistiaAspect2:    "0.5625",
			VideoDividerText: "Veja como as Atividades Funcionam:",
			IsActive:         true,
			SortOrder:        2,
		},
		{
			Slug:             "kit-sala-de-aula-1-hora",
			Name:             "Kit Sala de Aula em 1 Hora",
			PriceText:        "€3,90",
			ShortDescription: "Modelos prontos de mural, calendário e decoração para montar a sala rapidamente.",
			IsActive:         true,
			SortOrder:        3,
		},
		{
			Slug:             "moldes-novos-todos-os-meses",
			Name:             "Moldes Novos Todos os Meses",
			PriceText:        "€5,00",
			ShortDescription: "Moldes de EVA novos todos os meses para manter as aulas sempre atualizadas.",
			IsActive:         true,
			SortOrder:        4,
		},
		{
			Slug:             "painel-das-palavras",
			Name:             "Painel das Palavras",
			PriceText:        "€4,00",
			ShortDescription: "Painel com famílias silábicas completas para apoiar a leitura.",
			IsActive:         true,
			SortOrder:        5,
		},
		{
			Slug:             "palavras-escondidas",
			Name:             "Palavras Escondidas",
			PriceText:        "€4,00",
			ShortDescription: "Atividade interativa de lupa que transforma a leitura em brincadeira.",
			IsActive:         true,
			SortOrder:        6,
		},
	}
}
