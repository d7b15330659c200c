// Package main implements a standalone seed script that populates the
// catalog directory with realistic perfume product files. The base catalog
// is curated; passing a count above its size pads it with generated
// variations, which is useful for exercising filters against a larger
// catalog.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

type product struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Price        float64  `json:"price"`
	ML           int      `json:"ml"`
	Gender       string   `json:"gender"`
	Family       string   `json:"family"`
	NotesTop     []string `json:"notes_top"`
	NotesHeart   []string `json:"notes_heart"`
	NotesBase    []string `json:"notes_base"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	RatingAvg    float64  `json:"rating_avg"`
	RatingCount  int      `json:"rating_count"`
	InStockLabel string   `json:"in_stock_label"`
	Featured     bool     `json:"featured"`
	BestSeller   bool     `json:"best_seller"`
}

var baseCatalog = []product{
	{
		ID: "p-001", Slug: "sauvage", Name: "Sauvage", Brand: "Dior",
		Price: 599.90, ML: 100, Gender: "masculino", Family: "amadeirado",
		NotesTop:   []string{"bergamota", "pimenta"},
		NotesHeart: []string{"lavanda", "gerânio"},
		NotesBase:  []string{"ambroxan", "cedro"},
		Description: "Frescor radiante com caráter selvagem, inspirado em " +
			"paisagens de horizonte aberto.",
		Images:       []string{"/images/sauvage-1.jpg", "/images/sauvage-2.jpg"},
		RatingAvg:    4.8, RatingCount: 512,
		InStockLabel: "Em estoque", Featured: true, BestSeller: true,
	},
	{
		ID: "p-002", Slug: "bleu-de-chanel", Name: "Bleu de Chanel", Brand: "Chanel",
		Price: 649.90, ML: 100, Gender: "masculino", Family: "amadeirado",
		NotesTop:   []string{"limão", "hortelã"},
		NotesHeart: []string{"gengibre", "noz-moscada"},
		NotesBase:  []string{"sândalo", "cedro"},
		Description: "Um aromático amadeirado de liberdade, elegante em " +
			"qualquer ocasião.",
		Images:       []string{"/images/bleu-1.jpg"},
		RatingAvg:    4.7, RatingCount: 438,
		InStockLabel: "Em estoque", Featured: true,
	},
	{
		ID: "p-003", Slug: "la-vie-est-belle", Name: "La Vie Est Belle", Brand: "Lancôme",
		Price: 579.90, ML: 75, Gender: "feminino", Family: "floral",
		NotesTop:   []string{"groselha", "pera"},
		NotesHeart: []string{"íris", "jasmim", "flor de laranjeira"},
		NotesBase:  []string{"pralinê", "baunilha", "patchouli"},
		Description: "A fragrância da felicidade: um floral gourmand doce e " +
			"luminoso.",
		Images:       []string{"/images/la-vie-1.jpg"},
		RatingAvg:    4.9, RatingCount: 903,
		InStockLabel: "Em estoque", BestSeller: true,
	},
	{
		ID: "p-004", Slug: "good-girl", Name: "Good Girl", Brand: "Carolina Herrera",
		Price: 559.90, ML: 80, Gender: "feminino", Family: "oriental",
		NotesTop:   []string{"amêndoa", "café"},
		NotesHeart: []string{"tuberosa", "jasmim sambac"},
		NotesBase:  []string{"fava tonka", "cacau"},
		Description: "Contraste entre a luz floral e a escuridão do cacau, no " +
			"icônico frasco de salto.",
		Images:       []string{"/images/good-girl-1.jpg"},
		RatingAvg:    4.6, RatingCount: 377,
		InStockLabel: "Em estoque",
	},
	{
		ID: "p-005", Slug: "one-million", Name: "1 Million", Brand: "Paco Rabanne",
		Price: 499.90, ML: 100, Gender: "masculino", Family: "oriental",
		NotesTop:   []string{"toranja", "hortelã"},
		NotesHeart: []string{"canela", "rosa"},
		NotesBase:  []string{"couro", "âmbar"},
		Description:  "Couro especiado e brilhante como uma barra de ouro.",
		Images:       []string{"/images/one-million-1.jpg"},
		RatingAvg:    4.5, RatingCount: 651,
		InStockLabel: "Em estoque", BestSeller: true,
	},
	{
		ID: "p-006", Slug: "light-blue", Name: "Light Blue", Brand: "Dolce & Gabbana",
		Price: 459.90, ML: 100, Gender: "feminino", Family: "citrico",
		NotesTop:   []string{"limão siciliano", "maçã verde"},
		NotesHeart: []string{"jasmim", "rosa branca"},
		NotesBase:  []string{"cedro", "almíscar"},
		Description:  "O verão mediterrâneo em um frasco: cítrico, leve e vibrante.",
		Images:       []string{"/images/light-blue-1.jpg"},
		RatingAvg:    4.4, RatingCount: 289,
		InStockLabel: "Em estoque", Featured: true,
	},
}

var (
	fillBrands   = []string{"Dior", "Chanel", "Lancôme", "Paco Rabanne", "Armani", "Versace"}
	fillFamilies = []string{"amadeirado", "floral", "oriental", "citrico"}
	fillGenders  = []string{"masculino", "feminino", "unissex"}
	fillSizes    = []int{30, 50, 75, 100, 125}
)

func main() {
	dir := flag.String("dir", getEnv("PRODUCTS_DIR", "./data/products"), "catalog directory to write product files into")
	count := flag.Int("count", len(baseCatalog), "total number of products to generate")
	seed := flag.Int64("seed", 42, "random seed for generated products")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("create catalog dir: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	written := 0
	for i := 0; i < *count; i++ {
		var p product
		if i < len(baseCatalog) {
			p = baseCatalog[i]
		} else {
			p = generated(rng, i)
		}
		if err := writeProduct(*dir, p); err != nil {
			log.Fatalf("write product %s: %v", p.Slug, err)
		}
		written++
	}

	log.Printf("seeded %d products into %s", written, *dir)
}

// generated fabricates a product varying brand, family, and price. Names are
// numbered so slugs stay unique.
func generated(rng *rand.Rand, i int) product {
	brand := fillBrands[rng.Intn(len(fillBrands))]
	family := fillFamilies[rng.Intn(len(fillFamilies))]
	name := fmt.Sprintf("Essência No %d", i+1)
	s := fmt.Sprintf("essencia-no-%d", i+1)

	return product{
		ID:           fmt.Sprintf("p-%03d", i+1),
		Slug:         s,
		Name:         name,
		Brand:        brand,
		Price:        float64(15000+rng.Intn(55000)) / 100,
		ML:           fillSizes[rng.Intn(len(fillSizes))],
		Gender:       fillGenders[rng.Intn(len(fillGenders))],
		Family:       family,
		NotesTop:     []string{"bergamota"},
		NotesHeart:   []string{"jasmim"},
		NotesBase:    []string{"almíscar"},
		Description:  fmt.Sprintf("Fragrância %s da casa %s.", family, brand),
		Images:       []string{fmt.Sprintf("/images/%s-1.jpg", s)},
		RatingAvg:    3.5 + rng.Float64()*1.5,
		RatingCount:  rng.Intn(1000),
		InStockLabel: "Em estoque",
		Featured:     rng.Intn(10) == 0,
		BestSeller:   rng.Intn(10) == 0,
	}
}

func writeProduct(dir string, p product) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	path := filepath.Join(dir, strings.ToLower(p.Slug)+".json")
	return os.WriteFile(path, data, 0o644)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
