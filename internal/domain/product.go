package domain

// Product represents a perfume in the catalog. Products are read-only: the
// catalog is externally supplied and never mutated by this service.
type Product struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Price        int64    `json:"price"` // centavos
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

// PrimaryImage returns the first image reference, or "" for an imageless product.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
