package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Guilhermegg-06/ELDEPARFUM/internal/domain"
	apperrors "github.com/Guilhermegg-06/ELDEPARFUM/pkg/errors"
	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/slug"
)

// ProductRepository implements repository.ProductRepository over a directory
// of per-product JSON files. The directory is the source of truth; files are
// re-read on every call, so editing a product file takes effect immediately.
type ProductRepository struct {
	dir    string
	logger *slog.Logger
}

// NewProductRepository creates a file-backed product repository reading from dir.
func NewProductRepository(dir string, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{
		dir:    dir,
		logger: logger,
	}
}

// productFile mirrors the on-disk JSON layout. Prices are stored as decimal
// BRL in the files and converted to centavos on load.
type productFile struct {
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

func (f productFile) toDomain() domain.Product {
	s := f.Slug
	if s == "" {
		// Files authored without an explicit slug fall back to one derived
		// from the display name.
		s = slug.Generate(f.Name)
	}
	return domain.Product{
		ID:           f.ID,
		Slug:         s,
		Name:         f.Name,
		Brand:        f.Brand,
		Price:        domain.CentsFromDecimal(f.Price),
		ML:           f.ML,
		Gender:       f.Gender,
		Family:       f.Family,
		NotesTop:     f.NotesTop,
		NotesHeart:   f.NotesHeart,
		NotesBase:    f.NotesBase,
		Description:  f.Description,
		Images:       f.Images,
		RatingAvg:    f.RatingAvg,
		RatingCount:  f.RatingCount,
		InStockLabel: f.InStockLabel,
		Featured:     f.Featured,
		BestSeller:   f.BestSeller,
	}
}

// All reads every *.json file in the catalog directory. Individual files
// that cannot be read or parsed are skipped with a warning so one bad file
// does not take the whole catalog down.
func (r *ProductRepository) All(ctx context.Context) ([]domain.Product, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir %s: %w", r.dir, err)
	}

	products := make([]domain.Product, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		p, err := r.readFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			r.logger.WarnContext(ctx, "skipping unreadable product file",
				slog.String("file", entry.Name()),
				slog.String("error", err.Error()),
			)
			continue
		}
		products = append(products, *p)
	}

	return products, nil
}

// BySlug returns the product with the given slug. The common case is a file
// named {slug}.json; as a fallback the whole directory is scanned, since a
// file's slug field may differ from its filename.
func (r *ProductRepository) BySlug(ctx context.Context, s string) (*domain.Product, error) {
	direct := filepath.Join(r.dir, s+".json")
	if p, err := r.readFile(direct); err == nil && p.Slug == s {
		return p, nil
	}

	products, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Slug == s {
			return &products[i], nil
		}
	}

	return nil, apperrors.NotFound("product", s)
}

func (r *ProductRepository) readFile(path string) (*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read product file: %w", err)
	}

	var f productFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal product file: %w", err)
	}

	p := f.toDomain()
	return &p, nil
}
