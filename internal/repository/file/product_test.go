package file

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Guilhermegg-06/ELDEPARFUM/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeProductFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const sauvageJSON = `{
	"id": "p-001",
	"slug": "sauvage",
	"name": "Sauvage",
	"brand": "Dior",
	"price": 280.00,
	"ml": 100,
	"gender": "masculino",
	"family": "amadeirado",
	"notes_top": ["bergamota", "pimenta"],
	"notes_heart": ["lavanda"],
	"notes_base": ["ambroxan", "cedro"],
	"description": "Frescor radiante",
	"images": ["/images/sauvage-1.jpg", "/images/sauvage-2.jpg"],
	"rating_avg": 4.8,
	"rating_count": 510,
	"in_stock_label": "Em estoque",
	"featured": true,
	"best_seller": true
}`

func TestAll_ReadsProducts(t *testing.T) {
	dir := t.TempDir()
	writeProductFile(t, dir, "sauvage.json", sauvageJSON)
	writeProductFile(t, dir, "bleu.json", `{"slug":"bleu","name":"Bleu","brand":"Chanel","price":250.50,"ml":100}`)

	repo := NewProductRepository(dir, testLogger())
	products, err := repo.All(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	for _, p := range products {
		if p.Slug == "sauvage" {
			assert.Equal(t, "Dior", p.Brand)
			assert.Equal(t, int64(28000), p.Price)
			assert.Equal(t, []string{"bergamota", "pimenta"}, p.NotesTop)
			assert.Equal(t, "/images/sauvage-1.jpg", p.PrimaryImage())
			assert.True(t, p.Featured)
		}
		if p.Slug == "bleu" {
			assert.Equal(t, int64(25050), p.Price)
		}
	}
}

func TestAll_SkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeProductFile(t, dir, "sauvage.json", sauvageJSON)
	writeProductFile(t, dir, "broken.json", `{not json at all`)

	repo := NewProductRepository(dir, testLogger())
	products, err := repo.All(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestAll_IgnoresNonJSONFiles(t *testing.T) {
	dir := t.TempDir()
	writeProductFile(t, dir, "sauvage.json", sauvageJSON)
	writeProductFile(t, dir, "README.md", "# notes")

	repo := NewProductRepository(dir, testLogger())
	products, err := repo.All(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestAll_MissingDirectory(t *testing.T) {
	repo := NewProductRepository(filepath.Join(t.TempDir(), "missing"), testLogger())

	_, err := repo.All(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog dir")
}

func TestAll_DerivesSlugWhenMissing(t *testing.T) {
	dir := t.TempDir()
	writeProductFile(t, dir, "colonia.json", `{"name":"Água de Colônia","brand":"Granado","price":89.90,"ml":250}`)

	repo := NewProductRepository(dir, testLogger())
	products, err := repo.All(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "agua-de-colonia", products[0].Slug)
}

func TestBySlug_DirectFilename(t *testing.T) {
	dir := t.TempDir()
	writeProductFile(t, dir, "sauvage.json", sauvageJSON)

	repo := NewProductRepository(dir, testLogger())
	p, err := repo.BySlug(context.Background(), "sauvage")

	require.NoError(t, err)
	assert.Equal(t, "Sauvage", p.Name)
}

func TestBySlug_ScansWhenFilenameDiffers(t *testing.T) {
	dir := t.TempDir()
	// Filename does not match the slug inside the file.
	writeProductFile(t, dir, "produto-1.json", sauvageJSON)

	repo := NewProductRepository(dir, testLogger())
	p, err := repo.BySlug(context.Background(), "sauvage")

	require.NoError(t, err)
	assert.Equal(t, "Sauvage", p.Name)
}

func TestBySlug_NotFound(t *testing.T) {
	dir := t.TempDir()
	writeProductFile(t, dir, "sauvage.json", sauvageJSON)

	repo := NewProductRepository(dir, testLogger())
	_, err := repo.BySlug(context.Background(), "nonexistent")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
