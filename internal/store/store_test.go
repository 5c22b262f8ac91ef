package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medharvest/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMedicine(name string) model.Medicine {
	return model.Medicine{
		ProductName:  name,
		ProductURL:   "https://example.com/" + name,
		GenericName:  "Paracetamol",
		Manufacturer: "Beximco Pharmaceuticals Ltd.",
		Strength:     "500 mg",
		PriceInfo:    model.PriceInfo{UnitPrice: "1.20"},
	}
}

func TestSaveAndReload(t *testing.T) {
	c := New[model.Medicine](filepath.Join(t.TempDir(), "raw.json"), testLogger())

	added, err := c.Save(testMedicine("Napa"))
	require.NoError(t, err)
	assert.True(t, added)

	recs := c.Load()
	require.Len(t, recs, 1)
	assert.Equal(t, "Napa", recs[0].ProductName)
	assert.Equal(t, "1.20", recs[0].PriceInfo.UnitPrice)
}

func TestSaveIsIdempotentForDuplicates(t *testing.T) {
	c := New[model.Medicine](filepath.Join(t.TempDir(), "raw.json"), testLogger())

	added, err := c.Save(testMedicine("Napa"))
	require.NoError(t, err)
	require.True(t, added)

	added, err = c.Save(testMedicine("Napa"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, c.Count())
}

func TestDedupKeyFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Medicine)
		wantNew bool
	}{
		{"identical record", func(m *model.Medicine) {}, false},
		{"different product name", func(m *model.Medicine) { m.ProductName = "Ace" }, true},
		{"different generic name", func(m *model.Medicine) { m.GenericName = "Ibuprofen" }, true},
		{"different manufacturer", func(m *model.Medicine) { m.Manufacturer = "Square" }, true},
		{"different strength", func(m *model.Medicine) { m.Strength = "250 mg" }, true},
		{"different unit price", func(m *model.Medicine) { m.PriceInfo.UnitPrice = "2.00" }, true},
		{"different description only", func(m *model.Medicine) { m.Description = "changed" }, false},
		{"different pack price only", func(m *model.Medicine) { m.PriceInfo.PackPrice = "99.00" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[model.Medicine](filepath.Join(t.TempDir(), "raw.json"), testLogger())

			_, err := c.Save(testMedicine("Napa"))
			require.NoError(t, err)

			second := testMedicine("Napa")
			tt.mutate(&second)
			added, err := c.Save(second)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNew, added)
		})
	}
}

func TestEnrichmentFieldsDoNotAffectDedup(t *testing.T) {
	c := New[model.EnrichedMedicine](filepath.Join(t.TempDir(), "processed.json"), testLogger())

	first := model.EnrichedMedicine{
		Medicine: testMedicine("Napa"),
		UserTips: []string{"take with food"},
	}
	added, err := c.Save(first)
	require.NoError(t, err)
	require.True(t, added)

	second := model.EnrichedMedicine{
		Medicine:    testMedicine("Napa"),
		UserTips:    []string{"a completely different tip"},
		Precautions: []string{"avoid alcohol"},
		Diseases:    []string{"fever", "headache"},
	}
	added, err = c.Save(second)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, c.Count())
}

func TestMissingFileIsEmpty(t *testing.T) {
	c := New[model.Medicine](filepath.Join(t.TempDir(), "does-not-exist.json"), testLogger())
	assert.Empty(t, c.Load())
	assert.Equal(t, 0, c.Count())
}

func TestCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := New[model.Medicine](path, testLogger())
	assert.Empty(t, c.Load())

	// The next save starts the collection over from scratch.
	added, err := c.Save(testMedicine("Napa"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, c.Count())
}
