package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medharvest/internal/model"
)

func parsePanel(t *testing.T, html string) model.PriceInfo {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return parsePriceInfo(doc)
}

func TestParsePriceInfo(t *testing.T) {
	tests := []struct {
		name string
		html string
		want model.PriceInfo
	}{
		{
			name: "no pricing panel",
			html: `<div class="something-else"><span>৳ 9.99</span></div>`,
			want: model.PriceInfo{},
		},
		{
			name: "unit price only",
			html: `<div class="package-container mt-5 mb-5">
				<span>Unit Price:</span><span>৳ 12.00</span>
			</div>`,
			want: model.PriceInfo{UnitPrice: "12.00"},
		},
		{
			name: "unit price with pack",
			html: `<div class="package-container mt-5 mb-5">
				<span>Unit Price:</span><span>৳ 12.00</span>
				<span class="pack-size-info">(10: ৳120.00)</span>
			</div>`,
			want: model.PriceInfo{
				UnitPrice: "12.00",
				PackName:  "10's pack",
				PackPrice: "120.00",
			},
		},
		{
			name: "unit price with pack and strip",
			html: `<div class="package-container mt-5 mb-5">
				<span>Unit Price:</span><span>৳ 12.00</span>
				<span class="pack-size-info">(10: ৳120.00)</span>
				<div><span>Strip Price:</span><span>৳ 60.00</span></div>
			</div>`,
			want: model.PriceInfo{
				UnitPrice:  "12.00",
				PackName:   "10's pack",
				PackPrice:  "120.00",
				StripName:  "10's strip",
				StripPrice: "60.00",
			},
		},
		{
			name: "multi word pack name derives strip from first token",
			html: `<div class="package-container mt-5 mb-5">
				<span>Unit Price:</span><span>৳ 5.00</span>
				<span class="pack-size-info">(20 pcs: ৳100.00)</span>
				<div><span>Strip Price:</span><span>৳ 50.00</span></div>
			</div>`,
			want: model.PriceInfo{
				UnitPrice:  "5.00",
				PackName:   "20 pcs's pack",
				PackPrice:  "100.00",
				StripName:  "20's strip",
				StripPrice: "50.00",
			},
		},
		{
			name: "malformed pack line degrades to unit price only",
			html: `<div class="package-container mt-5 mb-5">
				<span>Unit Price:</span><span>৳ 12.00</span>
				<span class="pack-size-info">(10 pack ৳120.00)</span>
			</div>`,
			want: model.PriceInfo{UnitPrice: "12.00"},
		},
		{
			name: "pack without strip sub-panel",
			html: `<div class="package-container mt-5 mb-5">
				<span>Unit Price:</span><span>৳ 12.00</span>
				<span class="pack-size-info">(10: ৳120.00)</span>
				<div><span>only one span</span></div>
			</div>`,
			want: model.PriceInfo{
				UnitPrice: "12.00",
				PackName:  "10's pack",
				PackPrice: "120.00",
			},
		},
		{
			name: "single span yields no unit price",
			html: `<div class="package-container mt-5 mb-5">
				<span>Unit Price:</span>
			</div>`,
			want: model.PriceInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePanel(t, tt.html))
		})
	}
}
