package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"medharvest/internal/model"
)

// ParseMedicine pulls the named fields out of a product detail page. A field
// whose element is missing comes back as an empty string; only unparseable
// markup fails the whole record.
func ParseMedicine(html, pageURL string) (model.Medicine, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.Medicine{}, err
	}

	return model.Medicine{
		ProductName:  cleanText(doc.Find("h1.page-heading-1-l.brand").First()),
		ProductURL:   pageURL,
		GenericName:  cleanText(doc.Find(`div[title="Generic Name"]`).First()),
		Manufacturer: cleanText(doc.Find(`div[title="Manufactured by"]`).First()),
		Strength:     cleanText(doc.Find(`div[title="Strength"]`).First()),
		Description:  cleanText(doc.Find("div.product-description").First()),
		Details:      cleanText(doc.Find("div.ac-body").First()),
		PriceInfo:    parsePriceInfo(doc),
		ImageURL:     doc.Find("img.img-defer").First().AttrOr("data-src", ""),
	}, nil
}

// cleanText collapses internal whitespace runs to single spaces and trims
// the ends. An empty selection yields "".
func cleanText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
