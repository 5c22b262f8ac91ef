package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"medharvest/internal/model"
)

const currencyGlyph = "৳"

var parenStripper = strings.NewReplacer("(", "", ")", "")

// parsePriceInfo reads the pricing panel. Extraction is best effort field by
// field: a malformed pack line leaves the unit price intact, a missing strip
// sub-panel leaves the pack fields intact. Strip data is only ever derived
// from an existing pack line.
func parsePriceInfo(doc *goquery.Document) model.PriceInfo {
	var info model.PriceInfo

	panel := doc.Find("div.package-container").First()
	if panel.Length() == 0 {
		return info
	}

	// The second inline span of the panel carries the unit price.
	spans := panel.Find("span")
	if spans.Length() > 1 {
		info.UnitPrice = stripCurrency(spans.Eq(1).Text())
	}

	packInfo := panel.Find("span.pack-size-info").First()
	if packInfo.Length() == 0 {
		return info
	}
	packText := parenStripper.Replace(strings.TrimSpace(packInfo.Text()))
	packName, packPrice, ok := strings.Cut(packText, ": ")
	if !ok {
		return info
	}
	info.PackName = packName + "'s pack"
	info.PackPrice = stripCurrency(packPrice)

	// A nested sub-panel with at least two spans holds the strip price.
	strip := panel.Find("div").First()
	if strip.Length() == 0 {
		return info
	}
	stripSpans := strip.Find("span")
	if stripSpans.Length() > 1 {
		if fields := strings.Fields(packName); len(fields) > 0 {
			info.StripName = fields[0] + "'s strip"
		}
		info.StripPrice = stripCurrency(stripSpans.Eq(1).Text())
	}

	return info
}

func stripCurrency(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(s), currencyGlyph, ""))
}
