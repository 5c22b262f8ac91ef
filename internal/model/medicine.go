package model

// PriceInfo holds the pricing panel of a product page. Pack and strip
// granularities are optional; absent sub-fields stay empty strings so the
// structure is always complete in the persisted JSON.
type PriceInfo struct {
	UnitPrice  string `json:"unit_price"`
	PackName   string `json:"pack_name"`
	PackPrice  string `json:"pack_price"`
	StripName  string `json:"strip_name"`
	StripPrice string `json:"strip_price"`
}

// Medicine is one scraped product record. Identity fields may be empty when
// extraction missed an element on the source page.
type Medicine struct {
	ProductName  string    `json:"product_name"`
	ProductURL   string    `json:"product_url"`
	GenericName  string    `json:"generic_name"`
	Manufacturer string    `json:"manufacturer"`
	Strength     string    `json:"strength"`
	Description  string    `json:"description"`
	Details      string    `json:"details"`
	PriceInfo    PriceInfo `json:"price_info"`
	ImageURL     string    `json:"image_url"`
}

// DedupKey is the tuple that decides whether two records are the same
// logical product. Enrichment and cosmetic fields never participate.
type DedupKey struct {
	ProductName  string
	GenericName  string
	Manufacturer string
	Strength     string
	UnitPrice    string
}

func (m Medicine) DedupKey() DedupKey {
	return DedupKey{
		ProductName:  m.ProductName,
		GenericName:  m.GenericName,
		Manufacturer: m.Manufacturer,
		Strength:     m.Strength,
		UnitPrice:    m.PriceInfo.UnitPrice,
	}
}

// EnrichedMedicine is a Medicine plus AI-derived annotations. UserTips and
// Precautions carry at most one entry today; they are lists so more can be
// added without a schema change.
type EnrichedMedicine struct {
	Medicine
	UserTips    []string `json:"user_tips"`
	Precautions []string `json:"precautions"`
	Diseases    []string `json:"diseases"`
}
