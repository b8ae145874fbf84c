package resolver

import (
	"context"
	"log"
	"strings"

	"SMART_CART/go-backend/internal/models"
)

// IndexQuerier is the visual similarity index boundary.
type IndexQuerier interface {
	Query(ctx context.Context, crop []byte, topK int) ([]models.ProductMatch, error)
}

// PriceLookup is the catalog service boundary.
type PriceLookup interface {
	GetPrice(ctx context.Context, barcode string) (*models.PriceInfo, error)
	GetPriceByLabel(ctx context.Context, label string) (*models.PriceInfo, error)
}

// genericNames are index placeholder names that lose the name tie-break
// to the catalog.
var genericNames = map[string]bool{
	"":        true,
	"unknown": true,
	"product": true,
	"item":    true,
}

func isGenericName(name string) bool {
	return genericNames[strings.ToLower(strings.TrimSpace(name))]
}

// Resolver turns a confirmed cart event into a product name, barcode and
// price. Resolution order: index match first (barcode price, index name
// unless generic), then catalog by raw label, then a title-cased label at
// price zero. Every tier failure degrades to the next; Resolve never
// returns an error.
type Resolver struct {
	index   IndexQuerier
	catalog PriceLookup
}

func New(index IndexQuerier, catalog PriceLookup) *Resolver {
	return &Resolver{index: index, catalog: catalog}
}

// Resolve identifies the product behind an event crop. The second return
// reports whether resolution fell past the similarity index.
func (r *Resolver) Resolve(ctx context.Context, ev *models.CartEvent) (models.ResolvedProduct, bool) {
	resolved := models.ResolvedProduct{
		ProductName: TitleLabel(ev.Label),
		Price:       0.0,
	}

	var match *models.ProductMatch
	if r.index != nil && len(ev.Crop) > 0 {
		matches, err := r.index.Query(ctx, PrepareCrop(ev.Crop), 1)
		if err != nil {
			log.Printf("Index query failed for %q: %v", ev.Label, err)
		} else if len(matches) > 0 {
			match = &matches[0]
		}
	}

	if match != nil && !isGenericName(match.Name) {
		resolved.ProductName = match.Name
	}

	if match != nil && match.Barcode != "" {
		resolved.Barcode = match.Barcode

		info, err := r.catalog.GetPrice(ctx, match.Barcode)
		if err != nil {
			log.Printf("Price lookup failed for barcode %s: %v", match.Barcode, err)
		} else {
			resolved.Price = info.Price
			if isGenericName(match.Name) && info.ProductName != "" {
				resolved.ProductName = info.ProductName
			}
			return resolved, false
		}
	}

	// No barcode, or the barcode had no price: fuzzy catalog match on the
	// raw label.
	info, err := r.catalog.GetPriceByLabel(ctx, ev.Label)
	if err != nil {
		log.Printf("Label price lookup failed for %q: %v", ev.Label, err)
		return resolved, true
	}

	resolved.Price = info.Price
	if (match == nil || isGenericName(match.Name)) && info.ProductName != "" {
		resolved.ProductName = info.ProductName
	}
	return resolved, true
}
