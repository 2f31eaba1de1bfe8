package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stylesphere/storefront/internal/domain/catalog"
)

type seedProduct struct {
	name        string
	description string
	price       string
	category    string
	imageURL    string
	stock       int
}

var seedCategories = []struct {
	name     string
	imageURL string
}{
	{"Men's Wear", "https://images.unsplash.com/photo-1618886614638-80e3c103d31a?crop=entropy&cs=srgb&fm=jpg&q=85"},
	{"Women's Wear", "https://images.unsplash.com/photo-1617922001439-4a2e6562f328?crop=entropy&cs=srgb&fm=jpg&q=85"},
	{"Children's Wear", "https://images.unsplash.com/photo-1622218286192-95f6a20083c7?crop=entropy&cs=srgb&fm=jpg&q=85"},
	{"Underwear", "https://images.unsplash.com/photo-1568441556126-f36ae0900180?crop=entropy&cs=srgb&fm=jpg&q=85"},
}

var seedProducts = []seedProduct{
	{
		name:        "Classic Cotton T-Shirt",
		description: "Premium quality cotton t-shirt in multiple colors",
		price:       "29.99",
		category:    "Men's Wear",
		imageURL:    "https://images.unsplash.com/photo-1562157873-818bc0726f68?crop=entropy&cs=srgb&fm=jpg&q=85",
		stock:       100,
	},
	{
		name:        "Elegant Women's Dress",
		description: "Beautiful and comfortable dress for all occasions",
		price:       "89.99",
		category:    "Women's Wear",
		imageURL:    "https://images.unsplash.com/photo-1525507119028-ed4c629a60a3?crop=entropy&cs=srgb&fm=jpg&q=85",
		stock:       75,
	},
	{
		name:        "Trendy Yellow Track Suit",
		description: "Comfortable and stylish track suit perfect for casual wear",
		price:       "79.99",
		category:    "Women's Wear",
		imageURL:    "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?crop=entropy&cs=srgb&fm=jpg&q=85",
		stock:       50,
	},
	{
		name:        "Kids Colorful Collection",
		description: "Vibrant and comfortable children's clothing collection",
		price:       "39.99",
		category:    "Children's Wear",
		imageURL:    "https://images.unsplash.com/photo-1622218286192-95f6a20083c7?crop=entropy&cs=srgb&fm=jpg&q=85",
		stock:       60,
	},
	{
		name:        "Professional Shirts Collection",
		description: "High-quality professional shirts for office and formal wear",
		price:       "59.99",
		category:    "Men's Wear",
		imageURL:    "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?crop=entropy&cs=srgb&fm=jpg&q=85",
		stock:       80,
	},
	{
		name:        "Stylish Outerwear",
		description: "Trendy coats and jackets for all seasons",
		price:       "149.99",
		category:    "Women's Wear",
		imageURL:    "https://images.unsplash.com/photo-1571513800374-df1bbe650e56?crop=entropy&cs=srgb&fm=jpg&q=85",
		stock:       40,
	},
}

// SeedCatalog inserts the sample categories and products when the catalog is
// empty. Re-running against a populated catalog is a no-op
func SeedCatalog(ctx context.Context, categories catalog.CategoryRepository, products catalog.ProductRepository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	count, err := categories.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	byName := make(map[string]*catalog.Category, len(seedCategories))

	if count == 0 {
		for _, sc := range seedCategories {
			category, err := catalog.NewCategory(sc.name, sc.imageURL)
			if err != nil {
				return fmt.Errorf("invalid seed category %q: %w", sc.name, err)
			}
			if err := categories.Save(ctx, category); err != nil {
				return fmt.Errorf("failed to seed category %q: %w", sc.name, err)
			}
			byName[category.Name] = category
		}
		logger.Info("seeded catalog categories", zap.Int("count", len(seedCategories)))
	} else {
		existing, err := categories.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		for i := range existing {
			byName[existing[i].Name] = &existing[i]
		}
	}

	count, err = products.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return fmt.Errorf("invalid seed price for %q: %w", sp.name, err)
		}

		product, err := catalog.NewProduct(sp.name, sp.description, price, sp.stock)
		if err != nil {
			return fmt.Errorf("invalid seed product %q: %w", sp.name, err)
		}
		product.SetImageURL(sp.imageURL)

		if category, ok := byName[sp.category]; ok {
			product.SetCategory(category.ID, category.Name)
		}

		if err := products.Save(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", sp.name, err)
		}
	}
	logger.Info("seeded catalog products", zap.Int("count", len(seedProducts)))

	return nil
}
