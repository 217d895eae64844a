package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Soham964/AGRO/internal/client/api"
	"github.com/Soham964/AGRO/internal/client/models"
)

func printProducts(w io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tFRESHNESS\tSUPPLIER\tSTOCK")
	for _, p := range products {
		stock := "out of stock"
		if p.InStock {
			stock = fmt.Sprintf("%d", p.AvailableQuantity)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f/%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Category, p.Price, p.Unit, p.Freshness, p.SupplierName, stock)
	}
	tw.Flush()
}

// Shop lists the product catalog, one page at a time.
func (a *App) Shop(ctx context.Context) error {
	page, err := GetIntDefault(a.reader, "Page (empty for first)", 1, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	result, err := a.catalog.List(ctx, api.ProductQuery{Page: int(page)})
	if err != nil {
		fmt.Fprintf(a.out, "Could not load products: %v\n", err)
		return err
	}

	printProducts(a.out, result.Results)
	fmt.Fprintf(a.out, "%d product(s) total.\n", result.Count)
	return nil
}

// Search asks for a query, category and sort order and lists the matches.
func (a *App) Search(ctx context.Context) error {
	q, err := getSimpleText(a.reader, "Search for", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (spices/oils/flours/vegetables/grains, empty for all)", a.out)
	if err != nil {
		return err
	}
	sort, err := getSimpleText(a.reader, "Sort by (price/-price/rating/name, empty for default)", a.out)
	if err != nil {
		return err
	}

	products, err := a.catalog.Search(ctx, q, category, sort)
	if err != nil {
		fmt.Fprintf(a.out, "Search failed: %v\n", err)
		return err
	}

	printProducts(a.out, products)
	return nil
}

// ShowProduct prints one product in detail.
func (a *App) ShowProduct(ctx context.Context) error {
	id, err := GetInt(a.reader, "Product ID", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	p, err := a.catalog.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load product %d: %v\n", id, err)
		return err
	}

	fmt.Fprintf(a.out, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintf(a.out, "  %s\n", p.Description)
	fmt.Fprintf(a.out, "  Category:  %s\n", p.Category)
	fmt.Fprintf(a.out, "  Price:     %.2f per %s\n", p.Price, p.Unit)
	fmt.Fprintf(a.out, "  Freshness: %s\n", p.Freshness)
	fmt.Fprintf(a.out, "  Rating:    %.1f (%d ratings)\n", p.Rating, p.TotalRatings)
	fmt.Fprintf(a.out, "  Supplier:  %s (%s)\n", p.SupplierName, p.SupplierBusiness)
	if p.InStock {
		fmt.Fprintf(a.out, "  In stock:  %d %s\n", p.AvailableQuantity, p.Unit)
	} else {
		fmt.Fprintln(a.out, "  Out of stock")
	}
	return nil
}
