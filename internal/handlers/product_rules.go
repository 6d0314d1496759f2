package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var imageURLPattern = regexp.MustCompile(`^https?://.+`)

type productInput struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Images             []string `json:"images"`
	CollectionID       string   `json:"collectionId" binding:"required"`
	Price              *float64 `json:"price" binding:"required"`
	OriginalPrice      *float64 `json:"originalPrice"`
	DiscountPercentage *float64 `json:"discountPercentage"`
	IsOnSale           *bool    `json:"isOnSale"`
	Sizes              []string `json:"sizes"`
	Colors             []string `json:"colors"`
	Stock              *int     `json:"stock"`
	IsActive           *bool    `json:"isActive"`
}

// validateProductInput applies the catalog field rules shared by create and
// update.
func validateProductInput(req productInput) []fieldError {
	var errs []fieldError

	title := strings.TrimSpace(req.Title)
	if title == "" || utf8.RuneCountInString(title) > 200 {
		errs = append(errs, fieldError{"title", "Title must be between 1 and 200 characters"})
	}

	description := strings.TrimSpace(req.Description)
	if description == "" || utf8.RuneCountInString(description) > 2000 {
		errs = append(errs, fieldError{"description", "Description must be between 1 and 2000 characters"})
	}

	for _, url := range req.Images {
		if !imageURLPattern.MatchString(url) {
			errs = append(errs, fieldError{"images", "Each image must be a valid URL"})
			break
		}
	}

	price := 0.0
	if req.Price != nil {
		price = *req.Price
	}
	if price < 0 || price > 1000000 {
		errs = append(errs, fieldError{"price", "Price must be between 0 and 1,000,000"})
	}

	// originalPrice, when set, must exceed the current price.
	if req.OriginalPrice != nil && *req.OriginalPrice != 0 && *req.OriginalPrice <= price {
		errs = append(errs, fieldError{"originalPrice", "Original price must be greater than current price"})
	}

	if req.DiscountPercentage != nil && (*req.DiscountPercentage < 0 || *req.DiscountPercentage > 100) {
		errs = append(errs, fieldError{"discountPercentage", "Discount percentage must be between 0 and 100"})
	}

	if req.Stock != nil && *req.Stock < 0 {
		errs = append(errs, fieldError{"stock", "Stock cannot be negative"})
	}

	return errs
}

// normalizeSizes trims and uppercases size labels, dropping empties.
func normalizeSizes(sizes []string) []string {
	out := make([]string, 0, len(sizes))
	for _, s := range sizes {
		if trimmed := strings.ToUpper(strings.TrimSpace(s)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// normalizeColors trims color labels, dropping empties.
func normalizeColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, s := range colors {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
