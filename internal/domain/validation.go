package domain

import (
	"fmt"
	"math"
	"strings"
)

// ListingInput is the wire shape of a listing submission. Required fields are
// pointers so that an absent JSON key is distinguishable from a zero value;
// validation happens exactly once here and nowhere downstream.
type ListingInput struct {
	Title       *string  `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Seller      *string  `json:"seller"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"review_count"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
	Images      []string `json:"images"`
}

// Validate checks field presence and basic shape and produces a typed Listing.
// Semantic range checks (rating 0-5, non-negative price) are deliberately not
// enforced: odd numeric input still gets a clamped score rather than an error.
func (in ListingInput) Validate() (Listing, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return Listing{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Price == nil {
		return Listing{}, fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	if math.IsNaN(*in.Price) || math.IsInf(*in.Price, 0) {
		return Listing{}, fmt.Errorf("%w: price must be a finite number", ErrInvalidInput)
	}
	if in.Seller == nil || strings.TrimSpace(*in.Seller) == "" {
		return Listing{}, fmt.Errorf("%w: seller is required", ErrInvalidInput)
	}
	if in.Rating == nil {
		return Listing{}, fmt.Errorf("%w: rating is required", ErrInvalidInput)
	}
	if math.IsNaN(*in.Rating) || math.IsInf(*in.Rating, 0) {
		return Listing{}, fmt.Errorf("%w: rating must be a finite number", ErrInvalidInput)
	}
	if in.ReviewCount == nil {
		return Listing{}, fmt.Errorf("%w: review_count is required", ErrInvalidInput)
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	return Listing{
		Title:       *in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Seller:      *in.Seller,
		Rating:      *in.Rating,
		ReviewCount: *in.ReviewCount,
		Category:    in.Category,
		Country:     in.Country,
		Images:      images,
	}, nil
}
