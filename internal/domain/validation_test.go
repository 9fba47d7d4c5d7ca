package domain

import (
	"errors"
	"math"
	"testing"
)

func strPtr(v string) *string   { return &v }
func f64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int         { return &v }

func completeInput() ListingInput {
	return ListingInput{
		Title:       strPtr("iPhone 15 Pro"),
		Description: "Brand new, sealed",
		Price:       f64Ptr(999.0),
		Seller:      strPtr("Apple Official"),
		Rating:      f64Ptr(4.7),
		ReviewCount: intPtr(1500),
		Category:    "electronics",
		Country:     "US",
		Images:      []string{"a.jpg"},
	}
}

func TestValidateAcceptsCompleteInput(t *testing.T) {
	t.Parallel()

	listing, err := completeInput().Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if listing.Title != "iPhone 15 Pro" || listing.Price != 999.0 || listing.ReviewCount != 1500 {
		t.Fatalf("unexpected listing: %+v", listing)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*ListingInput)
	}{
		{"missing title", func(in *ListingInput) { in.Title = nil }},
		{"blank title", func(in *ListingInput) { in.Title = strPtr("   ") }},
		{"missing price", func(in *ListingInput) { in.Price = nil }},
		{"nan price", func(in *ListingInput) { in.Price = f64Ptr(math.NaN()) }},
		{"infinite price", func(in *ListingInput) { in.Price = f64Ptr(math.Inf(1)) }},
		{"missing seller", func(in *ListingInput) { in.Seller = nil }},
		{"blank seller", func(in *ListingInput) { in.Seller = strPtr("") }},
		{"missing rating", func(in *ListingInput) { in.Rating = nil }},
		{"nan rating", func(in *ListingInput) { in.Rating = f64Ptr(math.NaN()) }},
		{"missing review count", func(in *ListingInput) { in.ReviewCount = nil }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := completeInput()
			tc.mutate(&in)
			if _, err := in.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestValidateAllowsOddButPresentValues(t *testing.T) {
	t.Parallel()

	in := completeInput()
	in.Price = f64Ptr(0)
	in.Rating = f64Ptr(9.5)
	in.ReviewCount = intPtr(0)
	if _, err := in.Validate(); err != nil {
		t.Fatalf("Validate() rejected present-but-odd values: %v", err)
	}
}

func TestValidateDefaultsImagesToEmptySlice(t *testing.T) {
	t.Parallel()

	in := completeInput()
	in.Images = nil
	listing, err := in.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if listing.Images == nil || len(listing.Images) != 0 {
		t.Fatalf("Images = %#v, want empty non-nil slice", listing.Images)
	}
}
