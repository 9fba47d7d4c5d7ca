// Package producer generates synthetic product listings and drives them
// through the analyze endpoint, for demos and load tests of the scoring
// pipeline.
package producer

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
)

var (
	products = []string{
		"iPhone", "Samsung Galaxy", "MacBook Pro", "iPad", "Apple Watch",
		"Nike Shoes", "Adidas Sneakers", "Coach Bag", "Gucci Belt",
		"Diamond Ring", "Gold Necklace", "Rolex Watch", "Cartier Ring",
		"Harry Potter Book", "The Great Gatsby", "To Kill a Mockingbird",
	}

	legitSellers = []string{
		"Apple Official", "Samsung Direct", "Nike Store",
		"Amazon Basics", "Best Electronics", "TechMart Pro",
		"Authenticated Deals", "Brand Direct Store",
	}

	fakeSellers = []string{
		"SuperSeller123", "MegaDeals99", "RandomStore456",
		"CheapStuff789", "WeirdShop01", "MarketTrader2000",
		"UnknownSeller", "TempShop",
	}

	fakeDescriptions = []string{
		"best price ever buy now",
		"free shipping limited stock",
		"act now offer ends soon",
		"unbelievable price guaranteed authentic",
		"amazing deal dont miss",
		"wow incredible savings",
		"special offer just for you",
	}

	legitDescriptions = []string{
		"Authentic product, brand new in box",
		"Official seller with 10+ years experience",
		"Premium quality guaranteed",
		"Satisfaction guaranteed or money back",
		"Tested and verified authentic",
	}

	categories = []string{"electronics", "clothing", "jewelry", "watches", "books"}
)

// Price bands per category. Fake listings are priced at a fraction of the
// legitimate floor so the deviation feature has something to catch.
var legitPrices = map[string][2]float64{
	"electronics": {200, 2000},
	"clothing":    {20, 200},
	"jewelry":     {100, 5000},
	"watches":     {300, 10000},
	"books":       {8, 50},
}

var fakePrices = map[string][2]float64{
	"electronics": {50, 300},
	"clothing":    {5, 50},
	"jewelry":     {10, 200},
	"watches":     {20, 300},
	"books":       {1, 15},
}

// Generator emits synthetic listings, a configurable fraction of which carry
// the signals the heuristic extractors look for. A fixed seed makes runs
// reproducible.
type Generator struct {
	rng      *rand.Rand
	fakeRate float64
}

func NewGenerator(seed int64, fakeRate float64) *Generator {
	if fakeRate < 0 {
		fakeRate = 0
	}
	if fakeRate > 1 {
		fakeRate = 1
	}
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		fakeRate: fakeRate,
	}
}

func (g *Generator) Next() domain.Listing {
	category := categories[g.rng.Intn(len(categories))]
	if g.rng.Float64() < g.fakeRate {
		return g.fakeListing(category)
	}
	return g.legitListing(category)
}

func (g *Generator) fakeListing(category string) domain.Listing {
	product := products[g.rng.Intn(len(products))]
	hooks := []string{"LIMITED", "EXCLUSIVE", "MUST SEE"}
	title := fmt.Sprintf("%s SUPER DEAL!!! %s", strings.ToUpper(product), hooks[g.rng.Intn(len(hooks))])

	band, ok := fakePrices[category]
	if !ok {
		band = [2]float64{10, 200}
	}
	// Priced at 10-30% of the band floor, well under the category median.
	price := band[0]*0.1 + g.rng.Float64()*band[0]*0.2

	ratings := []float64{1.0, 1.5, 2.0, 4.8, 4.9, 5.0}
	reviewChoices := []int{0, 1, 2, 3, 5000 + g.rng.Intn(5000)}
	countries := []string{"CN", "IN"}

	images := []string{}
	if g.rng.Float64() < 0.5 {
		images = g.imageNames(1 + g.rng.Intn(3))
	}

	return domain.Listing{
		Title:       title,
		Description: fakeDescriptions[g.rng.Intn(len(fakeDescriptions))],
		Price:       round2(price),
		Seller:      fakeSellers[g.rng.Intn(len(fakeSellers))],
		Rating:      ratings[g.rng.Intn(len(ratings))],
		ReviewCount: reviewChoices[g.rng.Intn(len(reviewChoices))],
		Category:    category,
		Country:     countries[g.rng.Intn(len(countries))],
		Images:      images,
	}
}

func (g *Generator) legitListing(category string) domain.Listing {
	product := products[g.rng.Intn(len(products))]
	qualifiers := []string{"Premium", "Authentic", "Official", "New"}
	title := fmt.Sprintf("%s - %s", product, qualifiers[g.rng.Intn(len(qualifiers))])

	band, ok := legitPrices[category]
	if !ok {
		band = [2]float64{20, 500}
	}
	price := band[0] + g.rng.Float64()*(band[1]-band[0])

	countries := []string{"US", "UK", "CA"}

	return domain.Listing{
		Title:       title,
		Description: legitDescriptions[g.rng.Intn(len(legitDescriptions))],
		Price:       round2(price),
		Seller:      legitSellers[g.rng.Intn(len(legitSellers))],
		Rating:      round1(3.8 + g.rng.Float64()*1.2),
		ReviewCount: 100 + g.rng.Intn(9901),
		Category:    category,
		Country:     countries[g.rng.Intn(len(countries))],
		Images:      g.imageNames(3 + g.rng.Intn(6)),
	}
}

func (g *Generator) imageNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, fmt.Sprintf("img%d.jpg", i))
	}
	return names
}

func round2(v float64) float64 { return float64(int(v*100+0.5)) / 100 }

func round1(v float64) float64 { return float64(int(v*10+0.5)) / 10 }
