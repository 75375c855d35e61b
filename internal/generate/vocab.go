package generate

import "github.com/shopspring/decimal"

var firstNames = []string{
	"Liam", "Emma", "Noah", "Olivia", "Ava", "Isabella", "Sophia", "Mia", "Charlotte", "Amelia",
	"Ethan", "James", "Benjamin", "Lucas", "Mason", "Logan", "Elijah", "Alexander", "Henry", "Sebastian",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var emailDomains = []string{"example.com", "mail.com", "shopper.net", "customer.org"}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio",
	"San Diego", "Dallas", "San Jose", "Austin", "Jacksonville", "Fort Worth", "Columbus",
	"Charlotte", "San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
}

var countries = []string{
	"USA", "Canada", "United Kingdom", "Germany", "France", "Australia", "Spain", "Italy",
	"Netherlands", "Sweden",
}

// RootCategories is the fixed vocabulary a category's parent label is drawn from.
var RootCategories = []string{
	"Electronics", "Home & Kitchen", "Books", "Clothing", "Sports & Outdoors", "Automotive",
	"Beauty & Personal Care", "Toys & Games", "Grocery", "Health",
}

var departments = []string{
	"Accessories", "Audio", "Bedding", "Camera", "Computers", "Decor", "Fitness", "Footwear",
	"Garden", "Kids", "Lighting", "Mobile", "Office", "Outdoor", "Pets", "Storage", "Tools", "Wellness",
}

var productAdjectives = []string{
	"Premium", "Advanced", "Eco", "Compact", "Wireless", "Portable", "Smart", "Classic", "Deluxe",
	"Essential", "Limited", "Modern", "Rustic", "Ultra", "Vintage",
}

var productNouns = []string{
	"Headphones", "Laptop", "Backpack", "Mixer", "Sneakers", "Jacket", "Desk", "Chair", "Watch",
	"Camera", "Speaker", "Blender", "Cookware Set", "Treadmill", "Yoga Mat", "Vacuum",
	"Coffee Maker", "Guitar", "Drill", "Smartphone", "Tablet", "Monitor", "Printer", "Router",
}

var shippingMethods = []string{"Standard", "Express", "Next-Day", "Economy"}

// orderStatuses and statusWeights are parallel.
var (
	orderStatuses = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"}
	statusWeights = []float64{0.10, 0.15, 0.30, 0.40, 0.05}
)

// discounts is drawn uniformly; the repeated zeros weight it toward no discount.
var discounts = []decimal.Decimal{
	decimal.Zero,
	decimal.Zero,
	decimal.Zero,
	decimal.RequireFromString("0.05"),
	decimal.RequireFromString("0.10"),
	decimal.RequireFromString("0.15"),
}

// Numeric ranges.
const (
	minPrice        = 5.0
	maxPrice        = 1200.0
	minMargin       = 0.4
	maxMargin       = 0.7
	minStock        = 0
	maxStock        = 500
	minSKU          = 100000
	maxSKU          = 999999
	minQuantity     = 1
	maxQuantity     = 5
	minShippingDays = 2
	maxShippingDays = 14

	parentProbability   = 0.7
	inactiveProbability = 0.1
)

// ShippingLagBounds returns the inclusive range of whole days between an
// order date and its shipped date.
func ShippingLagBounds() (min, max int) {
	return minShippingDays, maxShippingDays
}
