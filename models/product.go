package models

type Category string

const (
	CategoryAll         Category = "All"
	CategoryElectronics Category = "Electronics"
	CategoryFashion     Category = "Fashion"
	CategoryHome        Category = "Home"
	CategoryBeauty      Category = "Beauty"
	CategoryGadgets     Category = "Gadgets"
	CategoryGrocery     Category = "Grocery"
	CategorySports      Category = "Sports"
)

// AllCategories lists every category in display order, the All wildcard first.
func AllCategories() []Category {
	return []Category{
		CategoryAll,
		CategoryElectronics,
		CategoryFashion,
		CategoryHome,
		CategoryBeauty,
		CategoryGadgets,
		CategoryGrocery,
		CategorySports,
	}
}

func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

type Seller struct {
	Name      string `json:"name"`
	Rating    string `json:"rating"`
	Followers string `json:"followers"`
}

type UserReview struct {
	User    string `json:"user"`
	Comment string `json:"comment"`
	Stars   int    `json:"stars"`
	Date    string `json:"date"`
}

type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Price         int               `json:"price"`
	OriginalPrice int               `json:"original_price"`
	Category      Category          `json:"category"`
	Image         string            `json:"image"`
	Rating        float64           `json:"rating"`
	Reviews       int               `json:"reviews"`
	Description   string            `json:"description"`
	Tag           string            `json:"tag,omitempty"`
	Specs         map[string]string `json:"specs,omitempty"`
	Seller        *Seller           `json:"seller,omitempty"`
	UserReviews   []UserReview      `json:"user_reviews,omitempty"`
}
