package repositories

import "fhr-mart/models"

// The store catalog is fixed at startup. There is no admin surface and no
// external source for product data.
var catalogProducts = []models.Product{
	{
		ID:            "1",
		Name:          "Stealth Pro Wireless Headphones",
		Price:         14999,
		OriginalPrice: 19999,
		Category:      models.CategoryElectronics,
		Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=600&auto=format&fit=crop",
		Rating:        4.8,
		Reviews:       1250,
		Description:   "Active noise cancelling headphones with 40h battery life and spatial audio. Experience studio-quality sound in Pakistan.",
		Tag:           "Best Seller",
		Specs:         map[string]string{"Driver": "40mm Dynamic", "Battery": "40 Hours", "ANC": "Hybrid Pro"},
		Seller:        &models.Seller{Name: "FHR Official Store", Rating: "98%", Followers: "125k"},
		UserReviews: []models.UserReview{
			{User: "Alex J.", Comment: "Best audio I've ever heard in this price range.", Stars: 5, Date: "2 days ago"},
		},
	},
	{
		ID:            "2",
		Name:          "Cyber Edition Mechanical Keyboard",
		Price:         8500,
		OriginalPrice: 12000,
		Category:      models.CategoryGadgets,
		Image:         "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?q=80&w=600&auto=format&fit=crop",
		Rating:        4.9,
		Reviews:       840,
		Description:   "Ultra-responsive mechanical switches with customizable RGB lighting and hot-swappable keys.",
		Tag:           "Hot",
		Specs:         map[string]string{"Switches": "Blue Tactile", "Lights": "RGB Per-Key", "Mode": "Wired/Wireless"},
		Seller:        &models.Seller{Name: "TechNova FHR", Rating: "94%", Followers: "45k"},
	},
	{
		ID:            "3",
		Name:          "Titanium Smart Watch Series X",
		Price:         24999,
		OriginalPrice: 35000,
		Category:      models.CategoryElectronics,
		Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=600&auto=format&fit=crop",
		Rating:        4.7,
		Reviews:       2100,
		Description:   "Aerospace-grade titanium body with advanced health monitoring and LTE connectivity.",
		Tag:           "Premium",
		Specs:         map[string]string{"Case": "Grade 5 Titanium", "Display": "OLED Sapphire", "Depth": "50m Water Resistant"},
		Seller:        &models.Seller{Name: "FHR Flagship", Rating: "99%", Followers: "300k"},
	},
	{
		ID:            "4",
		Name:          "Urban Explorer Waterproof Backpack",
		Price:         4500,
		OriginalPrice: 6000,
		Category:      models.CategoryFashion,
		Image:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?q=80&w=600&auto=format&fit=crop",
		Rating:        4.5,
		Reviews:       430,
		Description:   "Minimalist design meets extreme durability. Features hidden anti-theft pockets.",
		Specs:         map[string]string{"Material": "1680D Ballistic Nylon", "Capacity": "24L", "Laptop": "Up to 16-inch"},
		Seller:        &models.Seller{Name: "StreetWear Elite", Rating: "92%", Followers: "12k"},
	},
	{
		ID:            "5",
		Name:          "Limited Edition Walnut Desk Lamp",
		Price:         6500,
		OriginalPrice: 8500,
		Category:      models.CategoryHome,
		Image:         "https://images.unsplash.com/photo-1534073828943-f801091bb18c?q=80&w=600&auto=format&fit=crop",
		Rating:        4.9,
		Reviews:       320,
		Description:   "Handcrafted walnut wood lamp with touch control and integrated wireless Qi charging.",
		Seller:        &models.Seller{Name: "NatureHome FHR", Rating: "96%", Followers: "8k"},
	},
	{
		ID:            "6",
		Name:          "Professional 8K Cinematic Drone",
		Price:         185000,
		OriginalPrice: 220000,
		Category:      models.CategoryGadgets,
		Image:         "https://images.unsplash.com/photo-1507582020474-9a35b7d455d9?q=80&w=600&auto=format&fit=crop",
		Rating:        4.8,
		Reviews:       156,
		Description:   "Unmatched 8K resolution with 45-minute flight time and omnidirectional obstacle avoidance.",
		Tag:           "New",
		Specs:         map[string]string{"Video": "8K @ 60fps", "Range": "15km", "Sensors": "360° Vision"},
		Seller:        &models.Seller{Name: "SkyHigh Official", Rating: "97%", Followers: "56k"},
	},
}
