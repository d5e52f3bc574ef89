package catalog

// Curated launch content. The style photos drive the visual product-search
// pipeline; the products are editorial picks shown next to each style.

// SeedStyles returns the curated styles.
func SeedStyles() []Style {
	return []Style{
		{
			ID:          "style-1",
			Name:        "Elegant Evening Ensemble",
			Designer:    "Sophia Laurent",
			Description: "A sophisticated black dress paired with statement gold jewelry, perfect for making an unforgettable impression at formal events.",
			Occasion:    "formal",
			BodyType:    "hourglass",
			Gender:      "female",
			Image:       "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?w=800&q=80",
			Products:    []string{"prod-1", "prod-5", "prod-8"},
		},
		{
			ID:          "style-2",
			Name:        "Modern Professional",
			Designer:    "Marcus Chen",
			Description: "Sharp tailored blazer with crisp white shirt and slim-fit trousers. Confident and polished for the boardroom.",
			Occasion:    "business",
			BodyType:    "rectangle-male",
			Gender:      "male",
			Image:       "https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800&q=80",
			Products:    []string{"prod-2", "prod-6", "prod-10"},
		},
		{
			ID:          "style-3",
			Name:        "Casual Chic Weekend",
			Designer:    "Emma Rodriguez",
			Description: "Effortlessly stylish with a flowing blouse, high-waisted jeans, and minimalist accessories for relaxed sophistication.",
			Occasion:    "casual",
			BodyType:    "pear",
			Gender:      "female",
			Image:       "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=800&q=80",
			Products:    []string{"prod-3", "prod-7", "prod-11"},
		},
		{
			ID:          "style-4",
			Name:        "Romantic Date Night",
			Designer:    "Isabella Stone",
			Description: "Delicate lace details and soft silhouettes create an enchanting look perfect for intimate evenings.",
			Occasion:    "date-night",
			BodyType:    "hourglass",
			Gender:      "female",
			Image:       "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=800&q=80",
			Products:    []string{"prod-4", "prod-5", "prod-8"},
		},
		{
			ID:          "style-5",
			Name:        "Smart Casual Blazer Look",
			Designer:    "James Mitchell",
			Description: "Versatile navy blazer styled with chinos and loafers for polished casual sophistication.",
			Occasion:    "casual",
			BodyType:    "trapezoid-male",
			Gender:      "male",
			Image:       "https://images.unsplash.com/photo-1500917293891-ef795e70e1f6?w=800&q=80",
			Products:    []string{"prod-2", "prod-10", "prod-12"},
		},
		{
			ID:          "style-6",
			Name:        "Festive Kurti Ensemble",
			Designer:    "Priya Nair",
			Description: "Embroidered kurti with flowing palazzo pants and traditional juttis, balancing heritage craft with everyday comfort.",
			Occasion:    "party",
			BodyType:    "rectangle",
			Gender:      "female",
			Image:       "https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=800&q=80",
			Products:    []string{"prod-3", "prod-7", "prod-9"},
		},
	}
}

// SeedProducts returns the showcase products.
func SeedProducts() []Product {
	return []Product{
		{
			ID: "prod-1", Name: "Classic Black Sheath Dress", Category: "shirts", Price: 189,
			Retailer: "Nordstrom", Image: "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=600&q=80",
			MatchPercentage: 98, Description: "Timeless elegance in a perfectly tailored silhouette",
			Colors: []string{"black"}, Pattern: "solid",
		},
		{
			ID: "prod-2", Name: "Navy Wool Blazer", Category: "shirts", Price: 325,
			Retailer: "Brooks Brothers", Image: "https://images.unsplash.com/photo-1593030103066-0093718efeb9?w=600&q=80",
			MatchPercentage: 95, Description: "Premium wool construction with modern slim fit",
			Colors: []string{"navy blue"}, Pattern: "solid",
		},
		{
			ID: "prod-3", Name: "Silk Floral Blouse", Category: "shirts", Price: 145,
			Retailer: "Saks Fifth Avenue", Image: "https://images.unsplash.com/photo-1594633313593-bab3825d0caf?w=600&q=80",
			MatchPercentage: 92, Description: "Luxurious silk with delicate floral print",
			Colors: []string{"cream", "pink"}, Pattern: "floral",
		},
		{
			ID: "prod-4", Name: "Lace Midi Dress", Category: "shirts", Price: 210,
			Retailer: "Neiman Marcus", Image: "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=600&q=80",
			MatchPercentage: 96, Description: "Romantic lace detailing with flattering midi length",
			Colors: []string{"ivory"}, Pattern: "lace",
		},
		{
			ID: "prod-5", Name: "Gold Statement Necklace", Category: "accessories", Price: 85,
			Retailer: "Madewell", Image: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=600&q=80",
			MatchPercentage: 94, Description: "Bold geometric design in polished gold",
			Colors: []string{"gold"}, Pattern: "solid",
		},
		{
			ID: "prod-6", Name: "Oxford White Dress Shirt", Category: "shirts", Price: 98,
			Retailer: "J.Crew", Image: "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=600&q=80",
			MatchPercentage: 97, Description: "Crisp cotton with perfect collar shape",
			Colors: []string{"white"}, Pattern: "solid",
		},
		{
			ID: "prod-7", Name: "High-Waisted Denim Jeans", Category: "pants", Price: 168,
			Retailer: "Levi's Premium", Image: "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=600&q=80",
			MatchPercentage: 93, Description: "Vintage-inspired fit with modern comfort",
			Colors: []string{"blue"}, Pattern: "solid",
		},
		{
			ID: "prod-8", Name: "Strappy Evening Heels", Category: "shoes", Price: 245,
			Retailer: "Stuart Weitzman", Image: "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=600&q=80",
			MatchPercentage: 95, Description: "Elegant stiletto with delicate strap details",
			Colors: []string{"black"}, Pattern: "solid",
		},
		{
			ID: "prod-9", Name: "Embroidered Juttis", Category: "shoes", Price: 75,
			Retailer: "Fabindia", Image: "https://images.unsplash.com/photo-1603487742131-4160ec999306?w=600&q=80",
			MatchPercentage: 91, Description: "Hand-embroidered traditional flats with cushioned sole",
			Colors: []string{"gold", "red"}, Pattern: "embroidered",
		},
		{
			ID: "prod-10", Name: "Slim Fit Charcoal Trousers", Category: "pants", Price: 145,
			Retailer: "Banana Republic", Image: "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=600&q=80",
			MatchPercentage: 96, Description: "Modern tailored fit in premium fabric",
			Colors: []string{"charcoal"}, Pattern: "solid",
		},
		{
			ID: "prod-11", Name: "Leather Ankle Boots", Category: "shoes", Price: 285,
			Retailer: "Sam Edelman", Image: "https://images.unsplash.com/photo-1608256246200-53e635b5b65f?w=600&q=80",
			MatchPercentage: 89, Description: "Versatile ankle boot with stacked heel",
			Colors: []string{"brown"}, Pattern: "solid",
		},
		{
			ID: "prod-12", Name: "Suede Penny Loafers", Category: "shoes", Price: 220,
			Retailer: "Cole Haan", Image: "https://images.unsplash.com/photo-1533867617858-e7b97e060509?w=600&q=80",
			MatchPercentage: 92, Description: "Soft suede upper with classic penny strap",
			Colors: []string{"tan"}, Pattern: "solid",
		},
	}
}
