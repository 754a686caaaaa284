// internal/domain/catalog/data.go
package catalog

// demoProducts is the static storefront dataset. A real deployment would
// load this from a product feed; the demo ships with a fixed lighting range.
var demoProducts = []Product{
	{
		ID:            "1",
		Name:          "Modern Pendant Light",
		Description:   "Elegant pendant light with adjustable height, perfect for dining rooms and kitchen islands. Features dimmable LED with warm to cool white temperature control.",
		Price:         12999,
		DiscountPrice: 9999,
		Images: []string{
			"https://images.pexels.com/photos/1166644/pexels-photo-1166644.jpeg",
			"https://images.pexels.com/photos/1090638/pexels-photo-1090638.jpeg",
		},
		Category: CategoryIndoor,
		Features: []string{
			"Adjustable height",
			"Dimmable LED light",
			"Color temperature control (2700K-5000K)",
			"Energy efficient - only 18W",
			"50,000 hour lifespan",
		},
		Specifications: map[string]string{
			"Dimensions":        "12\" diameter × 48\" max height",
			"Material":          "Brushed aluminum and glass",
			"Bulb Type":         "Integrated LED",
			"Wattage":           "18W",
			"Lumens":            "1600lm",
			"Voltage":           "120V",
			"Color Temperature": "2700K-5000K (adjustable)",
			"Warranty":          "5 years",
		},
		Stock:           15,
		Rating:          4.7,
		ReviewCount:     124,
		IsFeatured:      true,
		RelatedProducts: []string{"3", "5", "7"},
	},
	{
		ID:          "2",
		Name:        "Smart LED Bulb Pack",
		Description: "Set of 4 smart LED bulbs compatible with Alexa, Google Home, and Apple HomeKit. Control via app or voice commands for the perfect lighting in any situation.",
		Price:       5999,
		Images: []string{
			"https://images.pexels.com/photos/3165335/pexels-photo-3165335.jpeg",
			"https://images.pexels.com/photos/1166644/pexels-photo-1166644.jpeg",
		},
		Category: CategorySmart,
		Features: []string{
			"Works with Alexa, Google Assistant, and Apple HomeKit",
			"Millions of colors and white temperatures",
			"Schedule and automation capabilities",
			"Group control for multiple bulbs",
			"Music sync feature",
		},
		Specifications: map[string]string{
			"Bulb Type":    "A19 E26",
			"Wattage":      "9W (60W equivalent)",
			"Lumens":       "800lm",
			"Lifespan":     "25,000 hours",
			"Connectivity": "Wi-Fi 2.4GHz, Bluetooth",
			"Dimensions":   "2.4\" diameter × 4.2\" height",
			"Warranty":     "2 years",
		},
		Stock:           42,
		Rating:          4.5,
		ReviewCount:     256,
		IsFeatured:      true,
		IsNew:           true,
		RelatedProducts: []string{"4", "8"},
	},
	{
		ID:            "3",
		Name:          "Solar Garden Pathway Lights",
		Description:   "Set of 6 solar-powered garden pathway lights with auto on/off feature. Weather-resistant design with warm white LEDs for beautiful garden illumination.",
		Price:         4999,
		DiscountPrice: 3999,
		Images: []string{
			"https://images.pexels.com/photos/3302537/pexels-photo-3302537.jpeg",
			"https://images.pexels.com/photos/1108701/pexels-photo-1108701.jpeg",
		},
		Category: CategoryOutdoor,
		Features: []string{
			"Solar powered - no wiring needed",
			"Automatic dusk to dawn operation",
			"IP65 weather resistant",
			"Warm white illumination",
			"Easy stake installation",
		},
		Specifications: map[string]string{
			"Material":      "Stainless steel and ABS",
			"Light Color":   "Warm white 3000K",
			"Battery":       "600mAh NiMH rechargeable",
			"Charging Time": "6-8 hours of sunlight",
			"Run Time":      "8-10 hours when fully charged",
			"Warranty":      "1 year",
		},
		Stock:           28,
		Rating:          4.3,
		ReviewCount:     89,
		RelatedProducts: []string{"1", "6"},
	},
	{
		ID:          "4",
		Name:        "Smart Light Strip Kit",
		Description: "16.4ft flexible LED strip with app control, music sync, and millions of colors. Perfect for accent lighting behind TVs, under cabinets, or around architectural features.",
		Price:       3999,
		Images: []string{
			"https://images.pexels.com/photos/1036936/pexels-photo-1036936.jpeg",
			"https://images.pexels.com/photos/2251247/pexels-photo-2251247.jpeg",
		},
		Category: CategorySmart,
		Features: []string{
			"16 million colors",
			"Music synchronization",
			"Cuttable and extendable",
			"Strong adhesive backing",
			"Voice assistant compatible",
		},
		Specifications: map[string]string{
			"Length":       "16.4ft (5m)",
			"LED Count":    "150 LEDs",
			"Connectivity": "Wi-Fi 2.4GHz",
			"Power":        "24W power adapter included",
			"Warranty":     "18 months",
		},
		Stock:           35,
		Rating:          4.4,
		ReviewCount:     178,
		IsNew:           true,
		RelatedProducts: []string{"2", "8"},
	},
	{
		ID:            "5",
		Name:          "Crystal Chandelier",
		Description:   "Luxurious crystal chandelier with 8 arms and genuine K9 crystals. Creates stunning light reflections and adds elegance to dining rooms and entryways.",
		Price:         34999,
		DiscountPrice: 29999,
		Images: []string{
			"https://images.pexels.com/photos/1090638/pexels-photo-1090638.jpeg",
			"https://images.pexels.com/photos/1166644/pexels-photo-1166644.jpeg",
		},
		Category: CategoryDecorative,
		Features: []string{
			"Genuine K9 crystals",
			"8-arm design",
			"Dimmable with compatible switch",
			"Adjustable chain length",
			"Professional installation recommended",
		},
		Specifications: map[string]string{
			"Dimensions": "28\" diameter × 24\" height",
			"Material":   "Chrome-plated steel, K9 crystal",
			"Bulb Type":  "E12 candelabra × 8 (not included)",
			"Max Watt":   "40W per bulb",
			"Chain":      "Adjustable up to 72\"",
			"Warranty":   "3 years",
		},
		Stock:           8,
		Rating:          4.8,
		ReviewCount:     67,
		IsFeatured:      true,
		RelatedProducts: []string{"1", "7"},
	},
	{
		ID:          "6",
		Name:        "LED Flood Light",
		Description: "High-output 50W LED flood light with motion sensor. Ideal for security lighting around garages, driveways, and backyards with adjustable detection settings.",
		Price:       7999,
		Images: []string{
			"https://images.pexels.com/photos/1108701/pexels-photo-1108701.jpeg",
			"https://images.pexels.com/photos/3302537/pexels-photo-3302537.jpeg",
		},
		Category: CategoryOutdoor,
		Features: []string{
			"50W high output LED",
			"Adjustable motion sensor",
			"IP66 waterproof rating",
			"Die-cast aluminum housing",
			"5000K daylight white",
		},
		Specifications: map[string]string{
			"Wattage":         "50W",
			"Lumens":          "5000lm",
			"Detection Range": "Up to 49ft, 180° angle",
			"Material":        "Die-cast aluminum",
			"Rating":          "IP66 waterproof",
			"Warranty":        "2 years",
		},
		Stock:           22,
		Rating:          4.2,
		ReviewCount:     143,
		RelatedProducts: []string{"3"},
	},
	{
		ID:            "7",
		Name:          "Minimalist Table Lamp",
		Description:   "Scandinavian-style table lamp with natural wood base and linen shade. Provides warm, diffused light perfect for bedside tables and reading nooks.",
		Price:         8999,
		DiscountPrice: 6999,
		Images: []string{
			"https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg",
			"https://images.pexels.com/photos/1090638/pexels-photo-1090638.jpeg",
		},
		Category: CategoryDecorative,
		Features: []string{
			"Natural oak base",
			"Hand-woven linen shade",
			"Inline on/off switch",
			"Fits standard E26 bulbs",
			"Soft diffused lighting",
		},
		Specifications: map[string]string{
			"Dimensions": "10\" diameter × 18\" height",
			"Material":   "Oak wood, linen",
			"Bulb Type":  "E26 (not included)",
			"Max Watt":   "60W",
			"Cord":       "6ft with inline switch",
			"Warranty":   "1 year",
		},
		Stock:           19,
		Rating:          4.6,
		ReviewCount:     98,
		RelatedProducts: []string{"1", "5"},
	},
	{
		ID:          "8",
		Name:        "Energy Saver Ceiling Fixture",
		Description: "Flush-mount ceiling fixture with integrated LED panel. Uses 85% less energy than traditional fixtures while providing bright, even illumination for any room.",
		Price:       4499,
		Images: []string{
			"https://images.pexels.com/photos/2251247/pexels-photo-2251247.jpeg",
			"https://images.pexels.com/photos/1036936/pexels-photo-1036936.jpeg",
		},
		Category: CategoryEnergyEfficient,
		Features: []string{
			"Integrated LED - no bulbs needed",
			"85% energy savings",
			"Flicker-free illumination",
			"Easy flush-mount installation",
			"50,000 hour lifespan",
		},
		Specifications: map[string]string{
			"Dimensions":        "13\" diameter × 1.2\" height",
			"Wattage":           "24W",
			"Lumens":            "2400lm",
			"Color Temperature": "4000K neutral white",
			"Lifespan":          "50,000 hours",
			"Warranty":          "5 years",
		},
		Stock:           54,
		Rating:          4.4,
		ReviewCount:     211,
		IsNew:           true,
		RelatedProducts: []string{"2", "4"},
	},
}

// DefaultDataset returns a copy of the built-in product dataset.
func DefaultDataset() []Product {
	products := make([]Product, len(demoProducts))
	copy(products, demoProducts)
	return products
}
