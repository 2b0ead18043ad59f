package domain

// Bundled fallback data. Served whenever the store is empty, unreachable or
// holds a document that does not decode, so the public site always renders.
// Functions return fresh copies: callers mutate collections in place during
// admin edits.

func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "m1",
			Name:        "Rose & Litchi",
			Description: "Crème délicate aux pétales de rose avec un cœur de litchi.",
			Price:       3.5,
			Image:       "https://picsum.photos/id/431/600/600",
			Category:    CategoryMacaron,
			Ingredients: []string{"Poudre d'amande", "Eau de rose", "Litchi"},
			Available:   true,
		},
		{
			ID:          "m2",
			Name:        "Pistache Suprême",
			Description: "Pistaches siciliennes torréfiées.",
			Price:       4,
			Image:       "https://picsum.photos/id/493/600/600",
			Category:    CategoryMacaron,
			Ingredients: []string{"Pistache"},
			Available:   true,
		},
		{
			ID:          "c1",
			Name:        "Royal Chocolat",
			Description: "Sept couches de textures au chocolat noir.",
			Price:       45,
			Image:       "https://picsum.photos/id/292/600/600",
			Category:    CategoryCake,
			Ingredients: []string{"Chocolat Noir", "Feuille d'Or"},
			Available:   true,
		},
		{
			ID:          "c2",
			Name:        "Fraisier Classique",
			Description: "Gâteau classique aux fraises avec crème mousseline.",
			Price:       40,
			Image:       "https://picsum.photos/id/1080/600/600",
			Category:    CategoryCake,
			Ingredients: []string{"Fraises", "Vanille"},
			Available:   true,
		},
		{
			ID:            "s1",
			Name:          "Sablé Breton",
			Description:   "Sablé français au beurre salé, friable et fondant.",
			Price:         2,
			Image:         "https://picsum.photos/id/312/600/600",
			Category:      CategorySable,
			Ingredients:   []string{"Beurre Salé"},
			Available:     true,
			SableDressage: true,
		},
	}
}

func DefaultRecipes() []Recipe {
	return []Recipe{
		{
			ID:      "r1",
			Title:   "L'Art du Macaronage",
			Content: "Le macaronage est l'étape la plus critique. Vous voulez obtenir une consistance semblable à de la lave en fusion...",
			Image:   "https://picsum.photos/id/292/800/600",
		},
	}
}

func DefaultContent() SiteContent {
	return SiteContent{
		LogoText:       "LAYEN SWEETS",
		ContactPhone:   "96948548",
		FacebookURL:    "https://www.facebook.com/Lazuritedjerba",
		HeroTitle:      "Douceurs Artisanales,\nFaites avec Amour",
		HeroSubtitle:   "Excellence Tunisienne",
		HeroButtonText: "Commander",
		HeroImage:      "https://picsum.photos/id/429/600/600",
		HeroImage2:     "https://picsum.photos/id/431/500/500",
		HeroImage3:     "https://picsum.photos/id/488/500/500",
		AboutTitle:     "L'Art de la Douceur Délicate",
		AboutText:      "Chez Layen Sweets, nous croyons qu'un dessert est plus que du sucre. C'est un moment de pure joie. De nos Macarons signature à nos Sablés complexes et Gâteaux de célébration, tout est poché à la main et conçu avec passion.",
		AboutImage:     "https://picsum.photos/id/225/800/1000",
		ChefQuote:      "\"La patience est l'ingrédient le plus important du macaronage.\"",
	}
}
