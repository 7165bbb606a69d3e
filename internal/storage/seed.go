package storage

import "github.com/bochang/recipebox/internal/models"

const seedDate = "2025-08-09"

func strptr(s string) *string { return &s }

func seedVersions() []models.Version {
	return []models.Version{
		{Version: "1.0", Date: seedDate, Changes: "initial creation"},
	}
}

// SeedRecipes returns the built-in starter collection, used on first run and
// whenever the stored blob cannot be read back.
func SeedRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:        "recipe-001",
			Name:      "Chocolate Mousse",
			Category:  models.CategoryDessert,
			IsStarred: true,
			CreatedAt: seedDate,
			UpdatedAt: seedDate,
			Servings:  1,
			Ingredients: []models.Ingredient{
				{Name: "Heavy cream", Amount: 200, Unit: "ml"},
				{Name: "Milk chocolate", Amount: 100, Unit: "g"},
			},
			Steps: []string{
				"Whip 100ml of the cream to soft peaks",
				"Chop the chocolate and microwave at 600W for 1 minute",
				"Stir the melted chocolate until smooth",
				"Mix in the unwhipped cream",
				"Fold in the whipped cream and divide into glasses",
			},
			Versions: seedVersions(),
		},
		{
			ID:        "recipe-002",
			Name:      "Caramel Sauce",
			Category:  models.CategorySauce,
			CreatedAt: seedDate,
			UpdatedAt: seedDate,
			Servings:  1,
			Ingredients: []models.Ingredient{
				{Name: "Sugar", Amount: 100, Unit: "g"},
				{Name: "Water", Amount: 100, Unit: "g"},
				{Name: "Finishing water", Amount: 50, Unit: "g"},
			},
			Steps: []string{
				"Simmer the sugar and water until amber",
				"Stir in the hot finishing water and bring back to a boil",
			},
			Versions: seedVersions(),
		},
		{
			ID:        "recipe-003",
			Name:      "Eel Glaze",
			Category:  models.CategorySauce,
			IsStarred: true,
			CreatedAt: seedDate,
			UpdatedAt: seedDate,
			Servings:  1,
			Ingredients: []models.Ingredient{
				{Name: "Soy sauce", Amount: 22.5, Unit: "ml", Note: "1 1/2 tbsp"},
				{Name: "Mirin", Amount: 22.5, Unit: "ml", Note: "1 1/2 tbsp"},
				{Name: "Cooking sake", Amount: 11.25, Unit: "ml", Note: "3/4 tbsp"},
				{Name: "Sugar", Amount: 11.25, Unit: "ml", Note: "3/4 tbsp"},
			},
			Steps: []string{
				"Combine all ingredients",
				"Reduce over medium heat until glossy",
			},
			Versions: seedVersions(),
		},
		{
			ID:        "recipe-004",
			Name:      "Braised Pork Belly",
			Category:  models.CategoryMain,
			IsStarred: true,
			CreatedAt: seedDate,
			UpdatedAt: seedDate,
			Servings:  1,
			Ingredients: []models.Ingredient{
				{Name: "Sake", Amount: 40, Unit: "ml"},
				{Name: "Sugar", Amount: 30, Unit: "g", Note: "2 tbsp"},
				{Name: "Dashi powder", Amount: 0, Unit: "to taste"},
				{Name: "Soy sauce", Amount: 30, Unit: "ml", Note: "2 tbsp"},
				{Name: "Garlic", Amount: 0, Unit: "thinly sliced"},
				{Name: "Ginger", Amount: 0, Unit: "thinly sliced"},
				{Name: "Green onion", Amount: 0, Unit: "one piece"},
				{Name: "Water", Amount: 160, Unit: "ml"},
			},
			Steps: []string{
				"Run the multicooker on the soup program for 30 minutes",
				"Finish on the braised pork program",
			},
			Notes:    strptr("Multicooker recipe"),
			Versions: seedVersions(),
		},
		{
			ID:        "recipe-005",
			Name:      "Mild Rehydration Drink",
			Category:  models.CategoryDrink,
			CreatedAt: seedDate,
			UpdatedAt: seedDate,
			Servings:  1,
			Yield:     strptr("500ml"),
			Ingredients: []models.Ingredient{
				{Name: "Water", Amount: 500, Unit: "ml"},
				{Name: "Sugar", Amount: 9, Unit: "g", Note: "about 1 tbsp"},
				{Name: "Salt", Amount: 0.3, Unit: "g", Note: "less than a pinch"},
				{Name: "Lemon juice", Amount: 5, Unit: "g", Note: "1 tsp"},
			},
			Steps: []string{
				"Combine all ingredients",
				"Stir until the salt and sugar dissolve completely",
			},
			Versions: seedVersions(),
		},
		{
			ID:        "recipe-006",
			Name:      "AeroPress Coffee",
			Category:  models.CategoryDrink,
			IsStarred: true,
			CreatedAt: seedDate,
			UpdatedAt: seedDate,
			Servings:  1,
			Yield:     strptr("180cc"),
			Ingredients: []models.Ingredient{
				{Name: "Coffee beans", Amount: 17, Unit: "g"},
				{Name: "Hot water", Amount: 180, Unit: "ml", Note: "92-93C"},
			},
			Steps: []string{
				"Grind the beans at 16 clicks on the hand grinder",
				"Add the grounds to the AeroPress",
				"Pour in the water and stir 10 times",
				"Steep 30 seconds, then press",
			},
			Equipment: []string{"AeroPress with control filter", "Hand grinder"},
			Versions:  seedVersions(),
		},
		{
			ID:        "recipe-007",
			Name:      "Simple Hotcakes",
			Category:  models.CategoryDessert,
			CreatedAt: seedDate,
			UpdatedAt: seedDate,
			Servings:  1,
			Yield:     strptr("about 2 pancakes"),
			Ingredients: []models.Ingredient{
				{Name: "Cake flour", Amount: 100, Unit: "g"},
				{Name: "Baking powder", Amount: 3.75, Unit: "g", Note: "3/4-1 tsp"},
				{Name: "Salt", Amount: 0, Unit: "a pinch"},
				{Name: "Egg", Amount: 1, Unit: "piece"},
				{Name: "Sugar", Amount: 22.5, Unit: "g", Note: "15-30g"},
				{Name: "Milk", Amount: 75, Unit: "ml"},
				{Name: "Vegetable oil", Amount: 15, Unit: "ml", Note: "1 tbsp"},
				{Name: "Vanilla oil", Amount: 0, Unit: "a few drops"},
			},
			Steps: []string{
				"Whisk the flour, baking powder and salt in a bowl and make a well",
				"In another bowl beat the egg with the sugar, milk, oil and vanilla",
				"Pour the liquid into the well and mix lightly",
				"Cook both sides in a frying pan",
			},
			Versions: seedVersions(),
		},
		{
			ID:        "recipe-008",
			Name:      "Okonomiyaki (Regular Size)",
			Category:  models.CategoryMain,
			IsStarred: true,
			CreatedAt: seedDate,
			UpdatedAt: seedDate,
			Servings:  1,
			Ingredients: []models.Ingredient{
				{Name: "Okonomiyaki flour", Amount: 50, Unit: "g"},
				{Name: "Yam powder", Amount: 2, Unit: "g"},
				{Name: "Baking powder", Amount: 2, Unit: "g"},
				{Name: "White dashi", Amount: 8, Unit: "g"},
				{Name: "Water", Amount: 30, Unit: "ml"},
				{Name: "Milk", Amount: 15, Unit: "ml", Note: "1 tbsp"},
				{Name: "Egg", Amount: 1, Unit: "piece"},
				{Name: "Cabbage", Amount: 80, Unit: "g", Note: "roughly chopped, about 2 large leaves"},
				{Name: "Thin pork belly slices", Amount: 35, Unit: "g", Note: "2-3 slices"},
				{Name: "Tempura bits", Amount: 15, Unit: "g", Note: "1 tbsp"},
				{Name: "Pickled ginger", Amount: 5, Unit: "g", Note: "1 tsp"},
				{Name: "Green onion", Amount: 5, Unit: "g", Note: "1 tsp, finely sliced"},
			},
			Steps: []string{
				"Chop the cabbage and dry it in the fridge for about an hour",
				"Mix the batter ingredients and rest in the fridge 30 minutes to 3 hours",
				"Combine batter, egg, cabbage, tempura bits, ginger and green onion",
				"Fold in air with big strokes right before cooking",
				"Cook 4 minutes per side over low heat",
			},
			CookingTime: strptr("4 minutes per side, low heat"),
			Versions:    seedVersions(),
		},
	}
}
