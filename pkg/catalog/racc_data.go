package catalog

// BuiltinRACC returns the compiled-in RACC reference table
// (21 CFR 101.12, table 2). The table covers the product categories the
// surrounding application currently on-boards; additional categories
// load through the source subpackage.
func BuiltinRACC() []*RACCCategory {
	return []*RACCCategory{
		{
			ID:               "cereal-ready-to-eat-medium",
			RACCAmount:       40,
			RACCUnit:         UnitGrams,
			Category:         "Cereals and Other Grain Products",
			Subcategory:      "Breakfast cereals, ready-to-eat, 20 g to 43 g per cup",
			HouseholdMeasure: "1 cup (40 g)",
			LabelStatement:   "__ cup (__ g)",
			ProductExamples:  []string{"flaked cereals", "toasted oat cereals"},
		},
		{
			ID:               "cereal-ready-to-eat-light",
			RACCAmount:       30,
			RACCUnit:         UnitGrams,
			Category:         "Cereals and Other Grain Products",
			Subcategory:      "Breakfast cereals, ready-to-eat, weighing less than 20 g per cup",
			HouseholdMeasure: "1 cup (30 g)",
			LabelStatement:   "__ cup (__ g)",
			ProductExamples:  []string{"puffed cereals"},
		},
		{
			ID:               "bread",
			RACCAmount:       50,
			RACCUnit:         UnitGrams,
			Category:         "Bakery Products",
			Subcategory:      "Bread (excluding sweet quick type), rolls",
			HouseholdMeasure: "2 slices (50 g)",
			LabelStatement:   "__ slice(s) (__ g)",
			ProductExamples:  []string{"sandwich bread", "dinner rolls", "bagels"},
		},
		{
			ID:               "cookies",
			RACCAmount:       30,
			RACCUnit:         UnitGrams,
			Category:         "Bakery Products",
			Subcategory:      "Cookies",
			HouseholdMeasure: "3 cookies (30 g)",
			LabelStatement:   "__ cookie(s) (__ g)",
			ProductExamples:  []string{"sandwich cookies", "wafers"},
		},
		{
			ID:               "crackers",
			RACCAmount:       30,
			RACCUnit:         UnitGrams,
			Category:         "Bakery Products",
			Subcategory:      "Crackers that are usually used as snacks",
			HouseholdMeasure: "15 crackers (30 g)",
			LabelStatement:   "__ cracker(s) (__ g)",
		},
		{
			ID:               "carbonated-beverage",
			RACCAmount:       360,
			RACCUnit:         UnitMilliliters,
			Category:         "Beverages",
			Subcategory:      "Carbonated and noncarbonated beverages, wine coolers, water",
			HouseholdMeasure: "12 fl oz (360 mL)",
			LabelStatement:   "__ fl oz (__ mL)",
			ProductExamples:  []string{"soft drinks", "sparkling water"},
		},
		{
			ID:               "juice",
			RACCAmount:       240,
			RACCUnit:         UnitMilliliters,
			Category:         "Beverages",
			Subcategory:      "Juices, nectars, fruit drinks",
			HouseholdMeasure: "8 fl oz (240 mL)",
			LabelStatement:   "__ fl oz (__ mL)",
		},
		{
			ID:               "milk",
			RACCAmount:       240,
			RACCUnit:         UnitMilliliters,
			Category:         "Dairy Products and Substitutes",
			Subcategory:      "Milk, milk-based drinks",
			HouseholdMeasure: "1 cup (240 mL)",
			LabelStatement:   "1 cup (240 mL)",
		},
		{
			ID:               "yogurt",
			RACCAmount:       170,
			RACCUnit:         UnitGrams,
			Category:         "Dairy Products and Substitutes",
			Subcategory:      "Yogurt",
			HouseholdMeasure: "3/4 cup (170 g)",
			LabelStatement:   "__ cup (__ g)",
		},
		{
			ID:               "cheese",
			RACCAmount:       30,
			RACCUnit:         UnitGrams,
			Category:         "Dairy Products and Substitutes",
			Subcategory:      "Cheese, all others except those listed separately",
			HouseholdMeasure: "1 slice (30 g)",
			LabelStatement:   "__ slice(s) (__ g)",
		},
		{
			ID:               "snack-chips",
			RACCAmount:       30,
			RACCUnit:         UnitGrams,
			Category:         "Snacks",
			Subcategory:      "Chips, crisps, extruded snacks, pretzels",
			HouseholdMeasure: "1 oz (28 g/about 16 chips)",
			LabelStatement:   "__ chips (__ g)",
			ProductExamples:  []string{"potato chips", "tortilla chips", "pretzels"},
		},
		{
			ID:               "candy-hard",
			RACCAmount:       15,
			RACCUnit:         UnitGrams,
			Category:         "Sugars and Sweets",
			Subcategory:      "Hard candies, others",
			HouseholdMeasure: "3 pieces (15 g)",
			LabelStatement:   "__ piece(s) (__ g)",
		},
		{
			ID:               "salad-dressing",
			RACCAmount:       30,
			RACCUnit:         UnitGrams,
			Category:         "Fats and Oils",
			Subcategory:      "Dressings for salads",
			HouseholdMeasure: "2 tbsp (30 g)",
			LabelStatement:   "2 tbsp (30 g)",
		},
		{
			ID:               "soup",
			RACCAmount:       245,
			RACCUnit:         UnitGrams,
			Category:         "Mixed Dishes",
			Subcategory:      "Soups, all varieties",
			HouseholdMeasure: "1 cup (245 g)",
			LabelStatement:   "1 cup (245 g)",
		},
		{
			ID:               "frozen-entree",
			RACCAmount:       140,
			RACCUnit:         UnitGrams,
			Category:         "Mixed Dishes",
			Subcategory:      "Measurable with cup, e.g. casseroles, stews",
			HouseholdMeasure: "1 cup (140 g)",
			LabelStatement:   "1 cup (__ g)",
			Notes:            "Entrees without sauce use the 85 g meat/poultry reference instead.",
		},
	}
}
