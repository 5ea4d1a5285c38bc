package catalog

var sampleEntries = []Entry{
	{
		ID:          "1",
		Name:        "Margherita Pizza",
		Description: "Classic pizza with tomato sauce, mozzarella, and basil",
		Price:       12.99,
		Category:    "Pizza",
		Image:       "/images/margherita.jpg",
		Featured:    true,
	},
	{
		ID:          "2",
		Name:        "Pepperoni Pizza",
		Description: "Pizza topped with tomato sauce, mozzarella, and pepperoni",
		Price:       14.99,
		Category:    "Pizza",
		Image:       "/images/pepperoni.jpg",
	},
	{
		ID:          "3",
		Name:        "Caesar Salad",
		Description: "Crisp romaine lettuce, croutons, parmesan cheese, and Caesar dressing",
		Price:       8.99,
		Category:    "Salads",
		Image:       "/images/caesar-salad.jpg",
	},
	{
		ID:          "4",
		Name:        "Spaghetti Carbonara",
		Description: "Spaghetti with crispy pancetta, egg, hard cheese, and black pepper",
		Price:       15.99,
		Category:    "Pasta",
		Image:       "/images/carbonara.jpg",
	},
	{
		ID:          "5",
		Name:        "Tiramisu",
		Description: "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone cream",
		Price:       7.99,
		Category:    "Desserts",
		Image:       "/images/tiramisu.jpg",
	},
}

// Sample returns the compiled-in menu.
func Sample() []Entry {
	return CloneEntries(sampleEntries)
}
