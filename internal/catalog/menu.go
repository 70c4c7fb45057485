package catalog

import "github.com/crumbco/foodexpress/internal/models"

var defaultMenu = []models.MenuItem{
	{
		ID:          1,
		Name:        "Cake Pop",
		Description: "A form of cake styled as a lollipop",
		Price:       20,
		Category:    "Dessert",
		Image:       "https://media.istockphoto.com/id/951100466/photo/cake-pops-sweet-food.jpg?s=612x612&w=0&k=20&c=5O9BY89LDwQVyev75eMNoXEWiW__0ip_X_kD1RXwjkU=",
	},
	{
		ID:          2,
		Name:        "Margherita Pizza",
		Description: "Wood-fired pizza with tomato, mozzarella and basil",
		Price:       12.5,
		Category:    "Pizza",
		Image:       "https://images.foodexpress.example/margherita.jpg",
	},
	{
		ID:          3,
		Name:        "Pepperoni Pizza",
		Description: "Classic pepperoni with extra mozzarella",
		Price:       14,
		Category:    "Pizza",
		Image:       "https://images.foodexpress.example/pepperoni.jpg",
	},
	{
		ID:          4,
		Name:        "Classic Cheeseburger",
		Description: "Beef patty, cheddar, pickles and house sauce",
		Price:       9.75,
		Category:    "Burger",
		Image:       "https://images.foodexpress.example/cheeseburger.jpg",
	},
	{
		ID:          5,
		Name:        "Crispy Chicken Burger",
		Description: "Buttermilk fried chicken with slaw",
		Price:       10.25,
		Category:    "Burger",
		Image:       "https://images.foodexpress.example/chicken-burger.jpg",
	},
	{
		ID:          6,
		Name:        "Caesar Salad",
		Description: "Romaine, parmesan, croutons and caesar dressing",
		Price:       8,
		Category:    "Salad",
		Image:       "https://images.foodexpress.example/caesar.jpg",
	},
	{
		ID:          7,
		Name:        "Chocolate Lava Cake",
		Description: "Warm chocolate cake with a molten center",
		Price:       7.5,
		Category:    "Dessert",
		Image:       "https://images.foodexpress.example/lava-cake.jpg",
	},
	{
		ID:          8,
		Name:        "Fresh Lemonade",
		Description: "Hand-squeezed lemonade over ice",
		Price:       3.25,
		Category:    "Drinks",
		Image:       "https://images.foodexpress.example/lemonade.jpg",
	},
	{
		ID:          9,
		Name:        "Iced Latte",
		Description: "Double espresso with cold milk",
		Price:       4.5,
		Category:    "Drinks",
		Image:       "https://images.foodexpress.example/iced-latte.jpg",
	},
}
