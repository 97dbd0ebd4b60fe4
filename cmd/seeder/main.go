package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jsplashe/fridge-app-v2/internal/config"
	"github.com/Jsplashe/fridge-app-v2/internal/database"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

type seedItem struct {
	name         string
	quantity     float64
	category     string
	daysToExpiry int
}

var fridgeItems = []seedItem{
	{"Milk", 1, "Dairy", 2},
	{"Eggs", 12, "Dairy", 10},
	{"Cheddar Cheese", 1, "Dairy", 14},
	{"Chicken Breast", 2, "Meat", 1},
	{"Ground Beef", 1, "Meat", -1},
	{"Spinach", 1, "Produce", 3},
	{"Carrots", 6, "Produce", 12},
	{"Tomatoes", 4, "Produce", 5},
	{"Apples", 5, "Fruits", 9},
	{"Bananas", 6, "Fruits", 2},
	{"Rice", 1, "Grains", 180},
	{"Bread", 1, "Grains", 4},
}

var shoppingItems = []struct {
	name     string
	quantity int
	unit     string
	category string
}{
	{"Olive Oil", 1, "bottle", "Other"},
	{"Garlic", 2, "none", "Produce"},
	{"Pasta", 1, "pack", "Grains"},
	{"Greek Yogurt", 4, "none", "Dairy"},
}

var weeklyMeals = map[string][]string{
	"Monday":    {"Veggie Omelette (Breakfast)", "Chicken Salad (Lunch)", "Beef Stir Fry (Dinner)"},
	"Tuesday":   {"Banana Porridge (Breakfast)", "Tomato Soup (Lunch)", "Roast Chicken (Dinner)"},
	"Wednesday": {"Scrambled Eggs (Breakfast)", "Spinach Wrap (Lunch)", "Spaghetti Bolognese (Dinner)"},
}

func main() {
	email := flag.String("email", "", "Seed data for this account (defaults to DEMO_EMAIL)")
	reset := flag.Bool("reset", false, "Delete the account's existing data first")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	target := *email
	if target == "" {
		target = cfg.DemoEmail
	}

	user, err := ensureUser(ctx, db, cfg, target)
	if err != nil {
		log.Fatalf("Failed to ensure user %s: %v", target, err)
	}

	if *reset {
		if err := wipeUserData(ctx, db, user.ID); err != nil {
			log.Fatalf("Failed to reset data: %v", err)
		}
		log.Println("Existing data cleared")
	}

	if err := seed(ctx, db, user.ID); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded demo data for %s", target)
}

func ensureUser(ctx context.Context, db *database.DB, cfg *config.Config, email string) (*models.User, error) {
	user, err := db.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}

	password := cfg.DemoPassword
	if password == "" {
		return nil, fmt.Errorf("user %s does not exist and DEMO_PASSWORD is not set", email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return db.CreateUser(ctx, email, string(hash))
}

func wipeUserData(ctx context.Context, db *database.DB, userID string) error {
	for _, table := range []string{"inventory", "shopping_list", "meal_plans", "grocery_spending", "food_waste"} {
		if _, err := db.Pool.Exec(ctx, "DELETE FROM "+table+" WHERE user_id = $1", userID); err != nil {
			return err
		}
	}
	return nil
}

func seed(ctx context.Context, db *database.DB, userID string) error {
	now := time.Now()

	for _, item := range fridgeItems {
		req := &models.CreateInventoryItemRequest{
			ItemName:   item.name,
			Quantity:   item.quantity,
			ExpiryDate: now.AddDate(0, 0, item.daysToExpiry).Format("2006-01-02"),
			Category:   item.category,
		}
		if _, err := db.CreateInventoryItem(ctx, userID, req); err != nil {
			return fmt.Errorf("inventory item %s: %w", item.name, err)
		}
	}
	log.Printf("Created %d inventory items", len(fridgeItems))

	for _, item := range shoppingItems {
		req := &models.CreateShoppingListItemRequest{
			ItemName: item.name,
			Quantity: item.quantity,
			Unit:     item.unit,
			Category: item.category,
		}
		if _, err := db.CreateShoppingItem(ctx, userID, req); err != nil {
			return fmt.Errorf("shopping item %s: %w", item.name, err)
		}
	}
	log.Printf("Created %d shopping-list items", len(shoppingItems))

	mealCount := 0
	for day, meals := range weeklyMeals {
		for _, meal := range meals {
			if _, err := db.CreateMealPlan(ctx, userID, meal, day, models.MealSourceManual); err != nil {
				return fmt.Errorf("meal plan %s: %w", meal, err)
			}
			mealCount++
		}
	}
	log.Printf("Created %d meal-plan entries", mealCount)

	stores := []string{"FreshMart", "GreenGrocer", "CornerShop"}
	for week := 0; week < 4; week++ {
		date := now.AddDate(0, 0, -7*week)
		amount := 42.50 + float64(week)*11.25
		if _, err := db.CreateSpendingEntry(ctx, userID, amount, stores[week%len(stores)], date); err != nil {
			return fmt.Errorf("spending entry week %d: %w", week, err)
		}
	}
	if _, err := db.CreateWasteEntry(ctx, userID, 6.80, "Expired ground beef", now.AddDate(0, 0, -3)); err != nil {
		return fmt.Errorf("waste entry: %w", err)
	}
	log.Println("Created spending and waste entries")

	return nil
}
