package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"joyit/internal/database"
	"joyit/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "joyit.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (safe order for foreign keys)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM credit_entries")
	db.Exec("DELETE FROM schedules")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM service_order_details")
	db.Exec("DELETE FROM service_orders")
	db.Exec("DELETE FROM support_requests")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM plan_activities")
	db.Exec("DELETE FROM plans")
	db.Exec("DELETE FROM activities")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM companies")
	db.Exec("DELETE FROM pricing")

	// ================== PRICING ==================
	log.Println("Creating pricing config...")
	pricing := domain.DefaultPricing()
	db.Create(&pricing)

	// ================== ACTIVITIES ==================
	log.Println("Creating activities...")
	activities := []domain.Activity{
		{Name: "Office Yoga", Description: "Weekly on-site yoga session", Type: domain.ActivityWellbeing, CreditCost: 30, IsActive: true},
		{Name: "Massage Corner", Description: "Chair massage at the office", Type: domain.ActivityWellbeing, CreditCost: 50, IsActive: true},
		{Name: "Escape Room", Description: "Team escape game for up to 20 people", Type: domain.ActivityTeambuilding, CreditCost: 80, IsActive: true},
		{Name: "Cooking Class", Description: "Team cooking workshop", Type: domain.ActivityTeambuilding, CreditCost: 100, IsActive: true},
		{Name: "Fruit Basket", Description: "Weekly fresh fruit delivery", Type: domain.ActivitySnacking, CreditCost: 15, IsActive: true},
		{Name: "Healthy Snack Box", Description: "Curated snack box delivery", Type: domain.ActivitySnacking, CreditCost: 20, IsActive: true},
	}
	for i := range activities {
		db.Create(&activities[i])
	}

	// ================== PLANS ==================
	log.Println("Creating plans...")
	starter := domain.Plan{
		Name:        "Starter",
		Description: "Well-being and snacking basics",
		IsActive:    true,
		Activities:  []domain.Activity{activities[0], activities[4]},
	}
	db.Create(&starter)

	full := domain.Plan{
		Name:        "Full Office",
		Description: "Everything in the catalog",
		IsActive:    true,
		Activities:  activities,
	}
	db.Create(&full)

	// ================== COMPANY + USERS ==================
	log.Println("Creating demo company...")
	company := domain.Company{
		Name:          "Acme GmbH",
		Industry:      "Software",
		ContactEmail:  "office@acme.example",
		ContactPhone:  "+49 30 1234567",
		CreditBalance: 0,
	}
	db.Create(&company)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@joyit.example",
		PasswordHash: string(adminHash),
		Name:         "Platform Admin",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@joyit.example / admin123")

	memberHash, _ := bcrypt.GenerateFromPassword([]byte("member123"), bcrypt.DefaultCost)
	member := domain.User{
		CompanyID:    &company.ID,
		Email:        "hr@acme.example",
		PasswordHash: string(memberHash),
		Name:         "Acme HR",
		Role:         domain.RoleMember,
	}
	db.Create(&member)
	log.Println("Member created: hr@acme.example / member123")

	// ================== SUBSCRIPTION ==================
	log.Println("Creating subscription...")
	now := time.Now()
	sub := domain.Subscription{
		CompanyID: company.ID,
		PlanID:    full.ID,
		Status:    domain.SubscriptionActive,
		StartDate: now,
		EndDate:   now.AddDate(1, 0, 0),
	}
	db.Create(&sub)

	// ================== STARTING CREDIT ==================
	log.Println("Granting starting credit...")
	entry := domain.CreditEntry{
		CompanyID: company.ID,
		Type:      domain.CreditGrant,
		Amount:    500,
		Balance:   500,
		Note:      "seed grant",
	}
	db.Create(&entry)
	db.Model(&domain.Company{}).Where("id = ?", company.ID).Update("credit_balance", 500)

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin:  admin@joyit.example / admin123")
	log.Println("Member: hr@acme.example / member123")
}
