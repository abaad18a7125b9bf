package main

import (
	"sipspot-be/internal/model"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

// seedPlans populates the partner subscription plan catalog.
func seedPlans(db *gorm.DB) {
	plans := []model.SubscriptionPlan{
		{
			Name:          "Starter Monthly",
			Slug:          "starter-monthly",
			Description:   "List one establishment with menus, ordering and feedback.",
			Price:         99000,
			TaxRate:       0.11,
			BillingPeriod: "monthly",
			TrialDays:     14,
			IsActive:      true,
			SortOrder:     1,
		},
		{
			Name:          "Starter Yearly",
			Slug:          "starter-yearly",
			Description:   "Two months free compared to paying monthly.",
			Price:         990000,
			TaxRate:       0.11,
			BillingPeriod: "yearly",
			TrialDays:     14,
			IsActive:      true,
			SortOrder:     2,
		},
		{
			Name:          "Pro Monthly",
			Slug:          "pro-monthly",
			Description:   "Unlimited establishments, banners and priority support.",
			Price:         249000,
			TaxRate:       0.11,
			BillingPeriod: "monthly",
			TrialDays:     0,
			IsActive:      true,
			SortOrder:     3,
		},
	}

	for _, p := range plans {
		var existing model.SubscriptionPlan
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			color.Yellow("Plan '%s' already exists, skipping...", p.Slug)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			color.Red("Failed to create plan '%s': %v", p.Slug, err)
		} else {
			color.Green("Created plan: %s", p.Name)
		}
	}
}
