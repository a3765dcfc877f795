// Command seeder wipes the database and repopulates it with sample
// agency data: three admin accounts, a handful of password entries, and
// their initial activity logs. It is intended for local development and
// demos, not production.
//
// All writes happen inside a single transaction, so a failed run leaves
// the database untouched.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trivault/trivault-backend/internal/adapter/postgres"
	activityrepo "github.com/trivault/trivault-backend/internal/adapter/postgres/activity"
	adminrepo "github.com/trivault/trivault-backend/internal/adapter/postgres/admin"
	entryrepo "github.com/trivault/trivault-backend/internal/adapter/postgres/entry"
	"github.com/trivault/trivault-backend/internal/app"
	"github.com/trivault/trivault-backend/internal/config"
	"github.com/trivault/trivault-backend/internal/domain"
)

const seedPassword = "admin123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			logger.Error("run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	admins := adminrepo.New(pool)
	entries := entryrepo.New(pool)
	activities := activityrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := activities.DeleteAll(ctx); err != nil {
			return err
		}
		if err := entries.DeleteAll(ctx); err != nil {
			return err
		}
		if err := admins.DeleteAll(ctx); err != nil {
			return err
		}

		if err := seedAdmins(ctx, admins, cfg.Auth.PasswordHashCost); err != nil {
			return err
		}
		if err := seedEntries(ctx, entries); err != nil {
			return err
		}
		return seedActivity(ctx, activities)
	})
	if err != nil {
		logger.Error("seed database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("database seeded",
		slog.String("admins", "sarah@agency.com, mike@agency.com, alex@agency.com"),
		slog.String("password", seedPassword),
	)
}

func seedAdmins(ctx context.Context, repo *adminrepo.Repo, hashCost int) error {
	seed := []struct {
		name  string
		email string
	}{
		{"Sarah Johnson", "sarah@agency.com"},
		{"Mike Chen", "mike@agency.com"},
		{"Alex Rivera", "alex@agency.com"},
	}

	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), hashCost)
		if err != nil {
			return err
		}
		_, err = repo.Create(ctx, &domain.Admin{
			Name:         s.name,
			Email:        s.email,
			PasswordHash: string(hash),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedEntries(ctx context.Context, repo *entryrepo.Repo) error {
	seed := []domain.PasswordEntry{
		{
			WebsiteName: "Google Ads Manager",
			ClientName:  "TechCorp Solutions",
			Email:       "agency@trimarketing.com",
			Password:    "SecurePass123!",
			Notes:       "Main account for all client campaigns",
			Tags:        []string{"Marketing", "Advertising"},
			CreatedBy:   "Sarah Johnson",
		},
		{
			WebsiteName: "Facebook Business Manager",
			ClientName:  "FreshBrand Co.",
			Email:       "social@trimarketing.com",
			Password:    "FBManager2024$",
			Notes:       "Access to all client Facebook pages and ad accounts",
			Tags:        []string{"Social Media", "Marketing"},
			CreatedBy:   "Mike Chen",
		},
		{
			WebsiteName: "Mailchimp",
			ClientName:  "Local Restaurant Group",
			Email:       "email@trimarketing.com",
			Password:    "EmailCamp2024!",
			Notes:       "Email marketing campaigns for all clients",
			Tags:        []string{"Email Marketing", "Marketing"},
			CreatedBy:   "Alex Rivera",
		},
		{
			WebsiteName: "LinkedIn Ads",
			ClientName:  "B2B Solutions Inc",
			Email:       "linkedin@trimarketing.com",
			Password:    "LinkedInAds2024!",
			Notes:       "B2B advertising campaigns",
			Tags:        []string{"B2B", "LinkedIn", "Marketing"},
			CreatedBy:   "Sarah Johnson",
		},
		{
			WebsiteName: "Instagram Business",
			ClientName:  "Fashion Boutique",
			Email:       "instagram@trimarketing.com",
			Password:    "InstaFashion2024$",
			Notes:       "Instagram business account for fashion client",
			Tags:        []string{"Social Media", "Instagram", "Fashion"},
			CreatedBy:   "Mike Chen",
		},
	}

	for i := range seed {
		if _, err := repo.Create(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedActivity(ctx context.Context, repo *activityrepo.Repo) error {
	seed := []domain.ActivityLog{
		{
			AdminName: "Sarah Johnson",
			Action:    domain.ActionAdd,
			EntryName: "Google Ads Manager",
			Details:   "Added new password entry for Google Ads Manager",
		},
		{
			AdminName: "Mike Chen",
			Action:    domain.ActionAdd,
			EntryName: "Facebook Business Manager",
			Details:   "Added new password entry for Facebook Business Manager",
		},
		{
			AdminName: "Alex Rivera",
			Action:    domain.ActionAdd,
			EntryName: "Mailchimp",
			Details:   "Added new password entry for Mailchimp",
		},
	}

	for _, l := range seed {
		if _, err := repo.Append(ctx, l); err != nil {
			return err
		}
	}
	return nil
}
