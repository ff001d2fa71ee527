package main

import (
	"log"
	"os"

	"escapedesk-be/internal/model"
	"escapedesk-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do perfectly)
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		// Extensions
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// Enums (Idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'credit_transaction_type') THEN CREATE TYPE credit_transaction_type AS ENUM ('plan_allocation', 'purchase', 'booking', 'waiver', 'ai_conversation', 'refund', 'adjustment', 'expiry'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'billing_period') THEN CREATE TYPE billing_period AS ENUM ('monthly', 'yearly'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'payment_status') THEN CREATE TYPE payment_status AS ENUM ('pending', 'success', 'failed', 'refunded'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'subscription_status') THEN CREATE TYPE subscription_status AS ENUM ('incomplete', 'active', 'past_due', 'canceled', 'unpaid'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'staff_role') THEN CREATE TYPE staff_role AS ENUM ('owner', 'admin', 'staff'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'booking_status') THEN CREATE TYPE booking_status AS ENUM ('pending', 'confirmed', 'checked_in', 'completed', 'cancelled', 'no_show'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'waiver_record_status') THEN CREATE TYPE waiver_record_status AS ENUM ('pending', 'signed', 'expired'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Tenant{},
		&model.StaffUser{},
		&model.StaffRefreshToken{},

		&model.Venue{},
		&model.Activity{},
		&model.ScheduleSlot{},
		&model.Booking{},

		&model.WaiverTemplate{},
		&model.WaiverRecord{},
		&model.WaiverCheckIn{},

		&model.SubscriptionPlan{},
		&model.TenantSubscription{},
		&model.CancellationRequest{},
		&model.Refund{},

		&model.CreditBalance{},
		&model.CreditTransaction{},
		&model.CreditPackage{},

		&model.MediaAsset{},

		&model.NotificationType{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views & Functions
	log.Println("Step 3: Creating Views and Functions...")

	postMigrationSQL := []string{
		// Function: set_current_timestamp_updated_at
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		DECLARE _new_value TIMESTAMP WITH TIME ZONE;
		BEGIN
		  _new_value := now();
		  IF NEW.updated_at IS DISTINCT FROM _new_value THEN NEW.updated_at = _new_value; END IF;
		  RETURN NEW;
		END; $$;`,

		// View: tenant_payment_history
		`CREATE OR REPLACE VIEW tenant_payment_history AS
		 SELECT ts.tenant_id, t.name AS tenant_name, sp.name AS plan_name, sp.price, ts.payment_status, ts.provider_transaction_id, ts.created_at AS payment_date
		 FROM tenant_subscriptions ts
		 JOIN tenants t ON ts.tenant_id = t.id
		 JOIN subscription_plans sp ON ts.plan_id = sp.id
		 ORDER BY ts.created_at DESC;`,

		// View: upcoming_bookings
		`CREATE OR REPLACE VIEW upcoming_bookings AS
		 SELECT b.id, b.tenant_id, b.reference, b.customer_name, b.date, b.start_time, a.name AS activity_name, b.status
		 FROM bookings b
		 JOIN activities a ON b.activity_id = a.id
		 WHERE b.date >= CURRENT_DATE AND b.status IN ('pending', 'confirmed')
		 ORDER BY b.date, b.start_time;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
