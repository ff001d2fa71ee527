package main

import (
	"log"

	"escapedesk-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "TENANT_REGISTERED",
			DisplayName: "Welcome",
			Template:    "Welcome to EscapeDesk, {tenant_name}! Set up your first venue to start taking bookings.",
			TargetType:  "TENANT",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "STAFF_LOGIN",
			DisplayName: "Login Activity",
			Template:    "{staff_name} logged in from {ip}",
			TargetType:  "TENANT",
			Priority:    "LOW",
			IsActive:    false,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "BOOKING_CREATED",
			DisplayName: "New Booking",
			Template:    "New booking {reference} for {activity_name} on {date} at {start_time} ({party_size} guests)",
			TargetType:  "TENANT",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "BOOKING_CANCELLED",
			DisplayName: "Booking Cancelled",
			Template:    "Booking {reference} was cancelled. {refund_note}",
			TargetType:  "TENANT",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "BOOKING_RESCHEDULED",
			DisplayName: "Booking Rescheduled",
			Template:    "Booking {reference} moved to {date} at {start_time}",
			TargetType:  "TENANT",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "WAIVER_SIGNATURE_REQUESTED",
			DisplayName: "Waiver Signature Requested",
			Template:    "Signature requested from {participant_name} ({waiver_code})",
			TargetType:  "TENANT",
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "WAIVER_SIGNED",
			DisplayName: "Waiver Signed",
			Template:    "{participant_name} signed waiver {waiver_code}",
			TargetType:  "TENANT",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "SUBSCRIPTION_CREATED",
			DisplayName: "Subscription Checkout Started",
			Template:    "Checkout started for plan {plan_name}",
			TargetType:  "TENANT",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "REFUND_PROCESSED",
			DisplayName: "Refund Processed",
			Template:    "Refund for booking {reference} was {decision}",
			TargetType:  "TENANT",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	for _, t := range types {
		var existing model.NotificationType
		if err := db.Where("code = ?", t.Code).First(&existing).Error; err == nil {
			log.Printf("Notification type '%s' already exists, skipping...", t.Code)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			log.Printf("Error creating notification type '%s': %v", t.Code, err)
		} else {
			log.Printf("Created notification type: %s", t.Code)
		}
	}
}
