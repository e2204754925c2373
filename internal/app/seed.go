package app

import (
	"errors"

	"gorm.io/gorm"

	"workhub_backend/internal/auth"
	"workhub_backend/internal/config"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
)

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 comes from uuid-ossp.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.AuthToken{},
		&models.Business{},
		&models.JobStatus{},
		&models.JobPost{},
		&models.JobApplication{},
		&models.ContributorProfile{},
		&models.Article{},
		&models.Event{},
		&models.EventRegistration{},
		&models.Payment{},
	)
}

// Seed upserts the reference data: job statuses, roles, and the first
// admin account. Safe to run on every boot.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedJobStatuses(db); err != nil {
		return err
	}
	if err := seedRoles(db); err != nil {
		return err
	}
	return seedFirstAdmin(db, cfg)
}

func seedJobStatuses(db *gorm.DB) error {
	statuses := []models.JobStatus{
		{Code: models.JobStatusActive, Label: "Active", Description: "Visible and accepting applications"},
		{Code: models.JobStatusSuspended, Label: "Suspended", Description: "Temporarily hidden"},
		{Code: models.JobStatusArchived, Label: "Archived", Description: "Closed permanently"},
	}

	for _, status := range statuses {
		var existing models.JobStatus
		err := db.Where("code = ?", status.Code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&status).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func seedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{Name: models.RoleAdmin, Label: "Administrator"},
		{Name: models.RoleUser, Label: "User"},
	}

	for _, role := range roles {
		var existing models.Role
		err := db.Where("name = ?", role.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// seedFirstAdmin creates the bootstrap admin when configured and absent.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("admin seed skipped: ADMIN_EMAIL / ADMIN_PASSWORD not configured")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	var adminRole models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	admin := models.User{
		Name:         cfg.Admin.Name,
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		if err := tx.Model(&admin).Association("Roles").Append(&adminRole); err != nil {
			return err
		}
		logger.Info("first admin created", "email", admin.Email)
		return nil
	})
}
