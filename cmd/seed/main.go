package main

import (
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"fileportal/internal/config"
	"fileportal/internal/database"
	"fileportal/internal/domain"
	"fileportal/internal/domain/auth"
	"fileportal/internal/domain/profile"
	"fileportal/internal/domain/tabs"
	"fileportal/internal/domain/vault"
)

type seedUser struct {
	username string
	password string
	role     domain.Role
	fullName string
	email    string
}

var defaultUsers = []seedUser{
	{"developer", "admin123", domain.RoleDeveloper, "Developer", "developer@portal.local"},
	{"collector", "boss123", domain.RoleCollector, "Collector", "collector@portal.local"},
	{"user1", "user123", domain.RoleUser1, "User One", "user1@portal.local"},
	{"user2", "user2123", domain.RoleUser2, "User Two", "user2@portal.local"},
}

var defaultTabs = map[domain.Role][]string{
	domain.RoleUser1: {"All", "Daily", "Weekly", "Monthly"},
	domain.RoleUser2: {"All", "Forms", "Announcements", "Leave"},
}

var defaultVaultTabs = []string{"All", "Confidential", "Archives", "Reports"}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&tabs.CustomTab{},
		&profile.UserProfile{},
		&vault.VaultTab{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := seedUsers(db); err != nil {
		log.Fatalf("seed users: %v", err)
	}
	if err := seedTabs(db); err != nil {
		log.Fatalf("seed tabs: %v", err)
	}
	if err := seedVaultTabs(db); err != nil {
		log.Fatalf("seed vault tabs: %v", err)
	}
	log.Println("seed complete")
}

func seedUsers(db *gorm.DB) error {
	for _, su := range defaultUsers {
		var existing domain.User
		err := db.Where("username = ?", su.username).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := auth.HashPassword(su.password)
		if err != nil {
			return err
		}
		user := domain.User{Username: su.username, PasswordHash: hash, Role: su.role}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		prof := profile.UserProfile{UserID: user.ID, FullName: su.fullName, Email: su.email}
		if err := db.Create(&prof).Error; err != nil {
			return err
		}
		log.Printf("created %s (%s)", su.username, su.role)
	}
	return nil
}

func seedTabs(db *gorm.DB) error {
	for group, names := range defaultTabs {
		for i, name := range names {
			tab := tabs.CustomTab{
				RoleGroup:    group,
				TabName:      name,
				TabKey:       tabKey(name),
				DisplayOrder: i + 1,
			}
			var existing tabs.CustomTab
			err := db.Where("role_group = ? AND tab_key = ?", tab.RoleGroup, tab.TabKey).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&tab).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedVaultTabs(db *gorm.DB) error {
	var collectors []domain.User
	if err := db.Where("role = ?", domain.RoleCollector).Find(&collectors).Error; err != nil {
		return err
	}
	for _, c := range collectors {
		for i, name := range defaultVaultTabs {
			tab := vault.VaultTab{
				CollectorID:  c.ID,
				TabName:      name,
				TabKey:       tabKey(name),
				DisplayOrder: i + 1,
			}
			var existing vault.VaultTab
			err := db.Where("collector_id = ? AND tab_key = ?", tab.CollectorID, tab.TabKey).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&tab).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func tabKey(name string) string {
	key := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			key = append(key, r+('a'-'A'))
		case r == ' ':
			key = append(key, '-')
		default:
			key = append(key, r)
		}
	}
	return string(key)
}
