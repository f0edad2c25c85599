package main

import (
	"log"

	"lms/config"
	"lms/database"
	"lms/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the database with a default department and an admin account so a
// fresh install has a login to start from. Safe to run more than once.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	var department models.Department
	if err := db.Where("name = ?", "Administração").First(&department).Error; err != nil {
		department = models.Department{Name: "Administração"}
		if err := db.Create(&department).Error; err != nil {
			log.Fatalf("Failed to create default department: %v", err)
		}
		log.Printf("Created department %q (id=%d)", department.Name, department.ID)
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@lms.local").Count(&count)
	if count > 0 {
		log.Println("Admin user already exists, nothing to do")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:         "Administrador",
		Email:        "admin@lms.local",
		Password:     string(hashed),
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
		DepartmentID: department.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %s (change the password after first login)", admin.Email)
}
