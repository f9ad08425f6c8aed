// Seed the first admin login:
//
//	go run ./scripts -username office -password secret -name "Front Office"
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ccuneo-ui/school-attendance-system/config"
	"github.com/ccuneo-ui/school-attendance-system/database"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

func main() {
	username := flag.String("username", "", "login username")
	password := flag.String("password", "", "login password")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("username and password are required")
	}

	cfg := config.Load()
	database.Connect(cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var existing models.User
	err = database.DB.Where("username = ?", *username).First(&existing).Error
	switch {
	case err == nil:
		existing.Password = string(hash)
		existing.Name = *name
		existing.CanManage = true
		if err := database.DB.Save(&existing).Error; err != nil {
			log.Fatalf("update user: %v", err)
		}
		fmt.Printf("updated user %q (id=%d)\n", *username, existing.ID)
	case err == gorm.ErrRecordNotFound:
		u := models.User{
			Username:  *username,
			Password:  string(hash),
			Name:      *name,
			CanManage: true,
		}
		if err := database.DB.Create(&u).Error; err != nil {
			log.Fatalf("create user: %v", err)
		}
		fmt.Printf("created user %q (id=%d)\n", *username, u.ID)
	default:
		log.Fatalf("lookup user: %v", err)
	}
}
