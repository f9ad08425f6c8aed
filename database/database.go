package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ccuneo-ui/school-attendance-system/config"
	"github.com/ccuneo-ui/school-attendance-system/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate runs AutoMigrate and seeds the fixed elective catalog. Split out
// from Connect so tests can run it against their own DB.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Student{},
		&models.DailyDismissal{},
		&models.Elective{},
		&models.Program{},
		&models.Staff{},
		&models.Enrollment{},
		&models.AttendanceRecord{},
		&models.MCardCharge{},
		&models.User{},
	); err != nil {
		return err
	}

	// Elective catalog is selection data only; idempotent seed.
	for _, name := range []string{"Art", "Music", "PE", "Drama", "STEM"} {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Elective{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
