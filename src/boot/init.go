package boot

import (
	"context"
	"log"
	"styledecor/src/db"
	"styledecor/src/lib"
	"styledecor/src/models"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	if err := Migrate(db); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Service{},
		&models.Package{},
		&models.Booking{},
		&models.Payment{},
		&models.User{},
		&models.Decorator{},
	)
}

// InitClients checks the optional collaborators once at startup. Missing ones
// are logged and their features stay disabled.
func InitClients() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if rd := lib.GetRedisClient(); rd != nil {
		if err := rd.Ping(ctx).Err(); err != nil {
			log.Printf("[redis] ping failed, payment locks may fail: %s\n", err.Error())
		} else {
			log.Println("[redis] connected")
		}
	} else {
		log.Println("[redis] REDIS_HOST not set, payment locks disabled")
	}
	if lib.GetMailer() == nil {
		log.Println("[smtp] SMTP_HOST not set, receipts disabled")
	}
	if _, err := lib.GetIdentityVerifier(); err != nil {
		log.Printf("Error initializing identity verifier: %s\n", err.Error())
	}
	lib.GetCheckoutProvider()
}
