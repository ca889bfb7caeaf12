package config

import (
	"fmt"
	"os"
)

// const dsn = "host=localhost user=postgres password=password dbname=style_deco_db port=5432 sslmode=disable TimeZone=Asia/Dhaka"

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// SiteDomain is the storefront origin Stripe redirects back to.
func SiteDomain() string {
	return getenv("SITE_DOMAIN", "http://localhost:5173")
}

func Currency() string {
	return getenv("PAYMENT_CURRENCY", "usd")
}

func Port() string {
	return getenv("PORT", "3000")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

const BOOKING_DATE_FORMAT = "2006-01-02"

const (
	DEFAULT_PAGE_LIMIT = 9
	MAX_PAGE_LIMIT     = 100
)
