package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the tunables of the demo app.
type Config struct {
	DeliveryFee     int64         // VND, minor units
	SettlementDelay time.Duration // simulated payment processing time
	TrackInterval   time.Duration // how often order status advances
	LogLevel        string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. Missing variables fall back to the demo defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DeliveryFee:     getInt64("DELIVERY_FEE", 15000),
		SettlementDelay: getDuration("SETTLEMENT_DELAY", 2*time.Second),
		TrackInterval:   getDuration("TRACK_INTERVAL", 10*time.Second),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt64(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
