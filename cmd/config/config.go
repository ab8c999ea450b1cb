package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

var (
	RunAddress        string
	DatabaseURI       string
	ClassifierAddress string
	ClassifierToken   string
	StorageAddress    string
	GeocoderAddress   string
	LogLevel          string
	JWTSecret         string

	ReportRewardPoints int
	CollectRewardMin   int
	CollectRewardMax   int
	VerifyThreshold    float64
	QuantityScale      int
	ReconcileInterval  time.Duration
)

func ParseFlags() {

	flag.StringVar(&RunAddress, "a", ":8080", "address to run server")
	flag.StringVar(&DatabaseURI, "d", "", "database uri")
	flag.StringVar(&ClassifierAddress, "c", "", "image classifier address")
	flag.StringVar(&StorageAddress, "s", "", "object storage address")
	flag.StringVar(&GeocoderAddress, "g", "", "geocoder address (optional)")
	flag.StringVar(&LogLevel, "l", "info", "log level")
	flag.StringVar(&JWTSecret, "j", "ecotrack-secret", "jwt signing secret")
	flag.IntVar(&ReportRewardPoints, "report-reward", 10, "points for reporting waste")
	flag.IntVar(&CollectRewardMin, "collect-reward-min", 10, "min points for a verified collection")
	flag.IntVar(&CollectRewardMax, "collect-reward-max", 59, "max points for a verified collection")
	flag.Float64Var(&VerifyThreshold, "verify-threshold", 0.6, "minimum confidence for verification success")
	flag.IntVar(&QuantityScale, "quantity-scale", 30, "scale applied to classifier score to estimate quantity")
	flag.DurationVar(&ReconcileInterval, "reconcile-interval", 5*time.Minute, "balance reconciliation interval")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDRESS"); envRunAddr != "" {
		RunAddress = envRunAddr
	}
	if databaseURI := os.Getenv("DATABASE_URI"); databaseURI != "" {
		DatabaseURI = databaseURI
	}
	if classifierAddress := os.Getenv("CLASSIFIER_ADDRESS"); classifierAddress != "" {
		ClassifierAddress = classifierAddress
	}
	if classifierToken := os.Getenv("CLASSIFIER_TOKEN"); classifierToken != "" {
		ClassifierToken = classifierToken
	}
	if storageAddress := os.Getenv("STORAGE_ADDRESS"); storageAddress != "" {
		StorageAddress = storageAddress
	}
	if geocoderAddress := os.Getenv("GEOCODER_ADDRESS"); geocoderAddress != "" {
		GeocoderAddress = geocoderAddress
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		LogLevel = logLevel
	}
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		JWTSecret = jwtSecret
	}
	if threshold := os.Getenv("VERIFY_THRESHOLD"); threshold != "" {
		if parsed, err := strconv.ParseFloat(threshold, 64); err == nil {
			VerifyThreshold = parsed
		}
	}
	if scale := os.Getenv("QUANTITY_SCALE"); scale != "" {
		if parsed, err := strconv.Atoi(scale); err == nil {
			QuantityScale = parsed
		}
	}
}
