package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret         string
	JWTRefreshSecret  string
	MidtransServerKey string
	MidtransUseProd   bool
	SendgridAPIKey    string
	EmailFrom         string
	EmailFromName     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] No .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	EmailFrom = GetEnv("EMAIL_FROM", "noreply@yugam.in")
	EmailFromName = GetEnv("EMAIL_FROM_NAME", "Yugam")

	if v := GetEnv("MIDTRANS_USE_PROD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			MidtransUseProd = b
		}
	}

	if JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		log.Println("[ERROR] JWT_REFRESH_SECRET is not set")
	}
	if MidtransServerKey == "" {
		log.Println("[WARN] MIDTRANS_SERVER_KEY is not set, payment orders will fail")
	}
	if SendgridAPIKey == "" {
		log.Println("[WARN] SENDGRID_API_KEY is not set, emails go to console")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
