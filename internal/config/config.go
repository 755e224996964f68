package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	BotToken    string
	DatabaseURL string
	Location    *time.Location
	HTTPAddr    string
	LogLevel    string
	Env         string // dev|prod
	SentryDSN   string

	// University API the bot syncs mutations to, and the public page
	// activities link subjects to.
	UniversityBaseURL string
	SubjectPageBase   string

	// Current academic term, used for the semester progress line.
	SemesterStart time.Time
	SemesterEnd   time.Time
}

func Load() (*Config, error) {
	tz := getenv("TZ", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	semStart, err := parseDate(mustEnv("SEMESTER_START"), loc)
	if err != nil {
		return nil, fmt.Errorf("SEMESTER_START: %w", err)
	}
	semEnd, err := parseDate(mustEnv("SEMESTER_END"), loc)
	if err != nil {
		return nil, fmt.Errorf("SEMESTER_END: %w", err)
	}
	if !semEnd.After(semStart) {
		return nil, fmt.Errorf("semester end %s is not after start %s",
			semEnd.Format("2006-01-02"), semStart.Format("2006-01-02"))
	}

	cfg := &Config{
		BotToken:          mustEnv("BOT_TOKEN"),
		DatabaseURL:       mustEnv("DATABASE_URL"),
		Location:          loc,
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		Env:               getenv("ENV", "dev"),
		SentryDSN:         os.Getenv("SENTRY_DSN"),
		UniversityBaseURL: getenv("UNIVERSITY_BASE_URL", "https://uspdigital.usp.br/api"),
		SubjectPageBase:   getenv("SUBJECT_PAGE_BASE", "https://uspdigital.usp.br/jupiterweb"),
		SemesterStart:     semStart,
		SemesterEnd:       semEnd,
	}
	return cfg, nil
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("required env " + k + " is empty")
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
