package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

type Config struct {
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	MaxRetries int
	RetryDelay time.Duration
}

func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}

	return u.String()
}

func NewPostgresDB(cfg Config) (*sql.DB, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 10
	}

	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	var db *sql.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Connecting to database (Attempt %d/%d)...", i, maxRetries)
		db, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Println("Database connected successfully!")
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}

		if db != nil {
			db.Close()
		}

		log.Printf("Database not ready yet. Waiting %s...", delay)
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}

const schema = `
CREATE TABLE IF NOT EXISTS listing_notifications (
	id BIGSERIAL PRIMARY KEY,
	type TEXT NOT NULL,
	seller_id UUID NOT NULL,
	event_id UUID NOT NULL,
	ticket_type_id BIGINT NOT NULL,
	price NUMERIC(78, 0) NOT NULL,
	amount BIGINT NOT NULL,
	buyer_id UUID,
	quantity BIGINT NOT NULL DEFAULT 0,
	occurred_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS listing_notifications_event_seller_idx
	ON listing_notifications (event_id, seller_id);

CREATE TABLE IF NOT EXISTS sales (
	id UUID PRIMARY KEY,
	event_id UUID NOT NULL,
	ticket_type_id BIGINT NOT NULL,
	seller_id UUID NOT NULL,
	buyer_id UUID NOT NULL,
	quantity BIGINT NOT NULL,
	unit_price NUMERIC(78, 0) NOT NULL,
	total NUMERIC(78, 0) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS sales_event_idx ON sales (event_id, created_at);

CREATE TABLE IF NOT EXISTS seller_sales (
	event_id UUID NOT NULL,
	seller_id UUID NOT NULL,
	units_sold BIGINT NOT NULL,
	gross NUMERIC(78, 0) NOT NULL,
	PRIMARY KEY (event_id, seller_id)
);
`

// Migrate creates the history tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
