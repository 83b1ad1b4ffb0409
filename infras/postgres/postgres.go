package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"railbook/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 20
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads from writes. Anything that must observe a write it just made
// (ledger lookups after commit, seat inventory) reads from Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
	timezone string
}

func (e endpoint) dsn() string {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.username,
		e.password,
		net.JoinHostPort(e.host, e.port),
		e.dbName,
		e.sslMode,
	)

	if e.timezone != "" {
		dsn += "&timezone=" + e.timezone
	}

	return dsn
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := endpoint{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   pg.Prefix + pg.Write.Name,
		sslMode:  pg.Write.SSLMode,
		timezone: pg.Write.Timezone,
	}

	read := endpoint{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   pg.Prefix + pg.Read.Name,
		sslMode:  pg.Read.SSLMode,
		timezone: pg.Read.Timezone,
	}

	conn := &Connection{
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}

	// No dedicated replica configured, share the primary.
	if read.host == "" {
		conn.Read = conn.Write
	} else {
		conn.Read = connect(read, pg.MaxRetry, pg.RetryWaitTime)
	}

	return conn
}

// Close closes both pools once.
func (c *Connection) Close() {
	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close write connection")
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close read connection")
		}
	}
}

func connect(target endpoint, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", target.dsn())
		if err == nil {
			log.
				Info().
				Str("name", target.name).
				Str("host", target.host).
				Str("port", target.port).
				Str("dbName", target.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", target.name).
			Str("host", target.host).
			Str("dbName", target.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", target.name).Msg("Giving up connecting to database")

	return nil
}
