package query

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/raids-lab/agencyos/pkg/config"
	"github.com/raids-lab/agencyos/pkg/logutils"
)

var (
	once     sync.Once
	instance *gorm.DB
)

const (
	maxIdleConns    = 5
	maxOpenConns    = 10
	connMaxLifetime = time.Hour
)

// DSN builds the postgres connection string for host, taking every other setting from config.
func DSN(host string) string {
	pg := config.GetConfig().Postgres
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, pg.User, pg.Password, pg.DBName, pg.Port, pg.SSLMode, pg.TimeZone)
}

// GetDB returns the singleton instance of the database connection.
// Reads go to the configured replicas when there are any.
func GetDB() *gorm.DB {
	once.Do(func() {
		pg := config.GetConfig().Postgres
		db, err := Open(DSN(pg.Host), pg.Replicas...)
		if err != nil {
			panic(err)
		}
		instance = db
		logutils.Log.Infof("Postgres init success, %d replica(s)", len(pg.Replicas))
	})
	return instance
}

// Open connects to dsn and registers the replica hosts for reads.
func Open(dsn string, replicaHosts ...string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if len(replicaHosts) == 0 {
		return db, nil
	}
	replicas := make([]gorm.Dialector, 0, len(replicaHosts))
	for _, host := range replicaHosts {
		replicas = append(replicas, postgres.Open(DSN(host)))
	}
	err = db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	}).
		SetMaxIdleConns(maxIdleConns).
		SetMaxOpenConns(maxOpenConns).
		SetConnMaxLifetime(connMaxLifetime))
	if err != nil {
		return nil, fmt.Errorf("register replicas: %w", err)
	}
	return db, nil
}
