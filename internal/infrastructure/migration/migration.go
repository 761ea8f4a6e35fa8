package migration

import (
	"context"

	"cv-composer/pkg/logger"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

// Migrations are idempotent and run in order on every startup.
var Migrations = []Migration{
	{
		Name: "create_profiles",
		SQL: `
		CREATE TABLE IF NOT EXISTS profiles (
			id                     BIGSERIAL PRIMARY KEY,
			description            VARCHAR(200),
			active                 BOOLEAN NOT NULL DEFAULT TRUE,
			surnames               VARCHAR(60) NOT NULL,
			first_names            VARCHAR(60) NOT NULL,
			nationality            VARCHAR(20),
			birth_place            VARCHAR(60),
			birth_date             DATE,
			national_id            VARCHAR(10) NOT NULL UNIQUE,
			sex                    CHAR(1) NOT NULL,
			marital_status         VARCHAR(50),
			driver_license         VARCHAR(6),
			phone                  VARCHAR(15),
			landline               VARCHAR(15),
			work_address           VARCHAR(50),
			home_address           VARCHAR(50),
			website                VARCHAR(150),
			email                  VARCHAR(100) NOT NULL UNIQUE,
			photo                  VARCHAR(255),
			show_experience        BOOLEAN NOT NULL DEFAULT TRUE,
			show_courses           BOOLEAN NOT NULL DEFAULT TRUE,
			show_recognitions      BOOLEAN NOT NULL DEFAULT TRUE,
			show_academic_products BOOLEAN NOT NULL DEFAULT TRUE,
			show_work_products     BOOLEAN NOT NULL DEFAULT TRUE,
			show_marketplace       BOOLEAN NOT NULL DEFAULT TRUE
		);`,
	},
	{
		Name: "create_experiences",
		SQL: `
		CREATE TABLE IF NOT EXISTS experiences (
			id               BIGSERIAL PRIMARY KEY,
			profile_id       BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			position         VARCHAR(250) NOT NULL,
			company          VARCHAR(50) NOT NULL,
			location         VARCHAR(50) NOT NULL,
			company_email    VARCHAR(100) NOT NULL,
			company_website  VARCHAR(150),
			contact_name     VARCHAR(100) NOT NULL,
			contact_phone    VARCHAR(60) NOT NULL,
			start_date       DATE NOT NULL,
			end_date         DATE,
			duties           VARCHAR(250) NOT NULL,
			published        BOOLEAN NOT NULL DEFAULT TRUE,
			certificate_file VARCHAR(255),
			certificate_link VARCHAR(500)
		);`,
	},
	{
		Name: "create_courses",
		SQL: `
		CREATE TABLE IF NOT EXISTS courses (
			id               BIGSERIAL PRIMARY KEY,
			profile_id       BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			name             VARCHAR(100) NOT NULL,
			start_date       DATE NOT NULL,
			end_date         DATE NOT NULL,
			total_hours      INTEGER NOT NULL,
			description      VARCHAR(250) NOT NULL,
			sponsor          VARCHAR(100) NOT NULL,
			contact_name     VARCHAR(100) NOT NULL,
			contact_phone    VARCHAR(60) NOT NULL,
			sponsor_email    VARCHAR(60) NOT NULL,
			published        BOOLEAN NOT NULL DEFAULT TRUE,
			certificate_file VARCHAR(255),
			certificate_link VARCHAR(500)
		);`,
	},
	{
		Name: "create_recognitions",
		SQL: `
		CREATE TABLE IF NOT EXISTS recognitions (
			id               BIGSERIAL PRIMARY KEY,
			profile_id       BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			kind             VARCHAR(100) NOT NULL,
			date             DATE NOT NULL,
			description      VARCHAR(250) NOT NULL,
			sponsor          VARCHAR(100) NOT NULL,
			contact_name     VARCHAR(100) NOT NULL,
			contact_phone    VARCHAR(60) NOT NULL,
			published        BOOLEAN NOT NULL DEFAULT TRUE,
			certificate_file VARCHAR(255),
			certificate_link VARCHAR(500)
		);`,
	},
	{
		Name: "create_academic_products",
		SQL: `
		CREATE TABLE IF NOT EXISTS academic_products (
			id          BIGSERIAL PRIMARY KEY,
			profile_id  BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			name        VARCHAR(100) NOT NULL,
			classifier  VARCHAR(100) NOT NULL,
			description VARCHAR(250) NOT NULL,
			published   BOOLEAN NOT NULL DEFAULT TRUE
		);`,
	},
	{
		Name: "create_work_products",
		SQL: `
		CREATE TABLE IF NOT EXISTS work_products (
			id          BIGSERIAL PRIMARY KEY,
			profile_id  BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			name        VARCHAR(100) NOT NULL,
			date        DATE NOT NULL,
			description VARCHAR(250) NOT NULL,
			published   BOOLEAN NOT NULL DEFAULT TRUE
		);`,
	},
	{
		Name: "create_marketplace_items",
		SQL: `
		CREATE TABLE IF NOT EXISTS marketplace_items (
			id           BIGSERIAL PRIMARY KEY,
			profile_id   BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			name         VARCHAR(100) NOT NULL,
			condition    VARCHAR(40) NOT NULL,
			description  VARCHAR(250) NOT NULL,
			price        NUMERIC(7,2) NOT NULL,
			photo        VARCHAR(255),
			published_at DATE NOT NULL DEFAULT CURRENT_DATE,
			published    BOOLEAN NOT NULL DEFAULT TRUE
		);`,
	},
	{
		Name: "create_unified_reports",
		SQL: `
		CREATE TABLE IF NOT EXISTS unified_reports (
			section    VARCHAR(20) PRIMARY KEY,
			file       VARCHAR(255) NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	},
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	log.Info("Starting database migrations")
	for _, m := range Migrations {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			log.Error("Migration failed", "name", m.Name, "error", err)
			return errors.Wrapf(err, "migration %s", m.Name)
		}
		log.Debug("Migration completed", "name", m.Name)
	}
	log.Info("All migrations completed successfully", "count", len(Migrations))
	return nil
}
