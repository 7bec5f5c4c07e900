package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB *sqlx.DB

const leadsSchema = `
CREATE TABLE IF NOT EXISTS leads (
	id uuid PRIMARY KEY,
	kind varchar(20) NOT NULL,
	name text NOT NULL DEFAULT '',
	email text NOT NULL,
	phone text,
	message text,
	car_id text,
	created_at timestamptz NOT NULL DEFAULT now()
)`

func dsnFromEnv() string {
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

func InitPostgres() error {
	dsn := dsnFromEnv()

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			_, err = DB.Exec(leadsSchema)
			return err
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
