package database

import (
	"database/sql"
	"fmt"
)

// schemaStatements (re)initialize the three wallpost tables. Drop order goes
// token first because of the user FK; create order goes sticker and user
// before token.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS "token"`,
	`DROP TABLE IF EXISTS "user"`,
	`DROP TABLE IF EXISTS "sticker"`,
	`CREATE TABLE sticker(
		id serial PRIMARY KEY,
		title varchar(255) not null,
		description text
	)`,
	`CREATE TABLE "user"(
		id serial PRIMARY KEY,
		username varchar(255) not null,
		password varchar(255) not null
	)`,
	`CREATE TABLE "token"(
		id serial PRIMARY KEY,
		user_id integer not null,
		token varchar(255) not null,
		valid_until timestamp not null,
		CONSTRAINT user_id_fk FOREIGN KEY(user_id) REFERENCES "user" (id)
	)`,
}

// InitSchema drops and recreates all wallpost tables.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
