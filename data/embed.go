// Package data embeds the database bootstrap scripts used by the container
// harness.
package data

import (
	_ "embed"
	"strings"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var InitdbMariaDBPrivileges string

// MariaDBPrivileges fills the database and user placeholders of the
// privileges script.
func MariaDBPrivileges(database, user string) string {
	return strings.NewReplacer("{{database}}", database, "{{user}}", user).Replace(InitdbMariaDBPrivileges)
}
