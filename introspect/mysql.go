package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MySQL pulls CREATE TABLE DDL from a live server so the output can be fed
// straight into parser.Parse. Only the DDL text crosses this boundary; the
// parser itself stays free of I/O.
type MySQL struct {
	db *sql.DB
}

func OpenMySQL(dsn string) (*MySQL, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	return &MySQL{db: db}, nil
}

func (m *MySQL) Close() error {
	return m.db.Close()
}

// Tables lists base table names of the current schema, system schemas
// excluded, in name order.
func (m *MySQL) Tables(ctx context.Context) ([]string, error) {
	const query = `
		SELECT TABLE_NAME
		FROM information_schema.tables
		WHERE TABLE_SCHEMA = DATABASE()
		  AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list tables")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "scan table name")
		}
		names = append(names, name)
	}
	return names, errors.Wrap(rows.Err(), "list tables")
}

// DumpDDL returns the concatenated SHOW CREATE TABLE output for every base
// table of the current schema, each statement terminated with a semicolon.
func (m *MySQL) DumpDDL(ctx context.Context) (string, error) {
	names, err := m.Tables(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, name := range names {
		ddl, err := m.showCreateTable(ctx, name)
		if err != nil {
			return "", err
		}
		sb.WriteString(ddl)
		sb.WriteString(";\n\n")
	}
	log.Debug().Int("tables", len(names)).Msg("introspected schema")
	return sb.String(), nil
}

func (m *MySQL) showCreateTable(ctx context.Context, name string) (string, error) {
	var table, ddl string
	query := fmt.Sprintf("SHOW CREATE TABLE `%s`", strings.ReplaceAll(name, "`", "``"))
	if err := m.db.QueryRowContext(ctx, query).Scan(&table, &ddl); err != nil {
		return "", errors.Wrapf(err, "show create table %q", name)
	}
	return ddl, nil
}
