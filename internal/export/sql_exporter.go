package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go-timeclock/internal/shared/connection"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	exportsDir  = "exports"
	sqlFilename = "timetracking.sql"
)

// RelativePath is where the dump lands, relative to the working directory.
var RelativePath = filepath.Join(exportsDir, sqlFilename)

//go:generate mockgen -source=sql_exporter.go -destination=mock/sql_exporter_mock.go -package=mock
type Exporter interface {
	// Trigger requests a snapshot without blocking the caller. Failures are
	// logged by the worker and never reach the action that punched the
	// clock; the dump is a convenience, not a correctness requirement.
	Trigger()
	// ExportNow runs a snapshot synchronously (admin endpoint).
	ExportNow(ctx context.Context) (string, error)
}

type SQLExporter struct {
	db     *gorm.DB
	driver string
	logger *zap.Logger
	kick   chan struct{}
}

func NewSQLExporter(db *gorm.DB, logger ...*zap.Logger) *SQLExporter {
	l := zap.L().Named("export.sql")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.sql")
	}
	return &SQLExporter{
		db:     db,
		driver: connection.ActiveDriver(),
		logger: l,
		kick:   make(chan struct{}, 1),
	}
}

func (e *SQLExporter) Trigger() {
	if e.driver != connection.DriverSQLite {
		return
	}
	select {
	case e.kick <- struct{}{}:
	default:
		// a snapshot is already queued; one dump covers both triggers
	}
}

// Run drains triggers until the context is cancelled. Errors stay on this
// side of the channel: logged, never propagated.
func (e *SQLExporter) Run(ctx context.Context) {
	log := e.logger.Named("worker")
	log.Info("snapshot export worker started", zap.String("driver", e.driver))

	for {
		select {
		case <-ctx.Done():
			log.Info("snapshot export worker stopped")
			return
		case <-e.kick:
			if _, err := e.ExportNow(ctx); err != nil {
				log.Error("snapshot export failed", zap.Error(err))
			}
		}
	}
}

func (e *SQLExporter) ExportNow(ctx context.Context) (string, error) {
	if e.driver != connection.DriverSQLite {
		// client-server database: dumps are the DBA's problem
		return "", nil
	}

	out, err := e.dump(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(exportsDir, 0o755); err != nil {
		return "", err
	}
	full := filepath.Join(exportsDir, sqlFilename)
	if err := os.WriteFile(full, []byte(out), 0o644); err != nil {
		return "", err
	}

	e.logger.Info("snapshot exported", zap.String("file", full))
	return full, nil
}

func (e *SQLExporter) dump(ctx context.Context) (string, error) {
	type masterRow struct {
		Name string
		SQL  string
	}
	var schema []masterRow
	err := e.db.WithContext(ctx).
		Raw(`SELECT name, sql FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' AND sql IS NOT NULL ORDER BY name`).
		Scan(&schema).Error
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("-- TimeClock (SQLite)\n")
	b.WriteString("-- Updated at (UTC): " + time.Now().UTC().Format(time.RFC3339) + "\n\n")
	b.WriteString("PRAGMA foreign_keys=OFF;\n")
	b.WriteString("BEGIN TRANSACTION;\n\n")

	for _, row := range schema {
		b.WriteString(row.SQL + ";\n\n")
	}

	for _, table := range schema {
		cols, err := e.tableColumns(ctx, table.Name)
		if err != nil {
			return "", err
		}

		var rows []map[string]interface{}
		if err := e.db.WithContext(ctx).Table(table.Name).Find(&rows).Error; err != nil {
			return "", err
		}

		for _, r := range rows {
			values := make([]string, len(cols))
			quoted := make([]string, len(cols))
			for i, col := range cols {
				values[i] = sqlValue(r[col])
				quoted[i] = `"` + col + `"`
			}
			fmt.Fprintf(&b, "INSERT INTO %q (%s) VALUES (%s);\n",
				table.Name, strings.Join(quoted, ", "), strings.Join(values, ", "))
		}
		if len(rows) > 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("COMMIT;\n")
	b.WriteString("PRAGMA foreign_keys=ON;\n")
	return b.String(), nil
}

func (e *SQLExporter) tableColumns(ctx context.Context, table string) ([]string, error) {
	type colRow struct {
		Name string
	}
	var cols []colRow
	err := e.db.WithContext(ctx).
		Raw(fmt.Sprintf("PRAGMA table_info(%q)", table)).
		Scan(&cols).Error
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names, nil
}

func sqlValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case time.Time:
		return "'" + val.UTC().Format(time.RFC3339Nano) + "'"
	case []byte:
		return quoteString(string(val))
	default:
		return quoteString(fmt.Sprintf("%v", val))
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
