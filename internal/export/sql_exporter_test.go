package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLValue(t *testing.T) {
	assert.Equal(t, "NULL", sqlValue(nil))
	assert.Equal(t, "1", sqlValue(true))
	assert.Equal(t, "0", sqlValue(false))
	assert.Equal(t, "42", sqlValue(int64(42)))
	assert.Equal(t, "1.5", sqlValue(1.5))
	assert.Equal(t, "'it''s fine'", sqlValue("it's fine"))
	assert.Equal(t, "'raw'", sqlValue([]byte("raw")))

	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "'2026-03-02T09:00:00Z'", sqlValue(ts))
}

func TestSQLExporter_NonSQLiteIsNoop(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")

	e := NewSQLExporter(nil)

	// both the async and the sync path must do nothing against a
	// client-server database
	e.Trigger()
	select {
	case <-e.kick:
		t.Fatal("trigger queued a snapshot for a non-sqlite driver")
	default:
	}

	path, err := e.ExportNow(context.Background())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestSQLExporter_TriggerCoalesces(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	e := NewSQLExporter(nil)

	// repeated triggers never block and collapse into one queued snapshot
	e.Trigger()
	e.Trigger()
	e.Trigger()

	<-e.kick
	select {
	case <-e.kick:
		t.Fatal("triggers did not coalesce")
	default:
	}
}
