package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/binary"
	"fmt"
	"os"

	msqlite "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// serializer and restorer are implemented by the modernc.org/sqlite
// driver connection. Images are loaded through the backup API: the driver's
// Deserialize hands SQLite a buffer it later frees and crashes on close.
type serializer interface {
	Serialize() ([]byte, error)
}

type restorer interface {
	NewRestore(srcURI string) (*msqlite.Backup, error)
}

// handle is an in-memory database pinned to a single connection.
type handle struct {
	db   *sql.DB
	conn *sql.Conn
}

func openHandle(ctx context.Context) (*handle, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &handle{db: db, conn: conn}, nil
}

func (h *handle) close() error {
	connErr := h.conn.Close()
	if err := h.db.Close(); err != nil {
		return err
	}
	return connErr
}

// load replaces the database with image and checks that it is intact.
// The image is staged in a temporary file because the backup API reads
// from a database path.
func (h *handle) load(ctx context.Context, image []byte) error {
	path, err := stageImage(image)
	if err != nil {
		return err
	}
	defer os.Remove(path)

	if size := imagePageSize(image); size > 0 {
		if _, err := h.conn.ExecContext(ctx, fmt.Sprintf("PRAGMA page_size = %d", size)); err != nil {
			return fmt.Errorf("failed to set page size: %w", err)
		}
	}

	err = h.conn.Raw(func(driverConn any) error {
		r, ok := driverConn.(restorer)
		if !ok {
			return fmt.Errorf("driver connection %T cannot restore", driverConn)
		}
		return restore(r, path)
	})
	if err != nil {
		return fmt.Errorf("failed to restore image: %w", err)
	}

	var result string
	if err := h.conn.QueryRowContext(ctx, `PRAGMA quick_check`).Scan(&result); err != nil {
		return fmt.Errorf("image is not a database: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("image is damaged: %s", result)
	}
	return nil
}

func restore(r restorer, path string) error {
	backup, err := r.NewRestore(path)
	if err != nil {
		return err
	}
	for {
		more, err := backup.Step(-1)
		if err != nil {
			backup.Finish()
			return err
		}
		if !more {
			break
		}
	}
	return backup.Finish()
}

func stageImage(image []byte) (string, error) {
	f, err := os.CreateTemp("", "vault-tracker-*.db")
	if err != nil {
		return "", fmt.Errorf("failed to stage image: %w", err)
	}
	if _, err := f.Write(image); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to stage image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to stage image: %w", err)
	}
	return f.Name(), nil
}

// imagePageSize reads the page size from the database header, or 0 when
// the header is not a SQLite header.
func imagePageSize(image []byte) int {
	const magic = "SQLite format 3\x00"
	if len(image) < 100 || string(image[:len(magic)]) != magic {
		return 0
	}
	size := int(binary.BigEndian.Uint16(image[16:18]))
	if size == 1 {
		return 65536
	}
	if size < 512 || size&(size-1) != 0 {
		return 0
	}
	return size
}

// image serializes the whole database.
func (h *handle) image() ([]byte, error) {
	var data []byte
	err := h.conn.Raw(func(driverConn any) error {
		s, ok := driverConn.(serializer)
		if !ok {
			return fmt.Errorf("driver connection %T cannot serialize", driverConn)
		}
		var err error
		data, err = s.Serialize()
		return err
	})
	return data, err
}

func (h *handle) applySchema(ctx context.Context) error {
	if _, err := h.conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
