package impl

import (
	"context"
	"encoding/json"

	"github.com/sidereusnuntius/rogold/internal/db"
)

func (d *dbImpl) SaveMap(ctx context.Context, name string, data json.RawMessage) error {
	now := d.now().UTC()
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO maps (name, data, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		name, string(data), now, now)
	return d.HandleError(err)
}

func (d *dbImpl) GetMap(ctx context.Context, name string) (json.RawMessage, error) {
	var data string
	row := d.db.QueryRowContext(ctx, `SELECT data FROM maps WHERE name = ?`, name)
	if err := row.Scan(&data); err != nil {
		return nil, d.HandleError(err)
	}
	return json.RawMessage(data), nil
}

func (d *dbImpl) GetAllMaps(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT name FROM maps ORDER BY updated_at DESC`)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, d.HandleError(err)
		}
		names = append(names, name)
	}
	return names, d.HandleError(rows.Err())
}

func (d *dbImpl) DeleteMap(ctx context.Context, name string) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM maps WHERE name = ?`, name)
	if err != nil {
		return d.HandleError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return db.ErrNotFound
	}
	return nil
}
