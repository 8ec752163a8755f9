package impl

import (
	"context"

	"github.com/google/uuid"
	"github.com/sidereusnuntius/rogold/internal/db"
	"github.com/sidereusnuntius/rogold/internal/domain"
)

func (d *dbImpl) SaveGame(ctx context.Context, game domain.Game) (string, error) {
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	now := d.now().UTC()

	_, err := d.db.ExecContext(ctx, `
		INSERT INTO games (id, title, data, thumbnail, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			data = excluded.data,
			thumbnail = excluded.thumbnail,
			updated_at = excluded.updated_at`,
		game.ID, game.Title, string(game.Data), game.Thumbnail, now, now)
	if err != nil {
		return "", d.HandleError(err)
	}
	return game.ID, nil
}

func (d *dbImpl) GetGame(ctx context.Context, id string) (game domain.Game, err error) {
	var data string
	row := d.db.QueryRowContext(ctx, `
		SELECT id, title, data, thumbnail, created_at, updated_at
		FROM games WHERE id = ?`, id)
	err = row.Scan(&game.ID, &game.Title, &data, &game.Thumbnail, &game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		return domain.Game{}, d.HandleError(err)
	}

	game.Data = []byte(data)
	return
}

func (d *dbImpl) GetAllGames(ctx context.Context) ([]domain.GamePreview, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, title, thumbnail, created_at
		FROM games ORDER BY updated_at DESC`)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	previews := []domain.GamePreview{}
	for rows.Next() {
		var p domain.GamePreview
		if err = rows.Scan(&p.ID, &p.Title, &p.Thumbnail, &p.CreatedAt); err != nil {
			return nil, d.HandleError(err)
		}
		previews = append(previews, p)
	}
	return previews, d.HandleError(rows.Err())
}

func (d *dbImpl) DeleteGame(ctx context.Context, id string) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return d.HandleError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return db.ErrNotFound
	}
	return nil
}
