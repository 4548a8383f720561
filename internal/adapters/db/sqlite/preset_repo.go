package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/ports"
)

type PresetRepo struct{ *Repo }

func NewPresetRepo(db *sql.DB) *PresetRepo { return &PresetRepo{NewRepo(db)} }

func (r *PresetRepo) Save(ctx context.Context, name string, f domain.ListingFilter) (*ports.FilterPreset, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Insert("filter_presets").Columns("name", "filter_json", "created_at").
		Values(name, string(raw), now).
		Suffix("ON CONFLICT(name) DO UPDATE SET filter_json = excluded.filter_json")
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	id, _ := res.LastInsertId()
	return &ports.FilterPreset{ID: id, Name: name, Filter: f, CreatedAt: now}, nil
}

func (r *PresetRepo) List(ctx context.Context) ([]*ports.FilterPreset, error) {
	q := r.SQ.Select("id", "name", "filter_json", "created_at").From("filter_presets").OrderBy("name")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*ports.FilterPreset
	for rows.Next() {
		var p ports.FilterPreset
		var raw string
		if err := rows.Scan(&p.ID, &p.Name, &raw, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &p.Filter); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PresetRepo) Delete(ctx context.Context, id int64) error {
	q := r.SQ.Delete("filter_presets").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}
