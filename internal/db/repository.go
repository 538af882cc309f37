package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/turnbattle/internal/model"
)

// PostgresBattleRepository хранит завершённые бои в PostgreSQL.
// Полная запись лежит в payload (JSONB), остальные колонки нужны для истории.
type PostgresBattleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBattleRepository создаёт новый PostgreSQL repository.
func NewPostgresBattleRepository(pool *pgxpool.Pool) *PostgresBattleRepository {
	return &PostgresBattleRepository{pool: pool}
}

// Save inserts a finished battle. Saving the same id twice is a no-op:
// records are immutable once produced.
func (r *PostgresBattleRepository) Save(ctx context.Context, rec *model.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding battle %s: %w", rec.BattleID, err)
	}
	result, err := rec.Result.MarshalText()
	if err != nil {
		return fmt.Errorf("encoding result of battle %s: %w", rec.BattleID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO battles (id, player_id, result, timed_out, total_rounds, seed, checksum, started_at, ended_at, payload)
		 VALUES ($1::text::uuid, $2, $3, $4, $5, $6::text::numeric, $7, $8, $9, $10)
		 ON CONFLICT (id) DO NOTHING`,
		rec.BattleID, rec.PlayerID, string(result), rec.TimedOut, rec.Statistics.TotalRounds,
		strconv.FormatUint(rec.Seed, 10), rec.Checksum, rec.StartedAt, rec.EndedAt, payload,
	)
	if err != nil {
		return fmt.Errorf("saving battle %s: %w", rec.BattleID, err)
	}
	return nil
}

// Get возвращает полную запись боя.
// Возвращает nil, nil если бой не найден.
func (r *PostgresBattleRepository) Get(ctx context.Context, battleID string) (*model.Record, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM battles WHERE id = $1::text::uuid`, battleID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying battle %s: %w", battleID, err)
	}

	var rec model.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decoding battle %s: %w", battleID, err)
	}
	return &rec, nil
}

// ListByPlayer returns one page of the player's battles, newest first,
// and the player's total battle count.
func (r *PostgresBattleRepository) ListByPlayer(ctx context.Context, playerID int64, limit, offset int) ([]model.Summary, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM battles WHERE player_id = $1`, playerID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting battles of player %d: %w", playerID, err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id::text, player_id, result, total_rounds, seed::text, checksum, started_at, ended_at
		 FROM battles WHERE player_id = $1
		 ORDER BY started_at DESC, id
		 LIMIT $2 OFFSET $3`,
		playerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query battles of player %d: %w", playerID, err)
	}
	defer rows.Close()

	var out []model.Summary
	for rows.Next() {
		var (
			s      model.Summary
			result string
			seed   string
		)
		if err := rows.Scan(&s.BattleID, &s.PlayerID, &result, &s.TotalRounds, &seed, &s.Checksum, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, 0, fmt.Errorf("scan battles: %w", err)
		}
		if err := s.Result.UnmarshalText([]byte(result)); err != nil {
			return nil, 0, fmt.Errorf("scan battles: %w", err)
		}
		if s.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, 0, fmt.Errorf("scan battle seed %q: %w", seed, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating battles: %w", err)
	}
	return out, total, nil
}
