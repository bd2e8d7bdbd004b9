// Package bootstrap assembles the initial RestaurantState the engine is
// hydrated with.  It is the external loader of the engine's bootstrap
// interface: it builds a complete state payload (from MySQL when configured,
// from the built-in demo seed otherwise) and hands it over via a single
// hydrate action.  The engine never fetches anything itself.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

// LoadState reads the seed tables and builds a full state payload.  Missing
// optional tables are tolerated; the floor plan defaults when the seed
// carries none.  Sequence counters are advanced past the highest seeded
// identifiers so freshly minted ids never collide.
func LoadState(ctx context.Context, db *sql.DB) (model.RestaurantState, error) {
	state := engine.InitialState()

	inventory, err := loadInventory(ctx, db)
	if err != nil {
		return model.RestaurantState{}, fmt.Errorf("load inventory: %w", err)
	}
	state.Inventory = inventory

	tables, err := loadTables(ctx, db)
	if err != nil {
		return model.RestaurantState{}, fmt.Errorf("load tables: %w", err)
	}
	if len(tables) > 0 {
		state.Tables = tables
	}

	reservations, err := loadReservations(ctx, db)
	if err != nil {
		return model.RestaurantState{}, fmt.Errorf("load reservations: %w", err)
	}
	state.Reservations = reservations

	clients, err := loadClients(ctx, db)
	if err != nil {
		return model.RestaurantState{}, fmt.Errorf("load clients: %w", err)
	}
	state.Clients = clients

	state.Counters.Reservation = maxSeq(reservationIDs(reservations), "rsv-")
	state.Counters.Client = maxSeq(clientIDs(clients), "cli-")
	return state, nil
}

func loadInventory(ctx context.Context, db *sql.DB) ([]model.MenuItem, error) {
	const q = `SELECT id, name, category, price, stock, unit, item_type, COALESCE(img, '')
	           FROM menu_items ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MenuItem
	for rows.Next() {
		var it model.MenuItem
		var typ string
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Stock, &it.Unit, &typ, &it.Img); err != nil {
			return nil, err
		}
		it.Type = model.ItemType(typ)
		if it.Stock < 0 {
			it.Stock = 0
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func loadTables(ctx context.Context, db *sql.DB) ([]model.TableInfo, error) {
	const q = `SELECT id, status, guests FROM restaurant_tables ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TableInfo
	for rows.Next() {
		var t model.TableInfo
		var status string
		if err := rows.Scan(&t.ID, &status, &t.Guests); err != nil {
			return nil, err
		}
		t.Status = model.TableStatus(status)
		out = append(out, t)
	}
	return out, rows.Err()
}

func loadReservations(ctx context.Context, db *sql.DB) ([]model.Reservation, error) {
	const q = `SELECT id, name, res_time, guests, table_id, res_type, status
	           FROM reservations ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		var r model.Reservation
		var status string
		if err := rows.Scan(&r.ID, &r.Name, &r.Time, &r.Guests, &r.Table, &r.Type, &status); err != nil {
			return nil, err
		}
		r.Status = model.ReservationStatus(status)
		out = append(out, r)
	}
	return out, rows.Err()
}

func loadClients(ctx context.Context, db *sql.DB) ([]model.Client, error) {
	const q = `SELECT id, name, tier, visits, spend, COALESCE(preferences, '')
	           FROM clients ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Tier, &c.Visits, &c.Spend, &c.Preferences); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func reservationIDs(rs []model.Reservation) []string {
	ids := make([]string, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}

func clientIDs(cs []model.Client) []string {
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}
	return ids
}

// maxSeq extracts the highest numeric suffix among prefixed tokens so the
// engine's counters continue after the seeded ids.
func maxSeq(ids []string, prefix string) int {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err == nil && n > max {
			max = n
		}
	}
	return max
}
