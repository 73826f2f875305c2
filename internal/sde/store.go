package sde

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"
)

// ErrMissingAttribute is returned when a type has no value for a dogma attribute
var ErrMissingAttribute = errors.New("missing attribute")

// Store reads reference data from an SDE SQLite snapshot
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the snapshot at path read-only. Callers must Close the store.
func Open(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat SDE snapshot: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open SDE snapshot: %w", err)
	}
	// The pragma below is per connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open SDE snapshot read-only: %w", err)
	}

	slog.Debug("Opened SDE snapshot", "path", path)
	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the snapshot location
func (s *Store) Path() string {
	return s.path
}

// Races returns race display names keyed by race ID
func (s *Store) Races(ctx context.Context) (map[int64]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT raceID, raceName FROM chrRaces`)
	if err != nil {
		return nil, fmt.Errorf("failed to query races: %w", err)
	}
	defer rows.Close()

	races := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan race: %w", err)
		}
		races[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read races: %w", err)
	}

	slog.Debug("Loaded races", "count", len(races))
	return races, nil
}

// MetaTypes returns parent links and meta group names keyed by type ID
func (s *Store) MetaTypes(ctx context.Context) (map[int64]MetaType, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT invMetaTypes.typeID, invMetaTypes.parentTypeID, invMetaGroups.metaGroupName
		FROM invMetaTypes
		JOIN invMetaGroups ON invMetaTypes.metaGroupID = invMetaGroups.metaGroupID
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query meta types: %w", err)
	}
	defer rows.Close()

	metaTypes := make(map[int64]MetaType)
	for rows.Next() {
		var typeID int64
		var mt MetaType
		if err := rows.Scan(&typeID, &mt.ParentTypeID, &mt.MetaGroupName); err != nil {
			return nil, fmt.Errorf("failed to scan meta type: %w", err)
		}
		metaTypes[typeID] = mt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meta types: %w", err)
	}

	slog.Debug("Loaded meta types", "count", len(metaTypes))
	return metaTypes, nil
}

// Ships returns every published type in the ship category, ordered by type ID
func (s *Store) Ships(ctx context.Context) ([]ShipRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT invTypes.typeName, invTypes.typeID, invGroups.groupName, invTypes.raceID
		FROM invGroups
		JOIN invTypes ON invGroups.groupID = invTypes.groupID
		WHERE invGroups.categoryID = ?
		AND invTypes.published = 1
		ORDER BY invTypes.typeID
	`, CategoryShip)
	if err != nil {
		return nil, fmt.Errorf("failed to query ships: %w", err)
	}
	defer rows.Close()

	var ships []ShipRow
	for rows.Next() {
		var row ShipRow
		if err := rows.Scan(&row.TypeName, &row.TypeID, &row.GroupName, &row.RaceID); err != nil {
			return nil, fmt.Errorf("failed to scan ship: %w", err)
		}
		ships = append(ships, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ships: %w", err)
	}

	slog.Debug("Loaded ships", "count", len(ships))
	return ships, nil
}

// Attribute returns the value of a dogma attribute for a type. A missing row
// or a row without any value yields ErrMissingAttribute.
func (s *Store) Attribute(ctx context.Context, typeID, attributeID int64) (float64, error) {
	var value sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(valueFloat, valueInt) FROM dgmTypeAttributes WHERE typeID = ? AND attributeID = ?`,
		typeID, attributeID,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !value.Valid) {
		return 0, fmt.Errorf("type %d, attribute %d: %w", typeID, attributeID, ErrMissingAttribute)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query attribute %d of type %d: %w", attributeID, typeID, err)
	}
	return value.Float64, nil
}

// MarketGroups returns the market group and parent market group of a type.
// ok is false when the type is not sold on the market.
func (s *Store) MarketGroups(ctx context.Context, typeID int64) (MarketGroups, bool, error) {
	var groups MarketGroups
	err := s.db.QueryRowContext(ctx, `
		SELECT g1.marketGroupName, g2.marketGroupName
		FROM invTypes
		JOIN invMarketGroups AS g1 ON invTypes.marketGroupID = g1.marketGroupID
		JOIN invMarketGroups AS g2 ON g1.parentGroupID = g2.marketGroupID
		WHERE invTypes.typeID = ?
	`, typeID).Scan(&groups.Group, &groups.Parent)
	if errors.Is(err, sql.ErrNoRows) {
		return MarketGroups{}, false, nil
	}
	if err != nil {
		return MarketGroups{}, false, fmt.Errorf("failed to query market groups of type %d: %w", typeID, err)
	}
	return groups, true, nil
}
