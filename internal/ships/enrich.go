package ships

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/eve-anki/shipdeck/internal/sde"
)

// ErrUnknownRace is returned when a ship references a race that is not in chrRaces
var ErrUnknownRace = errors.New("unknown race")

// ReferenceData is the read side of an SDE snapshot used during enrichment
type ReferenceData interface {
	Races(ctx context.Context) (map[int64]string, error)
	MetaTypes(ctx context.Context) (map[int64]sde.MetaType, error)
	Ships(ctx context.Context) ([]sde.ShipRow, error)
	Attribute(ctx context.Context, typeID, attributeID int64) (float64, error)
	MarketGroups(ctx context.Context, typeID int64) (sde.MarketGroups, bool, error)
}

// Attributes holds the dogma attribute IDs read for every ship
type Attributes struct {
	MetaLevel int64
	TechLevel int64
}

// DefaultAttributes returns the attribute IDs used by the SDE
func DefaultAttributes() Attributes {
	return Attributes{
		MetaLevel: sde.AttributeMetaLevel,
		TechLevel: sde.AttributeTechLevel,
	}
}

// Enricher builds ship records from reference data
type Enricher struct {
	source     ReferenceData
	techLevels TechLevelNames
	attributes Attributes
}

// NewEnricher creates a new enricher
func NewEnricher(source ReferenceData, techLevels TechLevelNames, attributes Attributes) *Enricher {
	return &Enricher{
		source:     source,
		techLevels: techLevels,
		attributes: attributes,
	}
}

// Extract loads every published ship and resolves its derived fields.
// Records are built first and enriched in a second pass, so parent hulls can
// be looked up regardless of the order rows come back in.
func (e *Enricher) Extract(ctx context.Context) ([]ShipRecord, error) {
	races, err := e.source.Races(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load races: %w", err)
	}

	metaTypes, err := e.source.MetaTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load meta types: %w", err)
	}

	rows, err := e.source.Ships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ships: %w", err)
	}

	index, order, err := buildIndex(rows, races)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded ships", "count", len(order))

	records := make([]ShipRecord, 0, len(order))
	for _, typeID := range order {
		rec := index[typeID]
		if err := e.enrich(ctx, rec, index, metaTypes); err != nil {
			return nil, fmt.Errorf("failed to enrich %q (%d): %w", rec.Name, rec.TypeID, err)
		}
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].TypeID < records[j].TypeID
	})

	return records, nil
}

// buildIndex returns the records keyed by type ID along with the row order
func buildIndex(rows []sde.ShipRow, races map[int64]string) (map[int64]*ShipRecord, []int64, error) {
	index := make(map[int64]*ShipRecord, len(rows))
	order := make([]int64, 0, len(rows))
	for _, row := range rows {
		if _, dup := index[row.TypeID]; dup {
			return nil, nil, fmt.Errorf("duplicate ship type ID %d (%q)", row.TypeID, row.TypeName)
		}

		if !row.RaceID.Valid {
			return nil, nil, fmt.Errorf("ship %q (%d) has no race: %w", row.TypeName, row.TypeID, ErrUnknownRace)
		}
		race, ok := races[row.RaceID.Int64]
		if !ok {
			return nil, nil, fmt.Errorf("ship %q (%d) race %d: %w", row.TypeName, row.TypeID, row.RaceID.Int64, ErrUnknownRace)
		}

		index[row.TypeID] = &ShipRecord{
			Name:      row.TypeName,
			TypeID:    row.TypeID,
			ClassName: row.GroupName,
			RaceID:    row.RaceID.Int64,
			Race:      race,
		}
		order = append(order, row.TypeID)
	}
	return index, order, nil
}

func (e *Enricher) enrich(ctx context.Context, rec *ShipRecord, index map[int64]*ShipRecord, metaTypes map[int64]sde.MetaType) error {
	metaLevel, err := e.source.Attribute(ctx, rec.TypeID, e.attributes.MetaLevel)
	if err != nil {
		return fmt.Errorf("failed to read meta level: %w", err)
	}
	rec.MetaLevel = int(metaLevel)

	techLevel, err := e.source.Attribute(ctx, rec.TypeID, e.attributes.TechLevel)
	if err != nil {
		return fmt.Errorf("failed to read tech level: %w", err)
	}
	rec.TechLevel = int(techLevel)

	rec.MetaGroup = e.resolveMetaGroup(rec, index, metaTypes)

	groups, ok, err := e.source.MarketGroups(ctx, rec.TypeID)
	if err != nil {
		return err
	}
	if ok {
		rec.MarketGroup = groups.Group
		rec.ParentMarketGroup = groups.Parent
	}

	slog.Debug("Enriched ship",
		"name", rec.Name,
		"type_id", rec.TypeID,
		"meta_group", rec.MetaGroup,
		"hull", rec.BaseHull,
		"market_group", rec.MarketGroup)
	return nil
}

// resolveMetaGroup also sets BaseHull when the ship derives from a hull in the index
func (e *Enricher) resolveMetaGroup(rec *ShipRecord, index map[int64]*ShipRecord, metaTypes map[int64]sde.MetaType) string {
	if mt, ok := metaTypes[rec.TypeID]; ok {
		if mt.ParentTypeID.Valid {
			if parent, ok := index[mt.ParentTypeID.Int64]; ok {
				rec.BaseHull = parent.Name
			}
		}
		if mt.MetaGroupName != "" {
			return mt.MetaGroupName
		}
	}

	// Hulls that are not variants of another type have no meta type entry.
	// The tech level alone cannot tell faction ships apart, so it is only a fallback.
	if name, ok := e.techLevels.Lookup(rec.TechLevel); ok {
		return name
	}

	return MetaGroupUnknown
}
