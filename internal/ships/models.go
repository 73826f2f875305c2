package ships

// Meta group names the pipeline reasons about directly
const (
	MetaGroupFaction = "Faction"
	MetaGroupUnknown = "UNKNOWN"
)

// ShipRecord represents a single published ship from the SDE snapshot
type ShipRecord struct {
	// Core identifiers
	Name   string // Display name, unique (invTypes.typeName)
	TypeID int64  // Primary key, also the render filename stem

	ClassName string // Hull class (invGroups.groupName)
	RaceID    int64
	Race      string

	MetaLevel int
	TechLevel int
	MetaGroup string // Never empty after enrichment

	// Optional links; empty when absent
	BaseHull          string // Name of the parent type this ship is a variant of
	MarketGroup       string
	ParentMarketGroup string
}

// HasBaseHull reports whether a parent type was resolved for the ship
func (r *ShipRecord) HasBaseHull() bool {
	return r.BaseHull != ""
}

// TechLevelNames maps numeric tech levels to their meta group names.
// The zero value knows no levels.
type TechLevelNames struct {
	names map[int]string
}

// NewTechLevelNames copies the given mapping into an immutable lookup
func NewTechLevelNames(names map[int]string) TechLevelNames {
	m := make(map[int]string, len(names))
	for level, name := range names {
		m[level] = name
	}
	return TechLevelNames{names: m}
}

// DefaultTechLevelNames returns the Tech I/II/III mapping used by the SDE
func DefaultTechLevelNames() TechLevelNames {
	return NewTechLevelNames(map[int]string{
		1: "Tech I",
		2: "Tech II",
		3: "Tech III",
	})
}

// Lookup returns the meta group name for a tech level
func (t TechLevelNames) Lookup(level int) (string, bool) {
	name, ok := t.names[level]
	return name, ok
}
