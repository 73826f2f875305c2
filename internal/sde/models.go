package sde

import "database/sql"

// Dogma attribute IDs read for every published ship
const (
	AttributeMetaLevel int64 = 633
	AttributeTechLevel int64 = 422
)

// CategoryShip is the invCategories ID for ships
const CategoryShip = 6

// ShipRow is a published ship type as stored in invTypes/invGroups
type ShipRow struct {
	TypeName  string
	TypeID    int64
	GroupName string
	RaceID    sql.NullInt64
}

// MetaType links a type to the hull it is derived from
type MetaType struct {
	ParentTypeID  sql.NullInt64
	MetaGroupName string
}

// MarketGroups holds the market group of a type and that group's parent
type MarketGroups struct {
	Group  string
	Parent string
}
