package catalog

import (
	"errors"
	"strconv"

	"github.com/eve-anki/shipdeck/internal/ships"
)

// Catalog column names. Readers look columns up by name, not position.
const (
	ColShip        = "Ship"
	ColShipClass   = "Ship Class"
	ColMetaGroup   = "Meta Group"
	ColTechLevel   = "Tech Level"
	ColMetaLevel   = "Meta Level"
	ColHull        = "Hull"
	ColRace        = "Race"
	ColMarketGroup = "Market Group"
	ColTypeID      = "Type ID"
	ColIgnore      = "Ignore"
)

// Columns is the header of the catalog file, in order
var Columns = []string{
	ColShip,
	ColShipClass,
	ColMetaGroup,
	ColTechLevel,
	ColMetaLevel,
	ColHull,
	ColRace,
	ColMarketGroup,
	ColTypeID,
	ColIgnore,
}

// Values of the Ignore column
const (
	IgnoreTrue  = "TRUE"
	IgnoreFalse = "FALSE"
)

// ErrMalformedRow is returned when a catalog is missing a column or a row has
// the wrong number of fields
var ErrMalformedRow = errors.New("malformed catalog row")

// Row is one catalog line. Every field holds its serialized text, so rows read
// back from disk compare equal to the rows that were written.
type Row struct {
	Ship        string `parquet:"ship"`
	ShipClass   string `parquet:"ship_class"`
	MetaGroup   string `parquet:"meta_group"`
	TechLevel   string `parquet:"tech_level"`
	MetaLevel   string `parquet:"meta_level"`
	Hull        string `parquet:"hull"`
	Race        string `parquet:"race"`
	MarketGroup string `parquet:"market_group"`
	TypeID      string `parquet:"type_id"`
	Ignore      string `parquet:"ignore"`
}

// NewRow serializes a ship record with its ignore flag
func NewRow(rec ships.ShipRecord, ignore bool) Row {
	flag := IgnoreFalse
	if ignore {
		flag = IgnoreTrue
	}
	return Row{
		Ship:        rec.Name,
		ShipClass:   rec.ClassName,
		MetaGroup:   rec.MetaGroup,
		TechLevel:   strconv.Itoa(rec.TechLevel),
		MetaLevel:   strconv.Itoa(rec.MetaLevel),
		Hull:        rec.BaseHull,
		Race:        rec.Race,
		MarketGroup: rec.MarketGroup,
		TypeID:      strconv.FormatInt(rec.TypeID, 10),
		Ignore:      flag,
	}
}

// Values returns the row fields in Columns order
func (r Row) Values() []string {
	return []string{
		r.Ship,
		r.ShipClass,
		r.MetaGroup,
		r.TechLevel,
		r.MetaLevel,
		r.Hull,
		r.Race,
		r.MarketGroup,
		r.TypeID,
		r.Ignore,
	}
}

// rowFromFields builds a row from fields keyed by column index
func rowFromFields(fields []string, index map[string]int) Row {
	get := func(col string) string {
		return fields[index[col]]
	}
	return Row{
		Ship:        get(ColShip),
		ShipClass:   get(ColShipClass),
		MetaGroup:   get(ColMetaGroup),
		TechLevel:   get(ColTechLevel),
		MetaLevel:   get(ColMetaLevel),
		Hull:        get(ColHull),
		Race:        get(ColRace),
		MarketGroup: get(ColMarketGroup),
		TypeID:      get(ColTypeID),
		Ignore:      get(ColIgnore),
	}
}
