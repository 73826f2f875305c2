package testsupport

import (
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	_ "modernc.org/sqlite"
)

// Type IDs present in the snapshot built by NewSnapshot
const (
	TypeRifter         int64 = 587
	TypeCaldariShuttle int64 = 672
	TypeWolf           int64 = 11371
	TypeFiretail       int64 = 17812
	TypeGoruShuttle    int64 = 33513
	TypeFiretailSkin   int64 = 33673
	TypeMysteryHull    int64 = 99999
	TypeUnpublished    int64 = 12345
	TypeTritanium      int64 = 34
)

// PublishedShips lists the ship type IDs the snapshot exposes to the extractor
var PublishedShips = []int64{
	TypeRifter,
	TypeCaldariShuttle,
	TypeWolf,
	TypeFiretail,
	TypeGoruShuttle,
	TypeFiretailSkin,
	TypeMysteryHull,
}

var snapshotSchema = []string{
	`CREATE TABLE chrRaces (raceID INTEGER PRIMARY KEY, raceName TEXT NOT NULL)`,
	`CREATE TABLE invMetaGroups (metaGroupID INTEGER PRIMARY KEY, metaGroupName TEXT NOT NULL)`,
	`CREATE TABLE invMetaTypes (typeID INTEGER PRIMARY KEY, parentTypeID INTEGER, metaGroupID INTEGER)`,
	`CREATE TABLE invGroups (groupID INTEGER PRIMARY KEY, categoryID INTEGER, groupName TEXT)`,
	`CREATE TABLE invMarketGroups (marketGroupID INTEGER PRIMARY KEY, parentGroupID INTEGER, marketGroupName TEXT)`,
	`CREATE TABLE invTypes (
		typeID INTEGER PRIMARY KEY,
		groupID INTEGER,
		typeName TEXT,
		raceID INTEGER,
		published INTEGER,
		marketGroupID INTEGER
	)`,
	`CREATE TABLE dgmTypeAttributes (
		typeID INTEGER NOT NULL,
		attributeID INTEGER NOT NULL,
		valueInt INTEGER,
		valueFloat REAL,
		PRIMARY KEY (typeID, attributeID)
	)`,
}

var snapshotData = []string{
	`INSERT INTO chrRaces VALUES (1, 'Caldari'), (2, 'Minmatar'), (8, 'Gallente')`,
	`INSERT INTO invMetaGroups VALUES (1, 'Tech I'), (2, 'Tech II'), (4, 'Faction')`,
	`INSERT INTO invMetaTypes VALUES (11371, 587, 2), (17812, 587, 4), (33673, 17812, 4)`,
	`INSERT INTO invGroups VALUES (25, 6, 'Frigate'), (31, 6, 'Shuttle'), (324, 6, 'Assault Frigate'), (18, 4, 'Mineral')`,
	`INSERT INTO invMarketGroups VALUES
		(61, NULL, 'Frigates'),
		(64, 61, 'Standard Frigates'),
		(432, 61, 'Assault Frigates'),
		(1362, 64, 'Minmatar'),
		(400, 432, 'Minmatar')`,
	`INSERT INTO invTypes VALUES
		(587, 25, 'Rifter', 2, 1, 1362),
		(672, 31, 'Caldari Shuttle', 1, 1, 61),
		(11371, 324, 'Wolf', 2, 1, 400),
		(17812, 25, 'Republic Fleet Firetail', 2, 1, NULL),
		(33513, 31, 'Goru''s Shuttle', 1, 1, NULL),
		(33673, 25, 'Firetail Tribal Skin', 2, 1, NULL),
		(99999, 25, '? Mystery Hull', 8, 1, NULL),
		(12345, 25, 'Unpublished Hull', 2, 0, NULL),
		(34, 18, 'Tritanium', NULL, 1, NULL)`,
	// 633 = meta level, 422 = tech level; values are split across both columns
	`INSERT INTO dgmTypeAttributes VALUES
		(587, 633, 0, NULL), (587, 422, 1, NULL),
		(672, 633, NULL, 0.0), (672, 422, NULL, 1.0),
		(11371, 633, NULL, 5.0), (11371, 422, NULL, 2.0),
		(17812, 633, NULL, 4.0), (17812, 422, 1, NULL),
		(33513, 633, 0, NULL), (33513, 422, 1, NULL),
		(33673, 633, NULL, 0.0), (33673, 422, NULL, 1.0),
		(99999, 633, 0, NULL), (99999, 422, 7, NULL)`,
}

// ExpectedCatalog is the catalog written for the snapshot built by NewSnapshot
const ExpectedCatalog = `Ship,Ship Class,Meta Group,Tech Level,Meta Level,Hull,Race,Market Group,Type ID,Ignore
? Mystery Hull,Frigate,UNKNOWN,7,0,,Gallente,,99999,TRUE
Caldari Shuttle,Shuttle,Tech I,1,0,,Caldari,,672,FALSE
Firetail Tribal Skin,Frigate,Faction,1,0,Republic Fleet Firetail,Minmatar,,33673,TRUE
Goru's Shuttle,Shuttle,Tech I,1,0,,Caldari,,33513,TRUE
Republic Fleet Firetail,Frigate,Faction,1,4,Rifter,Minmatar,,17812,FALSE
Rifter,Frigate,Tech I,1,0,,Minmatar,Minmatar,587,FALSE
Wolf,Assault Frigate,Tech II,2,5,Rifter,Minmatar,Minmatar,11371,FALSE
`

// NewSnapshot writes a small SDE snapshot into a temp directory and returns
// its path. Extra statements run after the fixture data is loaded.
func NewSnapshot(t testing.TB, extra ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "eve.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer db.Close()

	stmts := append(append(append([]string{}, snapshotSchema...), snapshotData...), extra...)
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return path
}

// WriteRenders creates a placeholder <id>.png for each type ID in dir
func WriteRenders(t testing.TB, dir string, typeIDs ...int64) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, id := range typeIDs {
		name := strconv.FormatInt(id, 10) + ".png"
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png:"+name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
