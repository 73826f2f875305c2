package ships

import "strings"

const (
	editionSuffix    = "Edition"
	unreleasedPrefix = "?"
)

// DefaultSkinnedShips lists skinned ships the general rules cannot detect
var DefaultSkinnedShips = []string{
	"Police Pursuit Comet", // Federation Navy Comet
	"Goru's Shuttle",       // Caldari Shuttle
}

// DefaultNotSkinnedShips lists ships the general rules would wrongly flag
var DefaultNotSkinnedShips = []string{
	"Miasmos Quafe Ultra Edition",
}

// Rules classifies ship records that should be left out of the card deck.
// A skinned ship only differs from its unskinned sibling in looks, not in
// attributes.
type Rules struct {
	skinned    map[string]struct{}
	notSkinned map[string]struct{}
}

// NewRules builds classification rules from a skinned-ship denylist and an
// allow-list of names that must never be treated as skinned
func NewRules(skinned, notSkinned []string) Rules {
	return Rules{
		skinned:    toSet(skinned),
		notSkinned: toSet(notSkinned),
	}
}

// DefaultRules returns rules built from the default name lists
func DefaultRules() Rules {
	return NewRules(DefaultSkinnedShips, DefaultNotSkinnedShips)
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// IsSkinned reports whether the record is a cosmetic variant of another ship
func (r Rules) IsSkinned(rec ShipRecord) bool {
	// The allow-list wins over every other rule
	if _, ok := r.notSkinned[rec.Name]; ok {
		return false
	}

	// Regular faction ships have a meta level above zero
	if rec.MetaGroup == MetaGroupFaction && rec.MetaLevel == 0 {
		return true
	}

	if strings.HasSuffix(rec.Name, editionSuffix) {
		return true
	}

	_, ok := r.skinned[rec.Name]
	return ok
}

// IsUnreleased reports whether the record is a placeholder for a ship that
// is not in the game yet
func (r Rules) IsUnreleased(rec ShipRecord) bool {
	return strings.HasPrefix(rec.Name, unreleasedPrefix)
}

// Ignore reports whether the record should be flagged in the catalog
func (r Rules) Ignore(rec ShipRecord) bool {
	return r.IsUnreleased(rec) || r.IsSkinned(rec)
}
