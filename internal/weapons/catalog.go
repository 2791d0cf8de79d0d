// Package weapons holds the static weapon catalog: which weapons exist, which
// faction and class they belong to, and the handful of accepted aliases.
// The catalog is immutable at runtime and not user-owned.
package weapons

import (
	"errors"
	"strings"
)

// ErrUnknownWeapon is returned when a name resolves to nothing in the catalog.
var ErrUnknownWeapon = errors.New("unknown weapon")

// Faction identifies which side fields a weapon.
type Faction string

const (
	FactionSecurity  Faction = "security"
	FactionInsurgent Faction = "insurgent"
)

// Weapon is one catalog entry.
type Weapon struct {
	Name    string  `json:"name"`
	Faction Faction `json:"faction"`
	Class   string  `json:"class"`
}

type classEntry struct {
	class string
	names []string
}

var securityClasses = []classEntry{
	{"smg", []string{"grease gun", "mp5a5", "mp7", "vector"}},
	{"carbine", []string{"g36k", "mk18", "m4a1", "honey badger"}},
	{"rifle", []string{"m16a4", "l85a2", "vhs-2", "galil sar", "aug a3", "qts-11", "wcx", "f2000 tactical"}},
	{"battle rifle", []string{"mk17", "g3a3", "mk14", "tavor 7", "mdr"}},
	{"machine gun", []string{"m249", "m60e4", "m240b", "mg-338"}},
	{"shotgun", []string{"m870", "ksg"}},
	{"sniper", []string{"m24", "tac-338", "m110 sass"}},
	{"anti-materiel", []string{"m82a1 cq"}},
	{"handgun", []string{"tariq", "l106a1", "m45", "pf940", "mr 73"}},
	{"melee", []string{"baton", "combat knife", "tactical axe"}},
}

var insurgentClasses = []classEntry{
	{"smg", []string{"sterling", "mp5a2", "uzi", "p90"}},
	{"carbine", []string{"sks", "aks-74u", "sg 552", "as val"}},
	{"rifle", []string{"m16a2", "akm", "ak-74", "alpha ak", "qbz-03", "galil", "famas f1", "qbz-97", "ar7090", "f2000"}},
	{"battle rifle", []string{"fal", "ace 52", "m1 garand"}},
	{"machine gun", []string{"rpk", "pkm", "mg3", "hk-21"}},
	{"shotgun", []string{"ks-23", "toz-194"}},
	{"sniper", []string{"mosin-nagant", "l96a1", "svd"}},
	{"anti-materiel", []string{"m99"}},
	{"handgun", []string{"welrod", "makarov", "browning hp", "m1911", "m9", "desert eagle"}},
	{"melee", []string{"kukri", "shiv", "handjar"}},
}

// aliases maps common shorthand to catalog names. Deliberately small;
// expanding it is a product decision, not a code one.
var aliases = map[string]string{
	"m4": "m4a1",
	"ak": "akm",
}

var (
	all   []Weapon
	index map[string]Weapon
	names []string
)

func init() {
	index = make(map[string]Weapon)
	add := func(faction Faction, classes []classEntry) {
		for _, entry := range classes {
			for _, name := range entry.names {
				w := Weapon{Name: name, Faction: faction, Class: entry.class}
				all = append(all, w)
				index[name] = w
				names = append(names, name)
			}
		}
	}
	add(FactionSecurity, securityClasses)
	add(FactionInsurgent, insurgentClasses)
}

// All returns every catalog entry in a stable order.
func All() []Weapon {
	out := make([]Weapon, len(all))
	copy(out, all)
	return out
}

// Names returns every weapon name in a stable order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Normalize lowercases and trims a user-supplied name, resolves aliases, and
// returns the canonical catalog name. Returns ErrUnknownWeapon for anything
// outside the catalog.
func Normalize(name string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", ErrUnknownWeapon
	}
	if canonical, ok := aliases[lower]; ok {
		lower = canonical
	}
	if _, ok := index[lower]; !ok {
		return "", ErrUnknownWeapon
	}
	return lower, nil
}

// Lookup returns the catalog entry for a (possibly aliased) name.
func Lookup(name string) (Weapon, error) {
	canonical, err := Normalize(name)
	if err != nil {
		return Weapon{}, err
	}
	return index[canonical], nil
}

// Suggest returns up to limit weapon names containing the query substring,
// for autocomplete-style callers.
func Suggest(query string, limit int) []string {
	lower := strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, name := range names {
		if strings.Contains(name, lower) {
			out = append(out, name)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Random picks a uniformly random weapon name from the catalog.
func Random(src interface{ Intn(n int) int }) string {
	return names[src.Intn(len(names))]
}
