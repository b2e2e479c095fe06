package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/jinzhu/gorm"

	"github.com/Ali-ahsan35/vacation-rental-A7/models"
)

// MinQueryLength is the shortest autocomplete fragment that runs a search.
const MinQueryLength = 2

// autocompleteCache keeps recent autocomplete results for a short window so
// repeated keystrokes don't hit the database. Location writes flush it.
var autocompleteCache = ttlcache.New(
	ttlcache.WithTTL[string, []models.Location](30 * time.Second),
)

// AutocompleteLocations returns at most limit locations whose name, city or
// state contains the fragment, case-insensitive. Fragments shorter than two
// characters return an empty result without touching the database. Results
// are ordered name matches first, then city, then state, alphabetically
// within each group.
func AutocompleteLocations(db *gorm.DB, query string, limit int) ([]models.Location, error) {
	fragment := strings.ToLower(strings.TrimSpace(query))
	if len(fragment) < MinQueryLength {
		return []models.Location{}, nil
	}

	cacheKey := fmt.Sprintf("%s|%d", fragment, limit)
	if item := autocompleteCache.Get(cacheKey); item != nil {
		return item.Value(), nil
	}

	pattern := "%" + fragment + "%"
	var locations []models.Location
	if err := db.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ?",
		pattern, pattern, pattern).Find(&locations).Error; err != nil {
		return nil, err
	}

	sort.SliceStable(locations, func(i, j int) bool {
		ri, rj := matchRank(locations[i], fragment), matchRank(locations[j], fragment)
		if ri != rj {
			return ri < rj
		}
		return locations[i].Name < locations[j].Name
	})
	if len(locations) > limit {
		locations = locations[:limit]
	}

	autocompleteCache.Set(cacheKey, locations, ttlcache.DefaultTTL)
	return locations, nil
}

// matchRank orders matches by the field that matched: name, then city, then
// state.
func matchRank(loc models.Location, fragment string) int {
	switch {
	case strings.Contains(strings.ToLower(loc.Name), fragment):
		return 0
	case strings.Contains(strings.ToLower(loc.City), fragment):
		return 1
	default:
		return 2
	}
}

// FlushAutocompleteCache drops cached autocomplete results. Called whenever a
// location is created, updated or deleted.
func FlushAutocompleteCache() {
	autocompleteCache.DeleteAll()
}
