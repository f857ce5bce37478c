package catalog

import (
	"slices"

	"github.com/2beens/liftload/internal/workout"
)

// Entry is the static catalog metadata of an exercise.
type Entry struct {
	ID            string                     `json:"id" yaml:"id"`
	Name          string                     `json:"name" yaml:"name"`
	Calculated1RM *float64                   `json:"calculated1RM,omitempty" yaml:"calculated1RM,omitempty"`
	Brands        []workout.BrandEquivalency `json:"brands,omitempty" yaml:"brands,omitempty"`
}

// BrandRatio returns the equivalency ratio of the brand, if the brand is known
// and carries one.
func (e *Entry) BrandRatio(brand string) (float64, bool) {
	if e == nil {
		return 0, false
	}
	b, ok := workout.FindBrand(e.Brands, brand)
	if !ok || b.Ratio == nil || *b.Ratio <= 0 {
		return 0, false
	}
	return *b.Ratio, true
}

// BestRecordedPR returns the best recorded PR stored for the brand.
func (e *Entry) BestRecordedPR(brand string) (float64, bool) {
	if e == nil {
		return 0, false
	}
	b, ok := workout.FindBrand(e.Brands, brand)
	if !ok || b.BestRecordedPR == nil {
		return 0, false
	}
	return *b.BestRecordedPR, true
}

// Catalog is a read-only exercise lookup, indexed by id and by folded name.
type Catalog struct {
	entries []*Entry
	byID    map[string]*Entry
	byName  map[string]*Entry
}

func New(entries []Entry) *Catalog {
	entries = slices.Clone(entries)
	c := &Catalog{
		entries: make([]*Entry, 0, len(entries)),
		byID:    make(map[string]*Entry, len(entries)),
		byName:  make(map[string]*Entry, len(entries)),
	}
	for i := range entries {
		entry := &entries[i]
		c.entries = append(c.entries, entry)
		if entry.ID != "" {
			if _, ok := c.byID[entry.ID]; !ok {
				c.byID[entry.ID] = entry
			}
		}
		// first registration of a name wins
		if key := workout.NameKey(entry.Name); key != "" {
			if _, ok := c.byName[key]; !ok {
				c.byName[key] = entry
			}
		}
	}
	return c
}

// Lookup resolves the exercise by catalog id first, then by case-insensitive name.
// The name fallback exists for custom exercises that have no catalog id; two
// distinct exercises sharing a name can be conflated by it.
func (c *Catalog) Lookup(ref workout.ExerciseRef) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	if ref.CatalogID != "" {
		if entry, ok := c.byID[ref.CatalogID]; ok {
			return entry, true
		}
	}
	entry, ok := c.byName[workout.NameKey(ref.Name)]
	return entry, ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
