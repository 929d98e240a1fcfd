package lessons

import (
	"fmt"
	"sort"
)

// Section identifiers for the supported exam sections.
const (
	SectionFAR = "far"
	SectionAUD = "aud"
	SectionREG = "reg"
)

// AllSections returns the supported sections in display order.
func AllSections() []string {
	return []string{SectionFAR, SectionAUD, SectionREG}
}

// SectionDisplayName returns a human-readable name for a section.
func SectionDisplayName(section string) string {
	switch section {
	case SectionFAR:
		return "Financial Accounting & Reporting"
	case SectionAUD:
		return "Auditing & Attestation"
	case SectionREG:
		return "Regulation"
	default:
		return section
	}
}

// catalog holds the seeded lesson list with precomputed indices.
type catalog struct {
	lessons   []Lesson
	byID      map[string]*Lesson
	bySection map[string][]Lesson
}

var c *catalog

func init() {
	c = buildCatalog(seedLessons())
}

func buildCatalog(lessons []Lesson) *catalog {
	cat := &catalog{
		lessons:   lessons,
		byID:      make(map[string]*Lesson, len(lessons)),
		bySection: make(map[string][]Lesson),
	}
	for i := range cat.lessons {
		l := &cat.lessons[i]
		cat.byID[l.ID] = l
		cat.bySection[l.Section] = append(cat.bySection[l.Section], *l)
	}
	for section := range cat.bySection {
		list := cat.bySection[section]
		sort.Slice(list, func(i, j int) bool {
			return list[i].Order < list[j].Order
		})
		cat.bySection[section] = list
	}
	return cat
}

// AllLessons returns every lesson in the catalog.
func AllLessons() []Lesson {
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// BySection returns a section's lessons ascending by Order.
// Unknown sections yield an empty slice.
func BySection(section string) []Lesson {
	list := c.bySection[section]
	out := make([]Lesson, len(list))
	copy(out, list)
	return out
}

// GetLesson looks up a lesson by ID.
func GetLesson(id string) (Lesson, error) {
	if l, ok := c.byID[id]; ok {
		return *l, nil
	}
	return Lesson{}, fmt.Errorf("unknown lesson %q", id)
}
