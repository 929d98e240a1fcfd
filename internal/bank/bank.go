// Package bank exposes the practice question bank as an ID -> topic map.
// Question text lives with the content pipeline; the scheduler only needs
// identity and topic tags.
package bank

import (
	"fmt"

	"github.com/studymesh/cpaprep/internal/lessons"
)

// itemsPerTopic is how many bank items each lesson topic carries.
const itemsPerTopic = 8

var itemsBySection = buildItems()

// buildItems derives a deterministic item set from the lesson catalog:
// eight MCQ IDs per lesson topic, numbered in catalog order.
func buildItems() map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, section := range lessons.AllSections() {
		items := make(map[string]string)
		for _, l := range lessons.BySection(section) {
			for ti, topic := range l.Topics {
				for i := 1; i <= itemsPerTopic; i++ {
					id := fmt.Sprintf("%s-t%d-q%02d", l.ID, ti+1, i)
					items[id] = topic
				}
			}
		}
		out[section] = items
	}
	return out
}

// Items returns the itemID -> topic map for a section. The returned map is
// a copy; callers may mutate it freely.
func Items(section string) map[string]string {
	src := itemsBySection[section]
	items := make(map[string]string, len(src))
	for id, topic := range src {
		items[id] = topic
	}
	return items
}

// Topic returns the topic tag for an item ID, or "" if unknown.
func Topic(section, itemID string) string {
	return itemsBySection[section][itemID]
}
