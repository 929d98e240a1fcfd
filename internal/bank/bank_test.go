package bank

import (
	"testing"

	"github.com/studymesh/cpaprep/internal/lessons"
)

func TestItems_DerivedFromCatalog(t *testing.T) {
	for _, section := range lessons.AllSections() {
		items := Items(section)
		if len(items) == 0 {
			t.Errorf("section %s has no bank items", section)
			continue
		}

		topicCount := 0
		for _, l := range lessons.BySection(section) {
			topicCount += len(l.Topics)
		}
		if len(items) != topicCount*itemsPerTopic {
			t.Errorf("%s: %d items, want %d (%d topics x %d)",
				section, len(items), topicCount*itemsPerTopic, topicCount, itemsPerTopic)
		}
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	a := Items("far")
	for id := range a {
		delete(a, id)
	}
	if len(Items("far")) == 0 {
		t.Error("Items exposed the backing map")
	}
}

func TestTopic(t *testing.T) {
	if got := Topic("far", "far-inventory-t1-q01"); got != "Inventory" {
		t.Errorf("Topic = %q, want Inventory", got)
	}
	if got := Topic("far", "nope"); got != "" {
		t.Errorf("unknown item returned %q", got)
	}
	if got := Topic("far", "far-ppe-t2-q03"); got != "Depreciation" {
		t.Errorf("second topic slot = %q, want Depreciation", got)
	}
}
