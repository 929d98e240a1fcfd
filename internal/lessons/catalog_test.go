package lessons

import "testing"

func TestBySection_OrderedAscending(t *testing.T) {
	for _, section := range AllSections() {
		list := BySection(section)
		if len(list) == 0 {
			t.Errorf("section %s has no lessons", section)
			continue
		}
		for i := 1; i < len(list); i++ {
			if list[i].Order <= list[i-1].Order {
				t.Errorf("%s: lesson %s (order %d) not after %s (order %d)",
					section, list[i].ID, list[i].Order, list[i-1].ID, list[i-1].Order)
			}
		}
		for _, l := range list {
			if l.Section != section {
				t.Errorf("lesson %s has section %s, listed under %s", l.ID, l.Section, section)
			}
			if len(l.Topics) == 0 {
				t.Errorf("lesson %s has no topics", l.ID)
			}
			if l.DurationMinutes <= 0 {
				t.Errorf("lesson %s has duration %d", l.ID, l.DurationMinutes)
			}
		}
	}
}

func TestBySection_UnknownSectionEmpty(t *testing.T) {
	if list := BySection("bec"); len(list) != 0 {
		t.Errorf("unknown section returned %d lessons", len(list))
	}
}

func TestBySection_ReturnsCopy(t *testing.T) {
	a := BySection(SectionFAR)
	a[0].Title = "mutated"
	b := BySection(SectionFAR)
	if b[0].Title == "mutated" {
		t.Error("BySection exposed the catalog's backing slice")
	}
}

func TestGetLesson(t *testing.T) {
	l, err := GetLesson("far-inventory")
	if err != nil {
		t.Fatalf("GetLesson(far-inventory) error: %v", err)
	}
	if l.Section != SectionFAR || l.Topics[0] != "Inventory" {
		t.Errorf("got %+v, want the FAR inventory lesson", l)
	}

	if _, err := GetLesson("no-such-lesson"); err == nil {
		t.Error("expected an error for an unknown lesson ID")
	}
}

func TestAllLessons_CoversEverySection(t *testing.T) {
	counts := make(map[string]int)
	for _, l := range AllLessons() {
		counts[l.Section]++
	}
	for _, section := range AllSections() {
		if counts[section] == 0 {
			t.Errorf("no lessons for section %s", section)
		}
	}
}

func TestSectionDisplayName(t *testing.T) {
	if got := SectionDisplayName(SectionAUD); got != "Auditing & Attestation" {
		t.Errorf("SectionDisplayName(aud) = %q", got)
	}
	if got := SectionDisplayName("xyz"); got != "xyz" {
		t.Errorf("unknown section should pass through, got %q", got)
	}
}
