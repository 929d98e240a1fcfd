package simtask

import "sort"

// UnlockThreshold is the fraction of required topics (as a percentage)
// that must be covered before a task type opens up.
const UnlockThreshold = 70.0

// MasteryScore is the best-score bar at which a task counts as mastered.
const MasteryScore = 75.0

// requiredTopics maps section -> task type -> the lesson topics a learner
// should have covered before attempting that simulation type. A task type
// with no entry here is always unlocked; gating is opt-in per type.
var requiredTopics = map[string]map[string][]string{
	"far": {
		"journal-entry": {
			"Revenue Recognition",
			"Inventory",
			"PP&E",
			"Bonds",
		},
		"document-review": {
			"Financial Statements",
			"Disclosures",
			"Revenue Recognition",
		},
		"research": {
			"GAAP",
			"Conceptual Framework",
		},
	},
	"aud": {
		"audit-procedures": {
			"Audit Planning",
			"Internal Control",
			"Audit Evidence",
			"Audit Sampling",
		},
		"document-review": {
			"Audit Evidence",
			"Audit Reports",
		},
		"research": {
			"Audit Planning",
			"Ethics",
		},
	},
	"reg": {
		"tax-form": {
			"Individual Taxation",
			"Property Transactions",
			"Corporate Taxation",
		},
		"document-review": {
			"Contracts",
			"Individual Taxation",
		},
		"research": {
			"Circular 230",
		},
	},
}

// TaskTypes returns the gated task types defined for a section, in a
// stable order.
func TaskTypes(section string) []string {
	table := requiredTopics[section]
	types := make([]string, 0, len(table))
	for t := range table {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RequiredTopics returns the gate list for (section, taskType), or nil when
// the type is ungated.
func RequiredTopics(section, taskType string) []string {
	return requiredTopics[section][taskType]
}
