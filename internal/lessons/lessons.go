package lessons

import "context"

// Lesson is a single unit of study content within an exam section.
type Lesson struct {
	ID              string
	Section         string
	Title           string
	Topics          []string
	DurationMinutes int
	Order           int
}

// Provider supplies the ordered lesson list for a section.
// Implementations must return lessons ascending by Order.
type Provider interface {
	ListLessons(ctx context.Context, section string) ([]Lesson, error)
}

// StaticProvider serves the built-in catalog.
type StaticProvider struct{}

// NewStaticProvider returns a Provider over the seeded catalog.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) ListLessons(_ context.Context, section string) ([]Lesson, error) {
	return BySection(section), nil
}
