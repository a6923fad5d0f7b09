package refdata

// NotAvailable is the sentinel applicants use for fields the form allows
// them to decline. Only the district/division pair accepts it.
const NotAvailable = "N/A"

// Tables holds the static reference enumerations the validator checks
// against. Instances are immutable after construction; share one per
// process.
type Tables struct {
	titles    map[string]struct{}
	districts map[string]struct{}
	faculties map[string]struct{}
	courses   map[string]struct{}
	divisions map[string][]string
}

// New builds a Tables from explicit enumerations. Tests use this to pass
// restricted doubles; production code uses Default.
func New(titles, districts, faculties, courses []string, divisions map[string][]string) *Tables {
	return &Tables{
		titles:    toSet(titles),
		districts: toSet(districts),
		faculties: toSet(faculties),
		courses:   toSet(courses),
		divisions: divisions,
	}
}

// Default returns the production reference data set.
func Default() *Tables {
	return New(Titles, Districts, Faculties, Courses, DSDivisions)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (t *Tables) ValidTitle(title string) bool {
	_, ok := t.titles[title]
	return ok
}

func (t *Tables) ValidDistrict(district string) bool {
	_, ok := t.districts[district]
	return ok
}

func (t *Tables) ValidFaculty(faculty string) bool {
	_, ok := t.faculties[faculty]
	return ok
}

func (t *Tables) ValidCourse(course string) bool {
	_, ok := t.courses[course]
	return ok
}

// DivisionsOf returns the D.S. divisions of a district, nil when the
// district is unknown or N/A.
func (t *Tables) DivisionsOf(district string) []string {
	return t.divisions[district]
}

// ValidDivision reports whether division belongs to district's division
// set. It is false for unknown districts and for the N/A district, whose
// division is free text.
func (t *Tables) ValidDivision(district, division string) bool {
	for _, d := range t.divisions[district] {
		if d == division {
			return true
		}
	}
	return false
}
