package domain

// Course is an enrolled course/section pair. The JSON tags match the keys the
// portal's site-navigation endpoint uses, so the projection round-trips
// unchanged to tool callers.
type Course struct {
	CourseTitle  string `json:"courseTitle"`
	SectionTitle string `json:"sectionTitle"`
}
