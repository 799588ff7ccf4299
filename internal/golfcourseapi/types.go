package golfcourseapi

// Course is a candidate course record returned by the search endpoint.
type Course struct {
	ID         int      `json:"id"`
	ClubName   string   `json:"club_name"`
	CourseName string   `json:"course_name"`
	Location   Location `json:"location"`
	Tees       TeeSet   `json:"tees"`
}

// Location carries the geographic fields of a course record. Only the
// country participates in matching.
type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// TeeSet holds the named tee configurations of a course, split by the
// provider into male and female lists.
type TeeSet struct {
	Male   []Tee `json:"male,omitempty"`
	Female []Tee `json:"female,omitempty"`
}

// Tee is one named tee configuration with its per-hole descriptors.
type Tee struct {
	TeeName       string  `json:"tee_name"`
	CourseRating  float64 `json:"course_rating,omitempty"`
	SlopeRating   int     `json:"slope_rating,omitempty"`
	TotalYards    int     `json:"total_yards,omitempty"`
	NumberOfHoles *int    `json:"number_of_holes,omitempty"`
	Holes         []Hole  `json:"holes,omitempty"`
}

// Hole is one per-hole descriptor. Par is a pointer so a missing value can
// be told apart from zero.
type Hole struct {
	Par      *int `json:"par,omitempty"`
	Yardage  int  `json:"yardage,omitempty"`
	Handicap int  `json:"handicap,omitempty"`
}

// searchResponse is the wire shape of the /v1/search endpoint.
type searchResponse struct {
	Courses []Course `json:"courses"`
}
