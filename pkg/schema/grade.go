package schema

import (
	"fmt"
	"strings"
)

// Grade is a winery rating. Stars map inversely to the stored
// value: *** is 1, ** is 2, * is 3 and no stars is 4.
type Grade int

const (
	// GradeTop is a three-star winery.
	GradeTop Grade = 1

	// GradeDefault is a winery without stars.
	GradeDefault Grade = 4
)

// GradeFromStars converts a star marker such as "**" into a Grade.
// An empty marker or "-" means no stars.
func GradeFromStars(stars string) (Grade, error) {
	stars = strings.TrimSpace(stars)
	if stars == "-" {
		stars = ""
	}
	if strings.Trim(stars, "*") != "" {
		return 0, fmt.Errorf("invalid star marker %q", stars)
	}
	n := len(stars)
	if n > 3 {
		return 0, fmt.Errorf("too many stars in %q, max is 3", stars)
	}
	return GradeDefault - Grade(n), nil
}

// Stars returns the star marker of the grade, empty for
// GradeDefault. Grades outside 1 to 4 return an error.
func (g Grade) Stars() (string, error) {
	if !g.Valid() {
		return "", fmt.Errorf("invalid grade %d", g)
	}
	return strings.Repeat("*", int(GradeDefault-g)), nil
}

// Valid is true for grades 1 to 4.
func (g Grade) Valid() bool {
	return g >= GradeTop && g <= GradeDefault
}
