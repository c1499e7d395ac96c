package catalog

import (
	"strings"
	"time"
)

// ReleaseDateLayout is the "Month/Day/Year" format accepted on game creation.
const ReleaseDateLayout = "January/2/2006"

func ParseReleaseDate(s string) (time.Time, error) {
	t, err := time.Parse(ReleaseDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, InvalidArgument("release_date %q must look like January/15/2022", s)
	}
	return t, nil
}
