package constants

// Careers a bootcamp can offer. Course and bootcamp submissions are validated
// against this set.
var Careers = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX",
	"Data Science",
	"Business",
	"Other",
}

// IsValidCareer reports whether the value belongs to the known career set.
func IsValidCareer(value string) bool {
	for _, career := range Careers {
		if career == value {
			return true
		}
	}
	return false
}
