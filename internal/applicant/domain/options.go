package domain

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

var educationLevels = []Option{
	{Value: "10th", Label: "10th Grade"},
	{Value: "12th", Label: "12th Grade"},
	{Value: "iti", Label: "ITI"},
	{Value: "diploma", Label: "Diploma"},
	{Value: "btech", Label: "B.Tech"},
	{Value: "be", Label: "B.E"},
	{Value: "mba", Label: "MBA"},
	{Value: "bachelor", Label: "Bachelor's Degree"},
	{Value: "master", Label: "Master's Degree"},
	{Value: "phd", Label: "PhD"},
	{Value: "other", Label: "Other"},
}

var streamOptions = []Option{
	{Value: "science", Label: "Science"},
	{Value: "commerce", Label: "Commerce"},
	{Value: "arts", Label: "Arts"},
	{Value: "engineering", Label: "Engineering"},
	{Value: "medical", Label: "Medical"},
	{Value: "management", Label: "Management"},
	{Value: "law", Label: "Law"},
	{Value: "computer-science", Label: "Computer Science"},
	{Value: "other", Label: "Other"},
}

var engineeringBranches = []Option{
	{Value: "computer-engineering", Label: "Computer Engineering"},
	{Value: "information-technology", Label: "Information Technology"},
	{Value: "electronics-communication", Label: "Electronics & Communication"},
	{Value: "electrical-engineering", Label: "Electrical Engineering"},
	{Value: "mechanical-engineering", Label: "Mechanical Engineering"},
	{Value: "civil-engineering", Label: "Civil Engineering"},
	{Value: "chemical-engineering", Label: "Chemical Engineering"},
	{Value: "biotechnology", Label: "Biotechnology"},
	{Value: "aerospace-engineering", Label: "Aerospace Engineering"},
	{Value: "automobile-engineering", Label: "Automobile Engineering"},
	{Value: "other", Label: "Other"},
}

var diplomaBranches = []Option{
	{Value: "computer-engineering", Label: "Computer Engineering"},
	{Value: "information-technology", Label: "Information Technology"},
	{Value: "electronics", Label: "Electronics"},
	{Value: "electrical", Label: "Electrical"},
	{Value: "mechanical", Label: "Mechanical"},
	{Value: "civil", Label: "Civil"},
	{Value: "automobile", Label: "Automobile"},
	{Value: "textile", Label: "Textile"},
	{Value: "chemical", Label: "Chemical"},
	{Value: "other", Label: "Other"},
}

var itiTrades = []Option{
	{Value: "electrician", Label: "Electrician"},
	{Value: "fitter", Label: "Fitter"},
	{Value: "welder", Label: "Welder"},
	{Value: "turner", Label: "Turner"},
	{Value: "machinist", Label: "Machinist"},
	{Value: "electronics-mechanic", Label: "Electronics Mechanic"},
	{Value: "copa", Label: "COPA (Computer Operator & Programming Assistant)"},
	{Value: "mechanic-motor-vehicle", Label: "Mechanic Motor Vehicle"},
	{Value: "plumber", Label: "Plumber"},
	{Value: "carpenter", Label: "Carpenter"},
	{Value: "draughtsman", Label: "Draughtsman (Civil/Mechanical)"},
	{Value: "other", Label: "Other"},
}

var mbaSpecializations = []Option{
	{Value: "finance", Label: "Finance"},
	{Value: "marketing", Label: "Marketing"},
	{Value: "human-resources", Label: "Human Resources"},
	{Value: "operations", Label: "Operations Management"},
	{Value: "information-technology", Label: "Information Technology"},
	{Value: "international-business", Label: "International Business"},
	{Value: "business-analytics", Label: "Business Analytics"},
	{Value: "entrepreneurship", Label: "Entrepreneurship"},
	{Value: "supply-chain", Label: "Supply Chain Management"},
	{Value: "healthcare-management", Label: "Healthcare Management"},
	{Value: "banking", Label: "Banking & Financial Services"},
	{Value: "other", Label: "Other"},
}

var bachelorCourses = []Option{
	{Value: "bsc-computer-science", Label: "B.Sc Computer Science"},
	{Value: "bsc-information-technology", Label: "B.Sc Information Technology"},
	{Value: "bsc-physics", Label: "B.Sc Physics"},
	{Value: "bsc-chemistry", Label: "B.Sc Chemistry"},
	{Value: "bsc-mathematics", Label: "B.Sc Mathematics"},
	{Value: "bsc-biology", Label: "B.Sc Biology"},
	{Value: "bca", Label: "BCA (Bachelor of Computer Applications)"},
	{Value: "bba", Label: "BBA (Bachelor of Business Administration)"},
	{Value: "bcom", Label: "B.Com (Bachelor of Commerce)"},
	{Value: "ba", Label: "B.A (Bachelor of Arts)"},
	{Value: "bsc-nursing", Label: "B.Sc Nursing"},
	{Value: "pharmacy", Label: "B.Pharm (Bachelor of Pharmacy)"},
	{Value: "agriculture", Label: "B.Sc Agriculture"},
	{Value: "other", Label: "Other"},
}

var experienceBrackets = []Option{
	{Value: "0-1", Label: "0-1 years"},
	{Value: "1-3", Label: "1-3 years"},
	{Value: "3-5", Label: "3-5 years"},
	{Value: "5-10", Label: "5-10 years"},
	{Value: "10+", Label: "10+ years"},
	{Value: "other", Label: "Other"},
}

var availabilityOptions = []Option{
	{Value: "immediate", Label: "Immediate"},
	{Value: "2-weeks", Label: "2 Weeks Notice"},
	{Value: "1-month", Label: "1 Month Notice"},
	{Value: "2-months", Label: "2 Months Notice"},
	{Value: "negotiable", Label: "Negotiable"},
	{Value: "other", Label: "Other"},
}

var departmentOptions = []Option{
	{Value: "government", Label: "Government Sector"},
	{Value: "contract", Label: "Contract Base"},
	{Value: "private", Label: "Private"},
	{Value: "psu", Label: "PSU (Public Sector Undertaking)"},
	{Value: "ngo", Label: "NGO"},
	{Value: "other", Label: "Other"},
}

// EducationLevels returns the selectable education levels in display order.
func EducationLevels() []Option { return cloneOptions(educationLevels) }

// StreamOptions returns the stream choices shown for 12th grade entries.
func StreamOptions() []Option { return cloneOptions(streamOptions) }

// ExperienceBrackets returns the overall-experience choices.
func ExperienceBrackets() []Option { return cloneOptions(experienceBrackets) }

// AvailabilityOptions returns the joining-availability choices.
func AvailabilityOptions() []Option { return cloneOptions(availabilityOptions) }

// DepartmentOptions returns the employer-sector choices for a work entry.
func DepartmentOptions() []Option { return cloneOptions(departmentOptions) }

// BranchOptionsFor returns the branch/trade choices for an education level,
// or nil when the level has no branch selection.
func BranchOptionsFor(level string) []Option {
	switch level {
	case "btech", "be":
		return cloneOptions(engineeringBranches)
	case "diploma":
		return cloneOptions(diplomaBranches)
	case "iti":
		return cloneOptions(itiTrades)
	case "mba":
		return cloneOptions(mbaSpecializations)
	case "bachelor":
		return cloneOptions(bachelorCourses)
	default:
		return nil
	}
}

// BranchApplies reports whether an education level carries a branch selection.
func BranchApplies(level string) bool {
	return BranchOptionsFor(level) != nil
}

// StreamApplies reports whether an education level carries a stream selection.
func StreamApplies(level string) bool {
	return level == "12th"
}

func cloneOptions(src []Option) []Option {
	out := make([]Option, len(src))
	copy(out, src)
	return out
}
