package domain

// Employee status values.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOpen     = "Open"
	StatusTerm     = "Term"
)

// Choices offered by the edit dialog selects.
var (
	ProjectOptions = []string{"PRJ7782", "PRJ8722", "PRJ9901", "PRJ5543", "PRJ3321"}

	CoreAlignmentOptions = []string{
		"Frontend Development",
		"Backend Development",
		"Full Stack Development",
		"Product Management",
		"UI/UX Design",
		"Quality Assurance",
		"DevOps",
		"Data Science",
		"Marketing",
		"Sales",
	}

	CoreTeamOptions = []string{
		"Engineering Team A",
		"Engineering Team B",
		"Product Team",
		"Design Team",
		"QA Team",
		"Infrastructure Team",
		"Data Team",
		"Marketing Team",
		"Sales Team",
	}

	RoleTypeOptions = []string{"Engineering", "Non Engineering", "Both"}

	StatusOptions = []string{StatusActive, StatusInactive, StatusOpen}

	// AddStatusOptions is the wider status list of the add dialog.
	AddStatusOptions = []string{StatusOpen, StatusActive, StatusTerm, StatusInactive}

	VendorOptions = []string{
		"TechCorp Solutions",
		"DevSolutions Inc",
		"ProductWorks LLC",
		"DesignHub Studios",
		"QualityFirst Partners",
		"CloudOps Solutions",
		"DataTech Analytics",
	}

	TeamNameOptions = []string{
		"Frontend Development Team",
		"Backend Development Team",
		"Product Strategy Team",
		"UX Design Team",
		"Quality Assurance Team",
		"Infrastructure Team",
		"Data Science Team",
	}

	ManagerOptions = []string{
		"Sarah Mitchell",
		"David Thompson",
		"Emily Rodriguez",
		"Michael Chen",
		"Jessica Williams",
		"Robert Johnson",
		"Amanda Davis",
		"Christopher Lee",
	}

	SecondaryTeamOptions = []string{
		"UI/UX Team",
		"DevOps Team",
		"Marketing Team",
		"Product Team",
		"Engineering Team A",
		"Backend Development Team",
	}
)
