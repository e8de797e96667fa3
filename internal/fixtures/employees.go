package fixtures

import "github.com/csg33k/roster-admin/internal/domain"

// ==========================================
// MOCK ROSTER
// ==========================================

// Employees returns a fresh copy of the mock roster the screen starts with.
func Employees() []domain.Employee {
	out := make([]domain.Employee, len(mockEmployees))
	copy(out, mockEmployees)
	return out
}

var mockEmployees = []domain.Employee{
	{
		EmpID: "EMP001", ResourceName: "John Smith", PrjAlign: "PRJ7782",
		CoreAlignment: "Frontend Development", CoreTeam: "Engineering Team A",
		JobTitle: "Senior Frontend Developer", RoleType: "Engineering", Status: domain.StatusActive,
		BaseLocation: "New York, NY", EmailID: "john.smith@optum.com", HireDate: "2022-01-15",
		Vendor: "TechCorp Solutions", ContactNumber: "2125550101",
		TeamName: "Frontend Development Team", ManagerName: "Sarah Mitchell", SecondaryTeam: "UI/UX Team",
		ModifiedBy: "admin", ModifiedAt: "2024-01-15",
	},
	{
		EmpID: "EMP002", ResourceName: "Maria Garcia", PrjAlign: "PRJ8722",
		CoreAlignment: "Backend Development", CoreTeam: "Engineering Team B",
		JobTitle: "Backend Engineer", RoleType: "Engineering", Status: domain.StatusActive,
		BaseLocation: "Austin, TX", EmailID: "maria.garcia@optum.com", HireDate: "2021-06-01",
		Vendor: "DevSolutions Inc", ContactNumber: "5125550102",
		TeamName: "Backend Development Team", ManagerName: "David Thompson", SecondaryTeam: "DevOps Team",
		ModifiedBy: "admin", ModifiedAt: "2024-02-03",
	},
	{
		EmpID: "EMP003", ResourceName: "Wei Zhang", PrjAlign: "PRJ9901",
		CoreAlignment: "Product Management", CoreTeam: "Product Team",
		JobTitle: "Product Manager", RoleType: "Non Engineering", Status: domain.StatusActive,
		BaseLocation: "Seattle, WA", EmailID: "wei.zhang@optum.com", HireDate: "2020-09-21",
		Vendor: "ProductWorks LLC", ContactNumber: "2065550103",
		TeamName: "Product Strategy Team", ManagerName: "Emily Rodriguez", SecondaryTeam: "Marketing Team",
		ModifiedBy: "hr.ops", ModifiedAt: "2023-11-30",
	},
	{
		EmpID: "EMP004", ResourceName: "Aisha Okafor", PrjAlign: "PRJ5543",
		CoreAlignment: "UI/UX Design", CoreTeam: "Design Team",
		JobTitle: "UX Designer", RoleType: "Both", Status: domain.StatusInactive,
		BaseLocation: "Chicago, IL", EmailID: "aisha.okafor@optum.com", HireDate: "2019-03-11",
		TermDate: "2024-03-31", Vendor: "DesignHub Studios", ContactNumber: "3125550104",
		TeamName: "UX Design Team", ManagerName: "Michael Chen", SecondaryTeam: "Product Team",
		ModifiedBy: "hr.ops", ModifiedAt: "2024-04-01",
	},
	{
		EmpID: "EMP005", ResourceName: "Liam O'Brien", PrjAlign: "PRJ3321",
		CoreAlignment: "Quality Assurance", CoreTeam: "QA Team",
		JobTitle: "QA Analyst", RoleType: "Engineering", Status: domain.StatusActive,
		BaseLocation: "Boston, MA", EmailID: "liam.obrien@optum.com", HireDate: "2023-02-06",
		Vendor: "QualityFirst Partners", ContactNumber: "6175550105",
		TeamName: "Quality Assurance Team", ManagerName: "Jessica Williams", SecondaryTeam: "Engineering Team A",
		ModifiedBy: "admin", ModifiedAt: "2024-01-22",
	},
	{
		EmpID: "EMP006", ResourceName: "Priya Sharma", PrjAlign: "PRJ7782",
		CoreAlignment: "DevOps", CoreTeam: "Infrastructure Team",
		JobTitle: "Site Reliability Engineer", RoleType: "Engineering", Status: domain.StatusActive,
		BaseLocation: "Denver, CO", EmailID: "priya.sharma@optum.com", HireDate: "2021-10-18",
		Vendor: "CloudOps Solutions", ContactNumber: "3035550106",
		TeamName: "Infrastructure Team", ManagerName: "Robert Johnson", SecondaryTeam: "DevOps Team",
		ModifiedBy: "admin", ModifiedAt: "2024-03-12",
	},
	{
		EmpID: "EMP007", ResourceName: "Carlos Mendes", PrjAlign: "PRJ8722",
		CoreAlignment: "Data Science", CoreTeam: "Data Team",
		JobTitle: "Data Scientist", RoleType: "Engineering", Status: domain.StatusOpen,
		BaseLocation: "Remote", EmailID: "carlos.mendes@optum.com", HireDate: "2024-05-01",
		Vendor: "DataTech Analytics", ContactNumber: "4155550107",
		TeamName: "Data Science Team", ManagerName: "Amanda Davis", SecondaryTeam: "Backend Development Team",
		ModifiedBy: "recruiting", ModifiedAt: "2024-04-18",
	},
	{
		EmpID: "EMP008", ResourceName: "Hannah Becker", PrjAlign: "PRJ9901",
		CoreAlignment: "Full Stack Development", CoreTeam: "Engineering Team A",
		JobTitle: "Full Stack Developer", RoleType: "Engineering", Status: domain.StatusActive,
		BaseLocation: "Minneapolis, MN", EmailID: "hannah.becker@optum.com", HireDate: "2022-07-25",
		Vendor: "TechCorp Solutions", ContactNumber: "6125550108",
		TeamName: "Frontend Development Team", ManagerName: "Sarah Mitchell", SecondaryTeam: "Backend Development Team",
		ModifiedBy: "admin", ModifiedAt: "2024-02-27",
	},
	{
		EmpID: "EMP009", ResourceName: "Kenji Watanabe", PrjAlign: "PRJ5543",
		CoreAlignment: "Backend Development", CoreTeam: "Engineering Team B",
		JobTitle: "Principal Engineer", RoleType: "Engineering", Status: domain.StatusActive,
		BaseLocation: "San Francisco, CA", EmailID: "kenji.watanabe@optum.com", HireDate: "2018-11-05",
		Vendor: "DevSolutions Inc", ContactNumber: "4155550109",
		TeamName: "Backend Development Team", ManagerName: "Christopher Lee", SecondaryTeam: "DevOps Team",
		ModifiedBy: "hr.ops", ModifiedAt: "2023-12-08",
	},
	{
		EmpID: "EMP010", ResourceName: "Fatima Haddad", PrjAlign: "PRJ3321",
		CoreAlignment: "Marketing", CoreTeam: "Marketing Team",
		JobTitle: "Marketing Specialist", RoleType: "Non Engineering", Status: domain.StatusActive,
		BaseLocation: "Atlanta, GA", EmailID: "fatima.haddad@optum.com", HireDate: "2023-09-14",
		Vendor: "ProductWorks LLC", ContactNumber: "4045550110",
		TeamName: "Product Strategy Team", ManagerName: "Emily Rodriguez", SecondaryTeam: "Marketing Team",
		ModifiedBy: "admin", ModifiedAt: "2024-01-05",
	},
	{
		EmpID: "EMP011", ResourceName: "Noah Williams", PrjAlign: "PRJ7782",
		CoreAlignment: "Sales", CoreTeam: "Sales Team",
		JobTitle: "Account Executive", RoleType: "Non Engineering", Status: domain.StatusOpen,
		BaseLocation: "Dallas, TX", EmailID: "noah.williams@optum.com", HireDate: "2024-06-10",
		Vendor: "TechCorp Solutions", ContactNumber: "2145550111",
		TeamName: "Product Strategy Team", ManagerName: "Jessica Williams", SecondaryTeam: "Marketing Team",
		ModifiedBy: "recruiting", ModifiedAt: "2024-05-20",
	},
	{
		EmpID: "EMP012", ResourceName: "Olga Ivanova", PrjAlign: "PRJ8722",
		CoreAlignment: "Quality Assurance", CoreTeam: "QA Team",
		JobTitle: "Test Automation Engineer", RoleType: "Engineering", Status: domain.StatusInactive,
		BaseLocation: "Raleigh, NC", EmailID: "olga.ivanova@optum.com", HireDate: "2020-01-27",
		TermDate: "2023-10-13", Vendor: "QualityFirst Partners", ContactNumber: "9195550112",
		TeamName: "Quality Assurance Team", ManagerName: "Robert Johnson", SecondaryTeam: "Engineering Team A",
		ModifiedBy: "hr.ops", ModifiedAt: "2023-10-16",
	},
}
