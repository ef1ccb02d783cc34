package refdata

// RootLabel is SNODE L1 for every record.
const RootLabel = "Commercial Bank"

// SNODE level bounds.
const (
	// Levels is the fixed number of SNODE columns.
	Levels = 15
	// FixedLevels are L1..L6, taken from the root label, business line and org path.
	FixedLevels = 6
	// FirstDeepLevel is the first synthetic level.
	FirstDeepLevel = 7
)

// Grades is the global, business-line independent grade list.
var Grades = []string{
	"Analyst", "Senior Analyst", "Associate", "Senior Associate", "Vice President",
	"Senior Vice President", "Director", "Executive Director", "Managing Director",
}

// TitleSuffixes are appended to the title base. None of them may contain a
// grade label.
var TitleSuffixes = []string{
	"Specialist", "Lead", "Coordinator", "Officer", "Advisor", "Consultant",
	"Manager", "Strategist", "Engineer", "Architect", "Administrator", "Examiner",
	"Controller",
}

// DeepLevels holds one candidate list per synthetic level, L7 through L15.
var DeepLevels = []DeepLevel{
	{Level: 7, Name: "function", Candidates: []string{
		"Execution", "Analysis", "Support", "Operations", "Strategy", "Advisory",
		"Processing", "Monitoring", "Reporting", "Development", "Testing", "Review",
		"Origination", "Structuring", "Distribution", "Coverage", "Governance",
	}},
	{Level: 8, Name: "sub-function", Candidates: []string{
		"Front-Line", "Back-Office", "Middle-Office", "Client-Facing", "Internal",
		"Quantitative", "Qualitative", "Manual", "Automated", "Standard", "Complex",
		"Primary", "Secondary", "Inbound", "Outbound", "Regulatory", "Commercial",
	}},
	{Level: 9, Name: "specialty", Candidates: []string{
		"Core Process", "Exception Handling", "Escalation", "Quality Assurance",
		"Reconciliation", "Validation", "Enrichment", "Transformation", "Delivery",
		"Investigation", "Resolution", "Documentation", "Certification", "Integration",
	}},
	{Level: 10, Name: "sub-specialty", Candidates: []string{
		"Tier 1", "Tier 2", "Tier 3", "Priority", "Standard", "Expedited",
		"Batch", "Real-Time", "Scheduled", "On-Demand", "Periodic", "Ad-Hoc",
	}},
	{Level: 11, Name: "unit", Candidates: []string{
		"Unit A", "Unit B", "Unit C", "Unit Alpha", "Unit Beta", "Unit Gamma",
		"Team Lead Unit", "Senior Unit", "Junior Unit", "Specialist Unit",
	}},
	{Level: 12, Name: "desk", Candidates: []string{
		"Desk 1", "Desk 2", "Desk 3", "Morning Shift", "Afternoon Shift", "EMEA Hours",
		"NA Hours", "APAC Hours", "Global Desk", "Regional Desk",
	}},
	{Level: 13, Name: "pod", Candidates: []string{
		"Pod Alpha", "Pod Beta", "Pod Gamma", "Pod Delta", "Pod Epsilon",
	}},
	{Level: 14, Name: "seat", Candidates: []string{
		"Seat 1", "Seat 2", "Seat 3", "Seat 4",
	}},
	{Level: 15, Name: "workstream", Candidates: []string{
		"Workstream A", "Workstream B", "Workstream C",
	}},
}
