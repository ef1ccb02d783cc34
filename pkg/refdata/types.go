// Package refdata holds the static reference tables the roster is sampled
// from: name pools, the geographic hierarchy, the organizational hierarchy of
// every business line and the job taxonomy.
//
// All tables are ordered slices so that flattening and uniform sampling are
// deterministic for a given seed. Nothing in this package is mutated after
// package initialization.
package refdata

// Team is the lowest named container of the org tree; its sub-teams are the
// leaves that records are placed into.
type Team struct {
	Name     string
	SubTeams []string
}

// Department groups teams.
type Department struct {
	Name  string
	Teams []Team
}

// Division groups departments.
type Division struct {
	Name        string
	Departments []Department
}

// CostCenter is a (code, name) pair owned by a business line.
type CostCenter struct {
	Code string
	Name string
}

// BusinessLine is the top-level organizational grouping. It owns its cost
// centers, job families and org tree. Weight is a relative sampling weight.
type BusinessLine struct {
	Name        string
	Weight      float64
	CostCenters []CostCenter
	JobFamilies []string
	Divisions   []Division
}

// Site is a city and its office code.
type Site struct {
	City string
	Code string
}

// Country lists the sites located in it.
type Country struct {
	Name  string
	Sites []Site
}

// SubRegion lists its countries.
type SubRegion struct {
	Name      string
	Countries []Country
}

// Region is the top of the geographic hierarchy. LegalEntity is the fixed
// employing entity for every site in the region.
type Region struct {
	Code        string
	LegalEntity string
	SubRegions  []SubRegion
}

// DeepLevel is the candidate list for one synthetic SNODE level (7..15).
type DeepLevel struct {
	Level      int
	Name       string
	Candidates []string
}

// Catalog bundles every table the sampler draws from. Tests build reduced
// catalogs; production code uses Default.
type Catalog struct {
	RootLabel     string
	FirstNames    []string
	LastNames     []string
	Regions       []Region
	BusinessLines []BusinessLine
	Grades        []string
	TitleSuffixes []string
	DeepLevels    []DeepLevel
}

// Default returns the built-in commercial bank catalog.
func Default() *Catalog {
	return &Catalog{
		RootLabel:     RootLabel,
		FirstNames:    FirstNames,
		LastNames:     LastNames,
		Regions:       Regions,
		BusinessLines: BusinessLines,
		Grades:        Grades,
		TitleSuffixes: TitleSuffixes,
		DeepLevels:    DeepLevels,
	}
}

// BusinessLine returns the line with the given name.
func (c *Catalog) BusinessLine(name string) (*BusinessLine, bool) {
	for i := range c.BusinessLines {
		if c.BusinessLines[i].Name == name {
			return &c.BusinessLines[i], true
		}
	}
	return nil, false
}

// Region returns the region with the given code.
func (c *Catalog) Region(code string) (*Region, bool) {
	for i := range c.Regions {
		if c.Regions[i].Code == code {
			return &c.Regions[i], true
		}
	}
	return nil, false
}
