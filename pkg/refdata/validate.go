package refdata

import (
	"strings"

	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

// Validate checks that every sampling pool in the catalog is non-empty.
// Every record draws from each of these tables, so an empty one is reported
// up front instead of producing an incomplete record later.
func (c *Catalog) Validate() error {
	if c == nil {
		return rerrors.New(rerrors.ErrorTypeData, "catalog is nil")
	}
	if c.RootLabel == "" {
		return emptyTable("root_label")
	}
	if len(c.FirstNames) == 0 {
		return emptyTable("first_names")
	}
	if len(c.LastNames) == 0 {
		return emptyTable("last_names")
	}
	if len(c.Grades) == 0 {
		return emptyTable("grades")
	}
	if len(c.TitleSuffixes) == 0 {
		return emptyTable("title_suffixes")
	}
	for _, suffix := range c.TitleSuffixes {
		if grade, ok := ContainsGrade(suffix, c.Grades); ok {
			return rerrors.New(rerrors.ErrorTypeData, "title suffix contains a grade label").
				WithDetail("suffix", suffix).
				WithDetail("grade", grade)
		}
	}
	if err := c.validateDeepLevels(); err != nil {
		return err
	}
	if err := c.validateRegions(); err != nil {
		return err
	}
	return c.validateBusinessLines()
}

func (c *Catalog) validateDeepLevels() error {
	if len(c.DeepLevels) != Levels-FixedLevels {
		return rerrors.New(rerrors.ErrorTypeData, "deep level table must cover L7 through L15").
			WithDetail("levels", len(c.DeepLevels))
	}
	for i, lvl := range c.DeepLevels {
		if lvl.Level != FirstDeepLevel+i {
			return rerrors.New(rerrors.ErrorTypeData, "deep levels out of order").
				WithDetail("position", i).
				WithDetail("level", lvl.Level)
		}
		if len(lvl.Candidates) == 0 {
			return emptyTable("deep_levels").WithDetail("level", lvl.Level)
		}
	}
	return nil
}

func (c *Catalog) validateRegions() error {
	if len(c.Regions) == 0 {
		return emptyTable("regions")
	}
	for _, r := range c.Regions {
		if r.LegalEntity == "" {
			return rerrors.New(rerrors.ErrorTypeData, "region has no legal entity").
				WithDetail("region", r.Code)
		}
		if len(r.SubRegions) == 0 {
			return emptyTable("sub_regions").WithDetail("region", r.Code)
		}
		for _, sr := range r.SubRegions {
			if len(sr.Countries) == 0 {
				return emptyTable("countries").WithDetail("sub_region", sr.Name)
			}
			for _, country := range sr.Countries {
				if len(country.Sites) == 0 {
					return emptyTable("sites").WithDetail("country", country.Name)
				}
			}
		}
	}
	return nil
}

func (c *Catalog) validateBusinessLines() error {
	if len(c.BusinessLines) == 0 {
		return emptyTable("business_lines")
	}
	total := 0.0
	for _, bl := range c.BusinessLines {
		if bl.Weight < 0 {
			return rerrors.New(rerrors.ErrorTypeData, "business line weight is negative").
				WithDetail("business_line", bl.Name)
		}
		total += bl.Weight
		if len(bl.CostCenters) == 0 {
			return emptyTable("cost_centers").WithDetail("business_line", bl.Name)
		}
		if len(bl.JobFamilies) == 0 {
			return emptyTable("job_families").WithDetail("business_line", bl.Name)
		}
		if countLeaves(bl) == 0 {
			return emptyTable("org_paths").WithDetail("business_line", bl.Name)
		}
	}
	if total <= 0 {
		return rerrors.New(rerrors.ErrorTypeData, "business line weights sum to zero")
	}
	return nil
}

// ContainsGrade reports whether s contains any grade label as a substring and
// returns the first match.
func ContainsGrade(s string, grades []string) (string, bool) {
	for _, g := range grades {
		if g != "" && strings.Contains(s, g) {
			return g, true
		}
	}
	return "", false
}

func countLeaves(bl BusinessLine) int {
	n := 0
	for _, div := range bl.Divisions {
		for _, dept := range div.Departments {
			for _, team := range dept.Teams {
				n += len(team.SubTeams)
			}
		}
	}
	return n
}

func emptyTable(name string) *rerrors.Error {
	return rerrors.New(rerrors.ErrorTypeData, "reference table is empty").WithDetail("table", name)
}
