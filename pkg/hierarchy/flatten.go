// Package hierarchy turns a business line's org tree into leaf paths and
// builds the 15-level SNODE code attached to every record.
package hierarchy

import "github.com/ajitpratap0/rostergen/pkg/refdata"

// OrgPath identifies one leaf position in a business line's tree.
type OrgPath struct {
	Division   string
	Department string
	Team       string
	SubTeam    string
}

// Flatten returns one OrgPath per sub-team instance of bl, following the
// declared order of the tree. Paths are not deduplicated: the same sub-team
// name under two teams yields two paths.
func Flatten(bl refdata.BusinessLine) []OrgPath {
	var paths []OrgPath
	for _, div := range bl.Divisions {
		for _, dept := range div.Departments {
			for _, team := range dept.Teams {
				for _, sub := range team.SubTeams {
					paths = append(paths, OrgPath{
						Division:   div.Name,
						Department: dept.Name,
						Team:       team.Name,
						SubTeam:    sub,
					})
				}
			}
		}
	}
	return paths
}

// Contains reports whether p is a leaf of bl's tree.
func Contains(bl refdata.BusinessLine, p OrgPath) bool {
	for _, div := range bl.Divisions {
		if div.Name != p.Division {
			continue
		}
		for _, dept := range div.Departments {
			if dept.Name != p.Department {
				continue
			}
			for _, team := range dept.Teams {
				if team.Name != p.Team {
					continue
				}
				for _, sub := range team.SubTeams {
					if sub == p.SubTeam {
						return true
					}
				}
			}
		}
	}
	return false
}
