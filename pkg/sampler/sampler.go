// Package sampler draws internally consistent employee records from a
// reference catalog.
//
// A Sampler owns one seeded random stream and the set of employee IDs used so
// far, so one Sampler corresponds to one run. Records depend only on the seed
// and their position in the run.
package sampler

import (
	"context"
	"math/rand/v2"
	"strconv"

	"go.uber.org/zap"

	"github.com/ajitpratap0/rostergen/pkg/hierarchy"
	"github.com/ajitpratap0/rostergen/pkg/models"
	"github.com/ajitpratap0/rostergen/pkg/refdata"
	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

// Constant field values.
const (
	EmploymentType   = "Full-Time"
	EmploymentStatus = "Active"
)

// seedStream is the second PCG word of the main stream.
const seedStream = 0xda3e39cb94b95bdb

// DefaultManagerPoolSize is the number of distinct manager names.
const DefaultManagerPoolSize = 100

// Config controls a sampling run.
type Config struct {
	Seed            uint64 `json:"seed"`
	MaxIDAttempts   int    `json:"max_id_attempts"`
	ManagerPoolSize int    `json:"manager_pool_size"`
}

// Observer receives sampling events. Implementations must be cheap; they are
// called once per record.
type Observer interface {
	RecordGenerated(businessLine string, depth int)
	IDCollision()
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Sampler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers an observer for generated records and ID collisions.
func WithObserver(o Observer) Option {
	return func(s *Sampler) {
		s.observer = o
	}
}

// Sampler generates employee records. It is not safe for concurrent use.
type Sampler struct {
	config   Config
	catalog  *refdata.Catalog
	rng      *rand.Rand
	lines    *Weighted
	paths    [][]hierarchy.OrgPath
	managers []string
	ids      *idAllocator
	deep     *hierarchy.DeepPathGenerator
	logger   *zap.Logger
	observer Observer
}

// New validates catalog and builds a sampler seeded from cfg.Seed. The
// manager pool is drawn before any record.
func New(cfg Config, catalog *refdata.Catalog, opts ...Option) (*Sampler, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if cfg.ManagerPoolSize == 0 {
		cfg.ManagerPoolSize = DefaultManagerPoolSize
	}
	if cfg.ManagerPoolSize < 0 {
		return nil, rerrors.New(rerrors.ErrorTypeValidation, "manager pool size must be positive").
			WithDetail("manager_pool_size", cfg.ManagerPoolSize)
	}
	if cfg.MaxIDAttempts < 0 {
		return nil, rerrors.New(rerrors.ErrorTypeValidation, "max id attempts must be positive").
			WithDetail("max_id_attempts", cfg.MaxIDAttempts)
	}

	weights := make([]float64, len(catalog.BusinessLines))
	paths := make([][]hierarchy.OrgPath, len(catalog.BusinessLines))
	for i, bl := range catalog.BusinessLines {
		weights[i] = bl.Weight
		paths[i] = hierarchy.Flatten(bl)
	}
	lines, err := NewWeighted(weights)
	if err != nil {
		return nil, err
	}

	s := &Sampler{
		config:  cfg,
		catalog: catalog,
		rng:     rand.New(rand.NewPCG(cfg.Seed, seedStream)),
		lines:   lines,
		paths:   paths,
		deep:    hierarchy.NewDeepPathGenerator(catalog.DeepLevels),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids = newIDAllocator(cfg.MaxIDAttempts, s.collision)

	s.managers = make([]string, cfg.ManagerPoolSize)
	for i := range s.managers {
		s.managers[i] = s.fullName()
	}

	totalPaths := 0
	for _, p := range paths {
		totalPaths += len(p)
	}
	s.logger.Debug("sampler ready",
		zap.Uint64("seed", cfg.Seed),
		zap.Int("business_lines", len(catalog.BusinessLines)),
		zap.Int("org_paths", totalPaths),
		zap.Int("managers", len(s.managers)))
	return s, nil
}

// Managers returns the manager pool.
func (s *Sampler) Managers() []string {
	return s.managers
}

// Generate returns n records with indexes 0..n-1. It fails before drawing
// anything when n exceeds the unused ID space, and checks ctx between
// records.
func (s *Sampler) Generate(ctx context.Context, n int) ([]*models.EmployeeRecord, error) {
	if n < 0 {
		return nil, rerrors.New(rerrors.ErrorTypeValidation, "record count must not be negative").
			WithDetail("count", n)
	}
	if n > s.ids.remaining() {
		return nil, rerrors.New(rerrors.ErrorTypeValidation, "record count exceeds the employee id space").
			WithDetail("count", n).
			WithDetail("available", s.ids.remaining())
	}

	records := make([]*models.EmployeeRecord, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := s.Next(i)
		if err != nil {
			return nil, rerrors.Wrap(err, rerrors.TypeOf(err), "failed to generate record").
				WithDetail("index", i)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Next draws the record at position index. Callers pass consecutive indexes;
// the index only feeds the deep-path key.
func (s *Sampler) Next(index int) (*models.EmployeeRecord, error) {
	li := s.lines.Pick(s.rng)
	bl := &s.catalog.BusinessLines[li]

	path := pick(s.rng, s.paths[li])
	cc := pick(s.rng, bl.CostCenters)
	family := pick(s.rng, bl.JobFamilies)
	grade := pick(s.rng, s.catalog.Grades)
	title := s.title(path, family)

	id, err := s.ids.next(s.rng)
	if err != nil {
		return nil, err
	}

	first := pick(s.rng, s.catalog.FirstNames)
	last := pick(s.rng, s.catalog.LastNames)

	region := &s.catalog.Regions[s.rng.IntN(len(s.catalog.Regions))]
	sub := &region.SubRegions[s.rng.IntN(len(region.SubRegions))]
	country := &sub.Countries[s.rng.IntN(len(sub.Countries))]
	site := pick(s.rng, country.Sites)

	hired := hireDate(s.rng)
	manager := pick(s.rng, s.managers)

	depth := hierarchy.DepthFor(s.rng.Float64())
	deep := s.deep.Labels(hierarchy.Key(bl.Name, path.SubTeam, index), depth)
	jobCode := sixDigitText(s.rng)

	rec := &models.EmployeeRecord{
		FirstName:        first,
		LastName:         last,
		EmployeeID:       id,
		EmploymentType:   EmploymentType,
		EmploymentStatus: EmploymentStatus,
		HireDate:         hired,
		LegalEntity:      region.LegalEntity,
		JobTitle:         title,
		JobCode:          jobCode,
		JobFamily:        family,
		Grade:            grade,
		Manager:          manager,
		Region:           region.Code,
		SubRegion:        sub.Name,
		Country:          country.Name,
		City:             site.City,
		SiteCode:         site.Code,
		CostCenter:       cc.Code,
		CostCenterName:   cc.Name,
		BusinessLine:     bl.Name,
		Path:             path,
		Depth:            depth,
		SNODE:            hierarchy.Assemble(s.catalog.RootLabel, bl.Name, path, deep),
	}
	if s.observer != nil {
		s.observer.RecordGenerated(bl.Name, depth)
	}
	return rec, nil
}

// title builds "{base} {suffix}". The base is the sub-team or team, skipping
// names that contain a grade label, then the department, the division and
// the job family in turn.
// The suffix is drawn even when no base survives, so the stream advances
// the same way for every record.
func (s *Sampler) title(p hierarchy.OrgPath, family string) string {
	var bases []string
	for _, c := range []string{p.SubTeam, p.Team} {
		if _, graded := refdata.ContainsGrade(c, s.catalog.Grades); !graded {
			bases = append(bases, c)
		}
	}
	var base string
	if len(bases) > 0 {
		base = pick(s.rng, bases)
	} else {
		base = s.fallbackBase(p, family)
	}
	suffix := pick(s.rng, s.catalog.TitleSuffixes)
	if base == "" {
		return suffix
	}
	return base + " " + suffix
}

func (s *Sampler) fallbackBase(p hierarchy.OrgPath, family string) string {
	for _, c := range []string{p.Department, p.Division, family} {
		if _, graded := refdata.ContainsGrade(c, s.catalog.Grades); !graded {
			return c
		}
	}
	return ""
}

func (s *Sampler) fullName() string {
	return pick(s.rng, s.catalog.FirstNames) + " " + pick(s.rng, s.catalog.LastNames)
}

func (s *Sampler) collision() {
	if s.observer != nil {
		s.observer.IDCollision()
	}
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func sixDigitText(rng *rand.Rand) string {
	return strconv.Itoa(sixDigit(rng))
}
