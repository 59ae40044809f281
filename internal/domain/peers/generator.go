package peers

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"career-compass/internal/domain/catalog"
	"career-compass/internal/domain/normalize"
	"career-compass/internal/domain/scoring"
)

const (
	DefaultSampleSize = 8

	dedupAttempts   = 50
	salaryBucket    = 5000
	minPeerSalary   = 40000
	minEstSalary    = 45000
	minPeerSkills   = 4
	maxListedPer    = 5
	softProbability = 0.6
)

// educationLevels is sampled by cumulative probability, in listed order.
var educationLevels = []struct {
	Name string
	P    float64
}{
	{"Bachelor's", 0.40},
	{"Master's", 0.35},
	{"PhD", 0.15},
	{"Bootcamp", 0.08},
	{"Self-taught", 0.02},
}

// Peer is one synthesized record. Peers are sampled, not stored, so the
// struct carries only what the aggregate report reads back.
type Peer struct {
	ExperienceYears int
	Education       string
	Salary          int
	Skills          []string
}

type Stats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

type Report struct {
	Career     string
	SampleSize int

	Peers []Peer

	Experience Stats
	Salary     Stats

	UserExperienceEst    float64
	UserSalaryEst        int
	ExperiencePercentile float64
	SalaryPercentile     float64

	SkillCoveragePct float64
	MissingCore      []string
	MissingEmerging  []string

	EducationDist map[string]int
}

// skillClass buckets a career's requirements by how the generator treats
// them: core requirements are near-universal among peers, emerging ones
// track experience, soft ones are flat.
type skillClass struct {
	core     []string
	emerging []string
	soft     []string
}

func classify(career *catalog.Career) skillClass {
	var sc skillClass
	for _, r := range career.Requirements {
		switch r.Category {
		case catalog.CategoryCore:
			sc.core = append(sc.core, r.Skill)
		case catalog.CategorySoft:
			sc.soft = append(sc.soft, r.Skill)
		default:
			sc.emerging = append(sc.emerging, r.Skill)
		}
	}
	return sc
}

// Generator synthesizes peer populations for benchmarking. The random
// source is injected so tests can seed it; production wiring passes a
// time-seeded source.
type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds a benchmark report for the user's profile against n
// synthesized peers of the given career. n <= 0 falls back to the default
// sample size.
func (g *Generator) Generate(store *catalog.Store, career *catalog.Career, profile normalize.Profile, n int) Report {
	if n <= 0 {
		n = DefaultSampleSize
	}
	sc := classify(career)

	rep := Report{
		Career:        career.Name,
		SampleSize:    n,
		EducationDist: make(map[string]int),
	}

	seen := make(map[string]struct{}, n)
	for len(rep.Peers) < n {
		var p Peer
		for attempt := 0; attempt < dedupAttempts; attempt++ {
			p = g.samplePeer(career, sc)
			key := fmt.Sprintf("%d|%s|%d", p.ExperienceYears, p.Education, p.Salary/salaryBucket)
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				break
			}
		}
		rep.Peers = append(rep.Peers, p)
		rep.EducationDist[p.Education]++
	}

	exp := make([]float64, len(rep.Peers))
	sal := make([]float64, len(rep.Peers))
	for i, p := range rep.Peers {
		exp[i] = float64(p.ExperienceYears)
		sal[i] = float64(p.Salary)
	}
	rep.Experience = describe(exp)
	rep.Salary = describe(sal)

	userCore, userEmerging := g.userCoverage(store, profile, sc)
	rep.UserExperienceEst = scoring.Round1(estimateExperience(userCore, userEmerging))
	rep.UserSalaryEst = estimateSalary(career.Market.BaseSalary, rep.UserExperienceEst, userCore+userEmerging)

	rep.ExperiencePercentile = scoring.Round1(Percentile(rep.UserExperienceEst, exp))
	rep.SalaryPercentile = scoring.Round1(Percentile(float64(rep.UserSalaryEst), sal))

	rep.SkillCoveragePct, rep.MissingCore, rep.MissingEmerging = g.coverage(store, profile, sc, rep.Peers)
	return rep
}

func (g *Generator) samplePeer(career *catalog.Career, sc skillClass) Peer {
	m := career.Market
	mid := float64(m.MinExperience+m.MaxExperience) / 2
	years := int(g.rng.NormFloat64()*2 + mid)
	if years < m.MinExperience {
		years = m.MinExperience
	}
	if years > m.MaxExperience {
		years = m.MaxExperience
	}

	salary := m.BaseSalary + years*7000 + g.rng.Intn(32001) - 12000
	if salary < minPeerSalary {
		salary = minPeerSalary
	}

	p := Peer{
		ExperienceYears: years,
		Education:       g.sampleEducation(),
		Salary:          salary,
	}

	expF := float64(years)
	coreP := 0.7 + min(expF*0.05, 0.25)
	emergingP := max(0.1, min(expF*0.08, 0.75))
	for _, s := range sc.core {
		if g.rng.Float64() < coreP {
			p.Skills = append(p.Skills, s)
		}
	}
	for _, s := range sc.emerging {
		if g.rng.Float64() < emergingP {
			p.Skills = append(p.Skills, s)
		}
	}
	for _, s := range sc.soft {
		if g.rng.Float64() < softProbability {
			p.Skills = append(p.Skills, s)
		}
	}

	// Very sparse peers are implausible; top up from the core list.
	if len(p.Skills) < minPeerSkills {
		have := make(map[string]struct{}, len(p.Skills))
		for _, s := range p.Skills {
			have[s] = struct{}{}
		}
		added := 0
		for _, s := range sc.core {
			if added == 2 {
				break
			}
			if _, ok := have[s]; !ok {
				p.Skills = append(p.Skills, s)
				added++
			}
		}
	}
	return p
}

func (g *Generator) sampleEducation() string {
	v := g.rng.Float64()
	acc := 0.0
	for _, lvl := range educationLevels {
		acc += lvl.P
		if v < acc {
			return lvl.Name
		}
	}
	return educationLevels[0].Name
}

func (g *Generator) userCoverage(store *catalog.Store, profile normalize.Profile, sc skillClass) (core, emerging int) {
	for _, s := range sc.core {
		if _, ok := profile.Has(store, s); ok {
			core++
		}
	}
	for _, s := range sc.emerging {
		if _, ok := profile.Has(store, s); ok {
			emerging++
		}
	}
	return core, emerging
}

func estimateExperience(core, emerging int) float64 {
	est := 1 + 0.5*float64(core) + 1.0*float64(emerging)
	if est > 12 {
		est = 12
	}
	return est
}

func estimateSalary(base int, expYears float64, skillCount int) int {
	est := base + int(expYears*6000)
	if skillCount > 8 {
		est += 10000
	}
	if est < minEstSalary {
		est = minEstSalary
	}
	return est
}

// coverage compares the user's skills against the union of peer skills and
// lists the most important gaps. The categorization comes from the career
// profile, so it is deterministic even though the peer sample is not.
func (g *Generator) coverage(store *catalog.Store, profile normalize.Profile, sc skillClass, peers []Peer) (float64, []string, []string) {
	union := map[string]struct{}{}
	for _, p := range peers {
		for _, s := range p.Skills {
			union[strings.ToLower(s)] = struct{}{}
		}
	}

	covered := 0
	missing := map[string]struct{}{}
	for s := range union {
		if _, ok := profile.Has(store, s); ok {
			covered++
		} else {
			missing[s] = struct{}{}
		}
	}

	pct := 0.0
	if len(union) > 0 {
		pct = scoring.Round1(float64(covered) / float64(len(union)) * 100)
	}

	pick := func(class []string) []string {
		var out []string
		for _, s := range class {
			if len(out) == maxListedPer {
				break
			}
			if _, miss := missing[strings.ToLower(s)]; miss {
				out = append(out, s)
			}
		}
		return out
	}
	return pct, pick(sc.core), pick(sc.emerging)
}

// Percentile is the inclusive rank of value within population, in [0,100].
// An empty population yields the neutral 50.
func Percentile(value float64, population []float64) float64 {
	if len(population) == 0 {
		return 50
	}
	atOrBelow := 0
	for _, x := range population {
		if x <= value {
			atOrBelow++
		}
	}
	return float64(atOrBelow) / float64(len(population)) * 100
}

func describe(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return Stats{
		Mean:   scoring.Round1(sum / float64(n)),
		Median: scoring.Round1(median),
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}
