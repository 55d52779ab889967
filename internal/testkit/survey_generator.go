package testkit

import (
	"math/rand"

	"goxtab/domain/dataset"
)

// SurveyConfig controls the synthetic survey generator.
type SurveyConfig struct {
	Rows int
	Seed int64
	// MissingRate is the per-cell probability of a missing marker in the
	// categorical columns.
	MissingRate float64
}

// DefaultSurveyConfig mirrors the fixture sizes the test suite expects.
func DefaultSurveyConfig() SurveyConfig {
	return SurveyConfig{Rows: 500, Seed: 42, MissingRate: 0.02}
}

// GenerateSurvey builds a deterministic synthetic survey dataset: categorical
// demographics, an ordinal satisfaction item, and two numeric measures with a
// planted gender/satisfaction association so the statistical tests have
// something to find. The same config always yields the same frame.
func GenerateSurvey(cfg SurveyConfig) (*dataset.Frame, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	genders := []string{"Female", "Male"}
	regions := []string{"East", "North", "South", "West"}
	ages := []string{"18-24", "25-34", "35-44", "45-54", "55+"}
	levels := []string{"Low", "Medium", "High"}

	gender := make([]dataset.Value, cfg.Rows)
	region := make([]dataset.Value, cfg.Rows)
	ageGroup := make([]dataset.Value, cfg.Rows)
	satisfaction := make([]dataset.Value, cfg.Rows)
	income := make([]dataset.Value, cfg.Rows)
	spend := make([]dataset.Value, cfg.Rows)

	for i := 0; i < cfg.Rows; i++ {
		g := genders[rng.Intn(len(genders))]
		gender[i] = maybeMissing(rng, cfg.MissingRate, dataset.Category(g))
		region[i] = maybeMissing(rng, cfg.MissingRate, dataset.Category(regions[rng.Intn(len(regions))]))
		ageGroup[i] = maybeMissing(rng, cfg.MissingRate, dataset.Category(ages[rng.Intn(len(ages))]))

		// Planted association: one gender skews toward higher satisfaction.
		p := rng.Float64()
		var level string
		if g == "Female" {
			level = pick(levels, p, 0.2, 0.35)
		} else {
			level = pick(levels, p, 0.4, 0.75)
		}
		satisfaction[i] = maybeMissing(rng, cfg.MissingRate, dataset.Category(level))

		base := 30000 + rng.NormFloat64()*8000
		if g == "Female" {
			base += 2500
		}
		income[i] = dataset.Number(base)
		spend[i] = dataset.Number(80 + rng.ExpFloat64()*40)
	}

	return dataset.NewFrame(
		dataset.Column{Name: "gender", Values: gender},
		dataset.Column{Name: "region", Values: region},
		dataset.Column{Name: "age_group", Values: ageGroup},
		dataset.Column{Name: "satisfaction", Values: satisfaction},
		dataset.Column{Name: "income", Values: income},
		dataset.Column{Name: "spend", Values: spend},
	)
}

func maybeMissing(rng *rand.Rand, rate float64, v dataset.Value) dataset.Value {
	if rng.Float64() < rate {
		return dataset.Missing()
	}
	return v
}

func pick(levels []string, p, lowCut, midCut float64) string {
	switch {
	case p < lowCut:
		return levels[0]
	case p < midCut:
		return levels[1]
	default:
		return levels[2]
	}
}
