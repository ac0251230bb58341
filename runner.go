// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import (
	"fmt"
	"math/rand/v2"
)

// Property runner: executes law suites against randomized samples.
// Evaluation is single-threaded, synchronous and side-effect-free; a
// run either completes all trials or stops a law at its first
// counterexample. Sample generation is deterministic given the
// configured seed — each law draws from its own PCG stream, so an early
// failure in one law never shifts the trials of another.

// SampleSource generates arbitrary slot samples of shape W from plain
// integer seeds, plus a small closed pool of endofunctions on the seed
// domain for laws that quantify over a function argument.
type SampleSource[W Witness] struct {
	FromSeed func(seed int) Slot[W, int]
	Pool     []func(int) int
}

// MakeSampleSource pairs a seed-to-slot lifting with a function pool.
// A nil or empty pool falls back to [DefaultPool].
func MakeSampleSource[W Witness](lift func(int) Slot[W, int], pool []func(int) int) SampleSource[W] {
	if len(pool) == 0 {
		pool = DefaultPool()
	}
	return SampleSource[W]{FromSeed: lift, Pool: pool}
}

// DefaultPool returns the standard five endofunctions on the seed
// domain.
func DefaultPool() []func(int) int {
	return []func(int) int{
		func(x int) int { return x },
		func(x int) int { return x + 3 },
		func(x int) int { return x * 2 },
		func(x int) int { return -x },
		func(x int) int { return x % 7 },
	}
}

// Oracle decides law-level equivalence of two slots of shape W.
// Containers with structural equality use [StructuralOracle]-built
// oracles; containers wrapping unobservable internals supply their
// own.
type Oracle[W Witness] func(a, b Slot[W, int]) bool

// DefaultTrials is the number of samples drawn per law when
// [RunConfig].Trials is zero.
const DefaultTrials = 100

// RunConfig configures one law run.
type RunConfig struct {
	// Trials is the number of independent samples per law; zero means
	// DefaultTrials.
	Trials int

	// Seed seeds the trial streams. Two runs with equal seeds draw
	// identical trials; reproducing a run across processes is the
	// caller's responsibility beyond honoring this seed.
	Seed uint64
}

// Violation is a contract violation: the first sample for which a
// law's equation did not hold.
type Violation struct {
	Law        string
	Seed       int
	FIdx, GIdx int
	Sample     string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("hkt: law %q violated: seed=%d f=pool[%d] g=pool[%d] sample=%s",
		v.Law, v.Seed, v.FIdx, v.GIdx, v.Sample)
}

// Report is the per-law outcome of a run: the law name, how many trials
// executed, and the violation if one was found.
type Report struct {
	Law       string
	Trials    int
	Violation *Violation
}

// Passed reports whether the law held for every executed trial.
func (r Report) Passed() bool { return r.Violation == nil }

// CheckLaws runs every law against independently drawn trials, stopping
// each law at its first counterexample. Laws are independent: a
// violation in one never stops another, and each law's trial stream is
// seeded separately from (cfg.Seed, law index).
func CheckLaws[W Witness](laws []Law[W], src SampleSource[W], cfg RunConfig) []Report {
	trials := cfg.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	reports := make([]Report, 0, len(laws))
	for li, law := range laws {
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(li)))
		rep := Report{Law: law.Name}
		for range trials {
			seed := rng.IntN(2001) - 1000
			fi := rng.IntN(len(src.Pool))
			gi := rng.IntN(len(src.Pool))
			tr := Trial[W]{
				Seed:   seed,
				Sample: src.FromSeed(seed),
				F:      src.Pool[fi],
				G:      src.Pool[gi],
				FIdx:   fi,
				GIdx:   gi,
			}
			rep.Trials++
			if !law.Check(tr) {
				rep.Violation = &Violation{
					Law:    law.Name,
					Seed:   seed,
					FIdx:   fi,
					GIdx:   gi,
					Sample: fmt.Sprintf("%v", tr.Sample.repr),
				}
				break
			}
		}
		reports = append(reports, rep)
	}
	return reports
}

// Violations filters a run's reports down to the violations found.
func Violations(reports []Report) []*Violation {
	var out []*Violation
	for _, r := range reports {
		if r.Violation != nil {
			out = append(out, r.Violation)
		}
	}
	return out
}
