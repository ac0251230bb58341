// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/hkt"
)

func alwaysHolds() hkt.Law[hkt.IdentW] {
	return hkt.Law[hkt.IdentW]{
		Name:  "always holds",
		Check: func(hkt.Trial[hkt.IdentW]) bool { return true },
	}
}

func neverHolds() hkt.Law[hkt.IdentW] {
	return hkt.Law[hkt.IdentW]{
		Name:  "never holds",
		Check: func(hkt.Trial[hkt.IdentW]) bool { return false },
	}
}

func TestDefaultTrials(t *testing.T) {
	reports := hkt.CheckLaws([]hkt.Law[hkt.IdentW]{alwaysHolds()}, identSource(), hkt.RunConfig{Seed: 1})
	require.Len(t, reports, 1)
	require.True(t, reports[0].Passed())
	require.Equal(t, hkt.DefaultTrials, reports[0].Trials)
	require.Equal(t, 100, hkt.DefaultTrials)
}

func TestExplicitTrials(t *testing.T) {
	reports := hkt.CheckLaws([]hkt.Law[hkt.IdentW]{alwaysHolds()}, identSource(), hkt.RunConfig{Trials: 17, Seed: 1})
	require.Equal(t, 17, reports[0].Trials)
}

func TestFailFastStopsAtFirstCounterexample(t *testing.T) {
	reports := hkt.CheckLaws([]hkt.Law[hkt.IdentW]{neverHolds()}, identSource(), hkt.RunConfig{Seed: 2})
	require.False(t, reports[0].Passed())
	require.Equal(t, 1, reports[0].Trials)
	require.Equal(t, "never holds", reports[0].Violation.Law)
}

// A violation in one law never shortens another law's run.
func TestLawIndependence(t *testing.T) {
	laws := []hkt.Law[hkt.IdentW]{neverHolds(), alwaysHolds()}
	reports := hkt.CheckLaws(laws, identSource(), hkt.RunConfig{Seed: 3})

	require.Equal(t, 1, reports[0].Trials)
	require.True(t, reports[1].Passed())
	require.Equal(t, hkt.DefaultTrials, reports[1].Trials)
}

// Two runs with the same seed draw identical trials and find the same
// counterexample.
func TestRunDeterminism(t *testing.T) {
	flaky := hkt.Law[hkt.IdentW]{
		Name:  "non-negative seed",
		Check: func(tr hkt.Trial[hkt.IdentW]) bool { return tr.Seed >= 0 },
	}
	laws := []hkt.Law[hkt.IdentW]{flaky, alwaysHolds()}

	a := hkt.CheckLaws(laws, identSource(), hkt.RunConfig{Seed: 99})
	b := hkt.CheckLaws(laws, identSource(), hkt.RunConfig{Seed: 99})

	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].Law, b[i].Law)
		require.Equal(t, a[i].Trials, b[i].Trials)
		if a[i].Violation != nil {
			require.NotNil(t, b[i].Violation)
			require.Equal(t, *a[i].Violation, *b[i].Violation)
		} else {
			require.Nil(t, b[i].Violation)
		}
	}
}

func TestViolationsFilter(t *testing.T) {
	laws := []hkt.Law[hkt.IdentW]{alwaysHolds(), neverHolds(), alwaysHolds()}
	reports := hkt.CheckLaws(laws, identSource(), hkt.RunConfig{Seed: 4})

	vs := hkt.Violations(reports)
	require.Len(t, vs, 1)
	require.Equal(t, "never holds", vs[0].Law)
}

func TestViolationError(t *testing.T) {
	reports := hkt.CheckLaws([]hkt.Law[hkt.IdentW]{neverHolds()}, identSource(), hkt.RunConfig{Seed: 5})
	msg := reports[0].Violation.Error()
	require.Contains(t, msg, `"never holds"`)
	require.Contains(t, msg, "seed=")
	require.Contains(t, msg, "sample=")
}

func TestViolationRecordsPoolIndices(t *testing.T) {
	reports := hkt.CheckLaws([]hkt.Law[hkt.IdentW]{neverHolds()}, identSource(), hkt.RunConfig{Seed: 6})
	v := reports[0].Violation
	require.GreaterOrEqual(t, v.FIdx, 0)
	require.Less(t, v.FIdx, 5)
	require.GreaterOrEqual(t, v.GIdx, 0)
	require.Less(t, v.GIdx, 5)
	require.GreaterOrEqual(t, v.Seed, -1000)
	require.LessOrEqual(t, v.Seed, 1000)
}

func TestDefaultPool(t *testing.T) {
	pool := hkt.DefaultPool()
	require.Len(t, pool, 5)
	require.Equal(t, 13, pool[0](13), "pool[0] is the identity")

	src := hkt.MakeSampleSource(hkt.IdentOf[int], nil)
	require.Len(t, src.Pool, 5)

	custom := []func(int) int{func(x int) int { return x }}
	src = hkt.MakeSampleSource(hkt.IdentOf[int], custom)
	require.Len(t, src.Pool, 1)
}

// Trials use the seed-to-slot lifting: every trial sample matches its
// recorded seed.
func TestTrialSampleMatchesSeed(t *testing.T) {
	probe := hkt.Law[hkt.IdentW]{
		Name: "sample matches seed",
		Check: func(tr hkt.Trial[hkt.IdentW]) bool {
			return hkt.NarrowIdent(tr.Sample).Value == tr.Seed
		},
	}
	reports := hkt.CheckLaws([]hkt.Law[hkt.IdentW]{probe}, identSource(), hkt.RunConfig{Seed: 7})
	require.True(t, reports[0].Passed())
}
