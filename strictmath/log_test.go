package strictmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogSpecialCases(t *testing.T) {
	assert.True(t, math.IsInf(Log(0), -1), "Log(+0) should be -Inf")
	assert.True(t, math.IsInf(Log(math.Copysign(0, -1)), -1), "Log(-0) should be -Inf")
	assert.True(t, math.IsInf(Log(math.Inf(1)), 1), "Log(+Inf) should be +Inf")
	assert.True(t, math.IsNaN(Log(math.Inf(-1))), "Log(-Inf) should be NaN")
	assert.True(t, math.IsNaN(Log(-1)), "Log(-1) should be NaN")
	assert.True(t, math.IsNaN(Log(-math.SmallestNonzeroFloat64)), "Log(-min subnormal) should be NaN")
	assert.True(t, math.IsNaN(Log(math.NaN())), "Log(NaN) should be NaN")
	assert.Equal(t, uint64(0), math.Float64bits(Log(1)), "Log(1) should be +0")
}

// Expected values are what java.lang.StrictMath.log returns. Note Log(3), which differs
// from the correctly rounded result by one ulp.
func TestLogKnownValues(t *testing.T) {
	testCases := []struct {
		x        float64
		expected float64
	}{
		{2, 0.6931471805599453},
		{0.5, -0.6931471805599453},
		{3, 1.0986122886681096},
		{10, 2.302585092994046},
		{100, 4.605170185988092},
		{0.1, -2.3025850929940455},
		{math.E, 1.0},
		{123456.789, 11.723646487185881},
		{1.0000001, 9.999999505838704e-08},
		{0.9999999, -1.0000000494736474e-07},
		{1e-300, -690.7755278982137},
		{1e-310, -713.8013788281542},
		{math.SmallestNonzeroFloat64, -744.4400719213812},
		{math.MaxFloat64, 709.782712893384},
	}

	for _, tc := range testCases {
		result := Log(tc.x)
		assert.True(t, result == tc.expected, "Log(%v): expected %v, got %v", tc.x, tc.expected, result)
	}
}

// Expected values are what java.lang.StrictMath.log returns for inputs where contracting
// the polynomial evaluation into fused multiply-adds changes the last bit, so the test
// fails on FMA architectures if any product is left unwrapped.
func TestLogFusionSensitiveValues(t *testing.T) {
	testCases := []struct {
		x        float64
		expected float64
	}{
		{0.3529186711942863, -1.0415176418107541},
		{0.31561619382719697, -1.1532283800872605},
		{0.6974673433962383, -0.3602995858862845},
		{0.6954043294193755, -0.3632618336305525},
		{0.7798354916471788, -0.24867228968739263},
		{0.7007300286067447, -0.3556325893694239},
		{0.14606145661110415, -1.9237278101498814},
		{0.17369348101562598, -1.7504631365739163},
		{0.17724682886364873, -1.730212004485097},
		{0.6950451808898969, -0.3637784270556325},
		{0.702289577678775, -0.3534094561967164},
		{0.7002260366866486, -0.35635208651044614},
		{0.7070075219900672, -0.3467139738351355},
		{0.17091087036393826, -1.76661308430682},
		{0.17466044062437758, -1.7449115292447936},
		{0.7075964608700072, -0.34588131830595215},
		{0.6905303100784256, -0.370295411254873},
		{0.762027041654876, -0.2717732361891078},
		{0.8931425414075997, -0.11300909000651059},
		{0.6968410792104117, -0.3611979010908509},
		{0.3495531704857807, -1.0510995958727989},
		{0.6956807845194012, -0.3628643667884518},
		{0.7058903961590023, -0.3482952997745467},
		{1.3873915393867924, 0.32742539377171276},
	}

	for _, tc := range testCases {
		result := Log(tc.x)
		assert.True(t, result == tc.expected, "Log(%v): expected %v, got %v", tc.x, tc.expected, result)
	}
}

func TestLogPowersOfTwo(t *testing.T) {
	for k := -1074; k <= 1023; k++ {
		x := math.Ldexp(1, k)
		dk := float64(k)
		expected := float64(dk*ln2Hi) + float64(dk*ln2Lo)
		assert.True(t, Log(x) == expected, "Log(2^%d): expected %v, got %v", k, expected, Log(x))
	}
}

// TestLogWithinOneUlp compares against the platform logarithm, which may round
// differently but never by more than one ulp. Subnormal inputs are left to
// TestLogKnownValues: the amd64 assembly behind math.Log is far off for them.
func TestLogWithinOneUlp(t *testing.T) {
	rounds := 5_000_000
	if testing.Short() {
		rounds = 100_000
	}
	state := uint64(0x1234567890ABCDEF)
	for i := range rounds {
		state ^= state >> 12
		state ^= state << 25
		state ^= state >> 27
		bits := (state * 0x2545F4914F6CDD1D) >> 1 // positive values only
		if i%2 == 0 {
			// concentrate half of the samples around 1, where cancellation hurts most
			bits = 0x3fe0000000000000 + bits%0x0020000000000000
		}
		x := math.Float64frombits(bits)
		if math.IsNaN(x) || math.IsInf(x, 0) || bits < 0x0010000000000000 {
			continue
		}
		got := Log(x)
		want := math.Log(x)
		gb, wb := int64(math.Float64bits(got)), int64(math.Float64bits(want))
		if math.Signbit(got) != math.Signbit(want) || gb-wb > 1 || wb-gb > 1 {
			t.Fatalf("Log(%v) = %v, platform says %v", x, got, want)
		}
	}
}

func BenchmarkLog(b *testing.B) {
	x := 0.12345
	var sink float64
	for b.Loop() {
		sink = Log(x)
	}
	_ = sink
}
