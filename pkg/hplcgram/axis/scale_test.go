package axis

import (
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/models"
)

func TestNice(t *testing.T) {
	tests := []struct {
		max      float64
		expected models.AxisScale
	}{
		{0, models.AxisScale{Upper: 5, Step: 1}},
		{0.3, models.AxisScale{Upper: 5, Step: 1}},
		{3, models.AxisScale{Upper: 5, Step: 1}},
		{4.6, models.AxisScale{Upper: 6, Step: 1}},
		{10, models.AxisScale{Upper: 12, Step: 2}},
		{47, models.AxisScale{Upper: 60, Step: 10}},
		{100, models.AxisScale{Upper: 120, Step: 20}},
		{101.3, models.AxisScale{Upper: 120, Step: 20}},
		{250, models.AxisScale{Upper: 300, Step: 50}},
		{999, models.AxisScale{Upper: 1200, Step: 200}},
		{1234, models.AxisScale{Upper: 1400, Step: 200}},
		{50000, models.AxisScale{Upper: 60000, Step: 10000}},
	}

	for _, tt := range tests {
		result, err := Nice(tt.max, YParams())
		if err != nil {
			t.Fatalf("Nice(%v) failed: %v", tt.max, err)
		}
		if result != tt.expected {
			t.Errorf("Nice(%v) = %+v, expected %+v", tt.max, result, tt.expected)
		}
	}
}

func TestNiceSmallValuesWithoutFloor(t *testing.T) {
	p := Params{Margin: 1.1, Divisions: 4.5}
	tests := []struct {
		max      float64
		expected models.AxisScale
	}{
		{0.04, models.AxisScale{Upper: 0.05, Step: 0.01}},
		{0.3, models.AxisScale{Upper: 0.4, Step: 0.1}},
		{3, models.AxisScale{Upper: 4, Step: 1}},
	}
	for _, tt := range tests {
		result, err := Nice(tt.max, p)
		if err != nil {
			t.Fatalf("Nice(%v) failed: %v", tt.max, err)
		}
		if result != tt.expected {
			t.Errorf("Nice(%v) = %+v, expected %+v", tt.max, result, tt.expected)
		}
	}
}

// leadingDigit returns the first significant digit of v.
func leadingDigit(v float64) int {
	return int(strconv.FormatFloat(v, 'e', 3, 64)[0] - '0')
}

func TestNiceProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	p := YParams()
	for i := 0; i < 5000; i++ {
		max := math.Pow(10, r.Float64()*10-3)
		s, err := Nice(max, p)
		if err != nil {
			t.Fatalf("Nice(%v) failed: %v", max, err)
		}
		if s.Step <= 0 {
			t.Fatalf("Nice(%v): non-positive step %v", max, s.Step)
		}
		if s.Upper < max*1.05 {
			t.Errorf("Nice(%v): upper %v below 5%% headroom", max, s.Upper)
		}
		k := s.Upper / s.Step
		if math.Abs(k-math.Round(k)) > 1e-6 {
			t.Errorf("Nice(%v): upper %v is not a multiple of step %v", max, s.Upper, s.Step)
		}
		if d := leadingDigit(s.Step); d != 1 && d != 2 && d != 5 {
			t.Errorf("Nice(%v): step %v has leading digit %d", max, s.Step, d)
		}
		// Smallest multiple: one step less would not cover the target
		if s.Upper > p.MinUpper && s.Upper-s.Step >= max*p.Margin*(1+1e-9) {
			t.Errorf("Nice(%v): upper %v is not the smallest multiple of %v", max, s.Upper, s.Step)
		}
	}
}

func TestNiceSnapThresholds(t *testing.T) {
	tests := []struct {
		ideal, expected float64
	}{
		{1.0, 1},
		{1.41, 1},
		{1.42, 2},
		{3.16, 2},
		{3.17, 5},
		{7.07, 5},
		{7.08, 10},
		{0.25, 0.2},
		{0.04, 0.05},
		{140, 100},
		{150, 200},
	}
	for _, tt := range tests {
		if got := niceStep(tt.ideal); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("niceStep(%v) = %v, expected %v", tt.ideal, got, tt.expected)
		}
	}
}

func TestNiceRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Nice(v, YParams()); !errors.Is(err, ErrNonFinite) {
			t.Errorf("Nice(%v) error = %v, expected ErrNonFinite", v, err)
		}
	}
	if _, err := Nice(10, Params{Margin: 0, Divisions: 4}); err == nil {
		t.Error("Expected error for zero margin")
	}
}

func TestTimeStep(t *testing.T) {
	tests := []struct {
		span, expected float64
	}{
		{5, 1},
		{10, 1},
		{10.5, 5},
		{30, 5},
		{45, 10},
		{60, 10},
		{90, 20},
	}
	for _, tt := range tests {
		if got := TimeStep(tt.span); got != tt.expected {
			t.Errorf("TimeStep(%v) = %v, expected %v", tt.span, got, tt.expected)
		}
	}
}

func TestTimeScale(t *testing.T) {
	s, err := TimeScale(10, ModeTable)
	if err != nil || s != (models.AxisScale{Upper: 10, Step: 1}) {
		t.Errorf("TimeScale(10, table) = %+v, %v", s, err)
	}
	s, err = TimeScale(25, ModeNice)
	// 25/8 = 3.125 snaps down to 2
	if err != nil || s != (models.AxisScale{Upper: 25, Step: 2}) {
		t.Errorf("TimeScale(25, nice) = %+v, %v", s, err)
	}
	if _, err := TimeScale(10, "log"); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if _, err := TimeScale(math.NaN(), ModeTable); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Expected ErrNonFinite, got %v", err)
	}
}

func TestDecimals(t *testing.T) {
	tests := []struct {
		step     float64
		expected int
	}{
		{1, 0},
		{20, 0},
		{0.5, 1},
		{0.2, 1},
		{0.05, 2},
		{0.001, 3},
	}
	for _, tt := range tests {
		if got := Decimals(tt.step); got != tt.expected {
			t.Errorf("Decimals(%v) = %d, expected %d", tt.step, got, tt.expected)
		}
	}
}
