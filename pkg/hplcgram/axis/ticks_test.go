package axis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/models"
)

func TestTicks(t *testing.T) {
	got := Ticks(models.AxisScale{Upper: 120, Step: 20}, UnitIntensity)
	expected := []models.Tick{
		{Value: 0, Label: "0"},
		{Value: 20, Label: "20"},
		{Value: 40, Label: "40"},
		{Value: 60, Label: "60"},
		{Value: 80, Label: "80"},
		{Value: 100, Label: "100"},
		{Value: 120, Label: "mAU"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Ticks mismatch (-want +got):\n%s", diff)
	}
}

func TestTicksFractionalStep(t *testing.T) {
	got := Ticks(models.AxisScale{Upper: 0.6, Step: 0.2}, UnitIntensity)
	expected := []models.Tick{
		{Value: 0, Label: "0"},
		{Value: 0.2, Label: "0.2"},
		{Value: 0.4, Label: "0.4"},
		{Value: 0.6, Label: "mAU"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Ticks mismatch (-want +got):\n%s", diff)
	}
}

func TestTimeTicks(t *testing.T) {
	got := TimeTicks(models.AxisScale{Upper: 10, Step: 1}, UnitTime)
	if len(got) != 11 {
		t.Fatalf("Expected 11 ticks, got %d", len(got))
	}
	if got[0].Label != "0" || got[5].Label != "5" {
		t.Errorf("Unexpected labels %q, %q", got[0].Label, got[5].Label)
	}
	last := got[len(got)-1]
	if last.Value != 10 || last.Label != "min" {
		t.Errorf("Expected last tick {10 min}, got %+v", last)
	}
}

func TestTimeTicksAppendsSpan(t *testing.T) {
	got := TimeTicks(models.AxisScale{Upper: 12, Step: 5}, UnitTime)
	expected := []models.Tick{
		{Value: 0, Label: "0"},
		{Value: 5, Label: "5"},
		{Value: 10, Label: "10"},
		{Value: 12, Label: "min"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("TimeTicks mismatch (-want +got):\n%s", diff)
	}

}

func TestTimeTicksEndAtSpan(t *testing.T) {
	// 10 is within 90% of 10.5: it keeps the unit, the span gets a bare tick
	got := TimeTicks(models.AxisScale{Upper: 10.5, Step: 5}, UnitTime)
	expected := []models.Tick{
		{Value: 0, Label: "0"},
		{Value: 5, Label: "5"},
		{Value: 10, Label: "min"},
		{Value: 10.5},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("TimeTicks mismatch (-want +got):\n%s", diff)
	}

	for _, span := range []float64{0.7, 3.3, 10, 10.5, 12, 27.25, 61} {
		ticks := TimeTicks(models.AxisScale{Upper: span, Step: TimeStep(span)}, UnitTime)
		if first, last := ticks[0].Value, ticks[len(ticks)-1].Value; first != 0 || last != span {
			t.Errorf("TimeTicks(%v) spans [%v, %v], expected [0, %v]", span, first, last, span)
		}
	}
}

func TestTicksInvalid(t *testing.T) {
	if Ticks(models.AxisScale{}, UnitIntensity) != nil {
		t.Error("Expected nil ticks for zero scale")
	}
	if TimeTicks(models.AxisScale{Upper: 10}, UnitTime) != nil {
		t.Error("Expected nil ticks for zero step")
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		expected string
	}{
		{0, 0, "0"},
		{20, 0, "20"},
		{2, 1, "2"},
		{2.5, 1, "2.5"},
		{0.30000000000000004, 1, "0.3"},
		{0.05, 2, "0.05"},
		{1.5, 2, "1.5"},
	}
	for _, tt := range tests {
		if got := FormatTick(tt.v, tt.decimals); got != tt.expected {
			t.Errorf("FormatTick(%v, %d) = %q, expected %q", tt.v, tt.decimals, got, tt.expected)
		}
	}
}
