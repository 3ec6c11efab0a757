package ui

import (
	"strings"
	"testing"

	"github.com/ohm-tools/bandcode/internal/resistor"
)

func TestBandPaletteCoversAllColors(t *testing.T) {
	for _, c := range resistor.AllColors() {
		if _, ok := bandPalette[c]; !ok {
			t.Errorf("no palette entry for %s", c)
		}
	}
}

func TestRenderBandsContainsColorNames(t *testing.T) {
	bands := resistor.BandSequence{
		resistor.Yellow, resistor.Violet, resistor.Red, resistor.Gold,
	}
	out := RenderBands(bands)
	for _, c := range bands {
		if !strings.Contains(out, c.String()) {
			t.Errorf("rendered bands missing %s:\n%s", c, out)
		}
	}
}

func TestRenderBandListRoleLabels(t *testing.T) {
	bands := resistor.BandSequence{
		resistor.Yellow, resistor.Violet, resistor.Red, resistor.Gold,
	}
	out := RenderBandList(bands, 4)
	for _, label := range []string{"digit", "multiplier", "tolerance"} {
		if !strings.Contains(out, label) {
			t.Errorf("band list missing %q label:\n%s", label, out)
		}
	}
	if strings.Contains(out, "TCR") {
		t.Errorf("4-band list should not mention a TCR band:\n%s", out)
	}
}

func TestRenderBandListSixBands(t *testing.T) {
	bands := resistor.BandSequence{
		resistor.Brown, resistor.Black, resistor.Black,
		resistor.Black, resistor.Brown, resistor.Yellow,
	}
	out := RenderBandList(bands, 6)
	if !strings.Contains(out, "TCR") {
		t.Errorf("6-band list missing TCR label:\n%s", out)
	}
}

func TestRenderBandListLengthMismatch(t *testing.T) {
	bands := resistor.BandSequence{resistor.Red}
	out := RenderBandList(bands, 4)
	if out == "" {
		t.Error("expected fallback rendering for mismatched band list")
	}
}
