package viewport

import (
	"errors"
	"math"
	"testing"
)

func TestComputeSizeScenarios(t *testing.T) {
	tests := []struct {
		name          string
		orientation   Orientation
		windowW       float64
		windowH       float64
		width, height float64
		area          GameArea
	}{
		{"landscape at design ratio", Landscape, 1920, 1080, 1280, 720, LandscapeArea},
		{"portrait at design ratio", Portrait, 1080, 1920, 720, 1280, PortraitArea},
		{"landscape ultrawide grows width", Landscape, 3440, 1440, 720 * 3440.0 / 1440.0, 720, LandscapeArea},
		{"landscape 4:3 keeps design", Landscape, 1024, 768, 1280, 720, LandscapeArea},
		{"portrait tall phone grows height", Portrait, 1080, 2400, 720, 1600, PortraitArea},
		{"portrait on a wide window keeps design", Portrait, 1920, 1080, 720, 1280, PortraitArea},
		{"auto picks landscape when wide", Auto, 1920, 1080, 1280, 720, LandscapeArea},
		{"auto picks portrait when tall", Auto, 1080, 1920, 720, 1280, PortraitArea},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeSize(tc.orientation, tc.windowW, tc.windowH)
			if err != nil {
				t.Fatalf("ComputeSize() error: %v", err)
			}
			if math.Abs(got.Width-tc.width) > 1e-9 || math.Abs(got.Height-tc.height) > 1e-9 {
				t.Errorf("ComputeSize() = %vx%v, expected %vx%v", got.Width, got.Height, tc.width, tc.height)
			}
			if got.Area != tc.area {
				t.Errorf("ComputeSize() area = %+v, expected %+v", got.Area, tc.area)
			}
		})
	}
}

func TestComputeSizeRatioProperty(t *testing.T) {
	windows := [][2]float64{
		{1, 1}, {320, 240}, {640, 384}, {800, 600}, {1080, 1920},
		{1920, 1080}, {2560, 1080}, {375, 812}, {1, 4000}, {4000, 1},
	}

	for _, o := range []Orientation{Landscape, Portrait} {
		for _, w := range windows {
			got, err := ComputeSize(o, w[0], w[1])
			if err != nil {
				t.Fatalf("ComputeSize(%v, %v, %v) error: %v", o, w[0], w[1], err)
			}
			if got.Width <= 0 || got.Height <= 0 {
				t.Errorf("ComputeSize(%v, %v) returned non-positive size %vx%v", o, w, got.Width, got.Height)
			}

			ratio := w[0] / w[1]
			want := math.Max(ratio, got.Area.Factor)
			if o == Portrait {
				want = math.Min(ratio, got.Area.Factor)
			}
			if math.Abs(got.Width/got.Height-want) > 1e-9*want {
				t.Errorf("%v %v: canvas ratio %v, expected %v", o, w, got.Width/got.Height, want)
			}

			again, _ := ComputeSize(o, w[0], w[1])
			if again != got {
				t.Errorf("%v %v: ComputeSize is not idempotent: %+v vs %+v", o, w, got, again)
			}
		}
	}
}

func TestComputeSizeRejectsInvalidWindow(t *testing.T) {
	for _, w := range [][2]float64{{0, 0}, {800, 0}, {0, 600}, {-1, 600}, {800, -5}} {
		_, err := ComputeSize(Landscape, w[0], w[1])
		if !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("ComputeSize(%v) error = %v, expected ErrInvalidWindow", w, err)
		}
	}
}

func TestCustomSizer(t *testing.T) {
	s := NewSizer(NewGameArea(360, 640), NewGameArea(640, 360))

	got, err := s.ComputeSize(Landscape, 1280, 720)
	if err != nil {
		t.Fatalf("ComputeSize() error: %v", err)
	}
	if got.Width != 640 || got.Height != 360 {
		t.Errorf("custom landscape = %vx%v, expected 640x360", got.Width, got.Height)
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"landscape", Landscape, false},
		{"Portrait", Portrait, false},
		{" p ", Portrait, false},
		{"", Auto, false},
		{"auto", Auto, false},
		{"sideways", Auto, true},
	}

	for _, tc := range tests {
		got, err := ParseOrientation(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseOrientation(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownOrientation) {
			t.Errorf("ParseOrientation(%q) error should wrap ErrUnknownOrientation", tc.in)
		}
		if got != tc.want {
			t.Errorf("ParseOrientation(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestOrientationTextRoundTrip(t *testing.T) {
	var o Orientation
	if err := o.UnmarshalText([]byte("portrait")); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	text, _ := o.MarshalText()
	if string(text) != "portrait" {
		t.Errorf("MarshalText() = %q, expected portrait", text)
	}
}

func TestCellMetricsWindow(t *testing.T) {
	w, h := DefaultCellMetrics().Window(80, 24)
	if w != 640 || h != 384 {
		t.Errorf("Window(80, 24) = %vx%v, expected 640x384", w, h)
	}

	w, h = CellMetrics{}.Window(10, 10)
	if w != 80 || h != 160 {
		t.Errorf("zero metrics should fall back to default, got %vx%v", w, h)
	}
}
