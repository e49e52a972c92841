package fire

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"goldfire/control"
	"goldfire/logo"
)

// scripted replays fixed seed rows.
type scripted struct {
	rows []uint8
}

func (s *scripted) Fill(dst []uint8) {
	for i := range dst {
		dst[i] = s.rows[i%len(s.rows)]
	}
}

func constant(v uint8) *scripted { return &scripted{rows: []uint8{v}} }

func mustEngine(t *testing.T, cfg Config, src SeedSource) *Engine {
	t.Helper()
	e, err := New(cfg, src)
	if err != nil {
		t.Fatalf("New(%+v) failed: %v", cfg, err)
	}
	return e
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"narrow", Config{Width: 2, Height: 10}, ErrDimensions},
		{"negative first row", Config{Width: 8, Height: 10, FirstRow: -1}, ErrDimensions},
		{"short", Config{Width: 8, Height: 7, FirstRow: 5}, ErrDimensions},
		{"minimal", Config{Width: 3, Height: 8, FirstRow: 5}, nil},
		{"mirror overlap", Config{Width: 8, Height: 10, FirstRow: 4, Mirror: true}, ErrMirror},
		{"mirror fits", Config{Width: 8, Height: 10, FirstRow: 5, Mirror: true}, nil},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.want == nil && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
	if _, err := New(Config{Width: 4, Height: 4}, nil); err == nil {
		t.Error("New accepted a nil seed source")
	}
}

func TestCacheTable(t *testing.T) {
	c := Cache()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if int(c[a][b]) != (a+b)>>2 {
				t.Fatalf("cache[%d][%d] = %d", a, b, c[a][b])
			}
		}
	}
}

// cache[a][b]+cache[c][d] depends only on a+b and c+d, so walking every pair
// of pair sums covers all a, b, c, d in [0,255].
func TestCacheDriftAtMostOne(t *testing.T) {
	for x := 0; x <= 510; x++ {
		for y := 0; y <= 510; y++ {
			approx := x>>2 + y>>2
			exact := (x + y) >> 2
			if d := exact - approx; d < 0 || d > 1 {
				t.Fatalf("pair sums %d,%d: exact %d approx %d", x, y, exact, approx)
			}
		}
	}
	if got, want := Cache().Average(1, 1, 1, 1), ExactAverage(1, 1, 1, 1); got != 0 || want != 1 {
		t.Fatalf("Average(1,1,1,1) = %d, exact %d; expected the documented drift", got, want)
	}
}

func fillActive(e *Engine, v uint8) {
	w := e.Width()
	for i := e.FirstRow() * w; i < len(e.pix); i++ {
		e.pix[i] = v
	}
}

func TestUniformFieldIsStable(t *testing.T) {
	tests := []struct {
		name  string
		exact bool
		v     uint8
	}{
		{"exact odd", true, 37},
		{"exact max", true, 255},
		{"cached even", false, 200},
	}
	for _, tt := range tests {
		cfg := Config{Width: 16, Height: 12, FirstRow: 4, Exact: tt.exact}
		e := mustEngine(t, cfg, constant(tt.v))
		fillActive(e, tt.v)
		e.Advance(nil)
		for y := cfg.FirstRow; y < cfg.Height; y++ {
			for x := 0; x < cfg.Width; x++ {
				if got := e.pix[y*cfg.Width+x]; got != tt.v {
					t.Fatalf("%s: (%d,%d) = %d, want %d", tt.name, x, y, got, tt.v)
				}
			}
		}
	}
}

func TestWrapColumns(t *testing.T) {
	tests := []struct {
		name string
		seed []uint8
		want []uint8
	}{
		{"left wraps to last column", []uint8{0, 0, 0, 200, 0, 0, 0, 0}, []uint8{50, 0, 50, 50}},
		{"right wraps to first column", []uint8{200, 0, 0, 0, 0, 0, 0, 0}, []uint8{50, 50, 0, 50}},
	}
	for _, tt := range tests {
		for _, exact := range []bool{false, true} {
			e := mustEngine(t, Config{Width: 4, Height: 3, Exact: exact}, &scripted{rows: tt.seed})
			e.Advance(nil)
			if got := e.pix[8:12]; !bytes.Equal(got, tt.want) {
				t.Errorf("%s (exact=%v): bottom row = %v, want %v", tt.name, exact, got, tt.want)
			}
		}
	}
}

func TestSeedRowsFeedBottomTwoRows(t *testing.T) {
	// Seed row 0 sits directly below the bottom row, seed row 1 below that.
	e := mustEngine(t, Config{Width: 4, Height: 3, Exact: true}, &scripted{rows: []uint8{0, 0, 0, 200, 0, 0, 0, 0}})
	e.Advance(nil)
	want := []uint8{
		0, 0, 0, 0,
		0, 0, 0, 50,
		50, 0, 50, 50,
	}
	if !bytes.Equal(e.pix, want) {
		t.Fatalf("pix = %v, want %v", e.pix, want)
	}
}

func TestReadsPreviousFrame(t *testing.T) {
	e := mustEngine(t, Config{Width: 4, Height: 3, Exact: true}, constant(0))
	copy(e.pix[8:], []uint8{100, 100, 100, 100})
	e.Advance(nil)
	// Row 1 must see row 2 before row 2 decays to zero this frame.
	if got := e.pix[4]; got != 75 {
		t.Fatalf("row 1 = %d, want 75", got)
	}
	if got := e.pix[0]; got != 25 {
		t.Fatalf("row 0 = %d, want 25 (row 2 from the previous frame)", got)
	}
	if got := e.pix[8]; got != 0 {
		t.Fatalf("row 2 = %d, want 0", got)
	}
}

func TestRowsAboveFirstStayDark(t *testing.T) {
	cfg := Config{Width: 64, Height: 40, FirstRow: 20}
	e := mustEngine(t, cfg, NewWeightedSeeds(Hot, 7))
	for i := 0; i < 100; i++ {
		e.Advance(nil)
	}
	for i, v := range e.pix[:cfg.FirstRow*cfg.Width] {
		if v != 0 {
			t.Fatalf("pixel %d above first row = %d", i, v)
		}
	}
	if e.Frames() != 100 {
		t.Fatalf("Frames = %d", e.Frames())
	}
}

func TestValuesBoundedBySeedHeat(t *testing.T) {
	for _, exact := range []bool{false, true} {
		e := mustEngine(t, Config{Width: 50, Height: 30, FirstRow: 10, Exact: exact}, NewWeightedSeeds(Ember, 3))
		for i := 0; i < 60; i++ {
			e.Advance(nil)
		}
		for i, v := range e.pix {
			if v > Ember.Hot {
				t.Fatalf("exact=%v: pixel %d = %d exceeds seed heat %d", exact, i, v, Ember.Hot)
			}
		}
	}
}

func TestDeterministicForSeed(t *testing.T) {
	cfg := Config{Width: 80, Height: 50, FirstRow: 30}
	a := mustEngine(t, cfg, NewWeightedSeeds(Classic, 99))
	b := mustEngine(t, cfg, NewWeightedSeeds(Classic, 99))
	c := mustEngine(t, cfg, NewWeightedSeeds(Classic, 100))
	for i := 0; i < 25; i++ {
		a.Advance(nil)
		b.Advance(nil)
		c.Advance(nil)
	}
	if !bytes.Equal(a.Pixels(), b.Pixels()) {
		t.Fatal("equal seeds produced different buffers")
	}
	if bytes.Equal(a.Pixels(), c.Pixels()) {
		t.Fatal("different seeds produced identical buffers")
	}
}

func TestExactAndCachedDiverge(t *testing.T) {
	cfg := Config{Width: 80, Height: 50, FirstRow: 30}
	a := mustEngine(t, cfg, NewWeightedSeeds(Classic, 5))
	cfg.Exact = true
	b := mustEngine(t, cfg, NewWeightedSeeds(Classic, 5))
	for i := 0; i < 10; i++ {
		a.Advance(nil)
		b.Advance(nil)
	}
	if bytes.Equal(a.Pixels(), b.Pixels()) {
		t.Fatal("exact mode is indistinguishable from the cached average")
	}
}

func TestMirror(t *testing.T) {
	cfg := Config{Width: 5, Height: 8, FirstRow: 4, Mirror: true}
	e := mustEngine(t, cfg, NewWeightedSeeds(Hot, 11))
	for i := 0; i < 5; i++ {
		e.Advance(nil)
	}
	n := (cfg.Height - cfg.FirstRow) * cfg.Width
	band := e.pix[cfg.FirstRow*cfg.Width:]
	for i := 0; i < n; i++ {
		if e.pix[i] != band[n-1-i] {
			t.Fatalf("mirror[%d] = %d, want %d", i, e.pix[i], band[n-1-i])
		}
	}
}

func TestStampWordOnce(t *testing.T) {
	cfg := Config{Width: 320, Height: 200, FirstRow: 145}
	e := mustEngine(t, cfg, constant(0))
	word := logo.Generate()
	if err := e.SetLogo(word); err != nil {
		t.Fatalf("SetLogo failed: %v", err)
	}
	x0, y0 := e.LogoOrigin()
	if x0 != 88 || y0 != 162 {
		t.Fatalf("origin = %d,%d, want 88,162", x0, y0)
	}

	st := control.New(1, 1)
	st.Apply(control.ShowWord)
	e.Advance(st)
	if st.WordPending() {
		t.Fatal("word flag not cleared")
	}
	for y := 0; y < word.Height; y++ {
		for x, v := range word.Row(y) {
			got := e.pix[(y0+y)*cfg.Width+x0+x]
			if v != logo.Background && got != v {
				t.Fatalf("logo pixel (%d,%d) = %d, want %d", x, y, got, v)
			}
			if v == logo.Background && got != 0 {
				t.Fatalf("background (%d,%d) overwrote fire with %d", x, y, got)
			}
		}
	}

	for i := 0; i < 60; i++ {
		e.Advance(st)
	}
	for i, v := range e.pix {
		if v != 0 {
			t.Fatalf("pixel %d = %d; stamped word should burn out without reseeding", i, v)
		}
	}
}

func TestSetLogoFit(t *testing.T) {
	e := mustEngine(t, Config{Width: 100, Height: 30, FirstRow: 15}, constant(0))
	if err := e.SetLogo(logo.Generate()); !errors.Is(err, ErrLogoFit) {
		t.Fatalf("err = %v, want ErrLogoFit", err)
	}
	if err := e.SetLogo(nil); !errors.Is(err, ErrLogoFit) {
		t.Fatalf("nil logo err = %v", err)
	}
	st := control.New(1, 1)
	st.Apply(control.ShowWord)
	e.Advance(st)
	if st.WordPending() {
		t.Fatal("word flag must be consumed even without a logo")
	}
}

func TestReset(t *testing.T) {
	e := mustEngine(t, Config{Width: 8, Height: 8, FirstRow: 2}, constant(255))
	e.Advance(nil)
	e.Reset()
	if e.Frames() != 0 || bytes.Count(e.Pixels(), []byte{0}) != len(e.Pixels()) {
		t.Fatal("Reset left state behind")
	}
}

func TestParsePolicy(t *testing.T) {
	for _, name := range PolicyNames() {
		p, err := ParsePolicy(name)
		if err != nil || p.Name != name {
			t.Errorf("ParsePolicy(%q) = %v, %v", name, p, err)
		}
	}
	if p, _ := ParsePolicy(""); p != Classic {
		t.Errorf("empty name = %v, want classic", p)
	}
	if _, err := ParsePolicy("inferno"); !errors.Is(err, ErrPolicy) {
		t.Errorf("err = %v, want ErrPolicy", err)
	}
}

func TestWeightedSeedsRatio(t *testing.T) {
	tests := []struct {
		p    Policy
		want float64
	}{
		{Classic, 0.25},
		{Hot, 1.0 / 3},
		{Calm, 0.2},
		{Ember, 4.0 / 7},
	}
	buf := make([]uint8, 200000)
	for _, tt := range tests {
		NewWeightedSeeds(tt.p, 1).Fill(buf)
		hot := 0
		for _, v := range buf {
			switch v {
			case tt.p.Hot:
				hot++
			case 0:
			default:
				t.Fatalf("%s: unexpected seed value %d", tt.p.Name, v)
			}
		}
		if got := float64(hot) / float64(len(buf)); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("%s: hot ratio %.3f, want %.3f", tt.p.Name, got, tt.want)
		}
	}
}

func TestWeightedSeedsInvalidPolicy(t *testing.T) {
	w := NewWeightedSeeds(Policy{Name: "broken"}, 1)
	if w.Policy() != Classic {
		t.Fatalf("policy = %v, want classic", w.Policy())
	}
}

func BenchmarkAdvance(b *testing.B) {
	for _, exact := range []bool{false, true} {
		name := "cached"
		if exact {
			name = "exact"
		}
		b.Run(name, func(b *testing.B) {
			e, _ := New(Config{Width: 320, Height: 200, FirstRow: 145, Exact: exact}, NewWeightedSeeds(Classic, 1))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.Advance(nil)
			}
		})
	}
}
