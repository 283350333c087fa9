// format_test.go - Number formatting round-trip tests

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionVulkan

License: GPLv3 or later
*/

package softfloat

import (
	"math"
	"strings"
	"testing"
)

func TestAppendUint(t *testing.T) {
	cases := []struct {
		value     uint64
		base      uint
		minDigits int
		want      string
	}{
		{0, 10, 1, "0"},
		{12345, 10, 1, "12345"},
		{255, 16, 1, "ff"},
		{255, 16, 4, "00ff"},
		{5, 2, 8, "00000101"},
		{math.MaxUint64, 10, 1, "18446744073709551615"},
		{math.MaxUint64, 2, 1, strings.Repeat("1", 64)},
		{35, 36, 1, "z"},
	}
	for _, c := range cases {
		if got := string(AppendUint(nil, c.value, c.base, c.minDigits)); got != c.want {
			t.Fatalf("AppendUint(%d, base %d): got %q want %q", c.value, c.base, got, c.want)
		}
	}
}

func TestAppendInt(t *testing.T) {
	cases := []struct {
		value int64
		base  uint
		want  string
	}{
		{0, 10, "0"},
		{-1, 10, "-1"},
		{-255, 16, "-ff"},
		{math.MinInt64, 10, "-9223372036854775808"},
		{math.MaxInt64, 10, "9223372036854775807"},
	}
	for _, c := range cases {
		if got := string(AppendInt(nil, c.value, c.base)); got != c.want {
			t.Fatalf("AppendInt(%d, base %d): got %q want %q", c.value, c.base, got, c.want)
		}
	}
}

func TestFixedBuffers(t *testing.T) {
	var buf [8]byte
	n := UintToBuffer(123456789, buf[:4], true, 10, 1)
	if n != 3 || string(buf[:3]) != "123" || buf[3] != 0 {
		t.Fatalf("truncated buffer: n=%d buf=%q", n, buf[:4])
	}
	n = UintToBuffer(42, buf[:], false, 10, 1)
	if n != 2 || string(buf[:2]) != "42" {
		t.Fatalf("plain buffer: n=%d", n)
	}
	if got := UintToBuffer(42, nil, true, 10, 1); got != 0 {
		t.Fatalf("empty buffer: got %d", got)
	}
	n = IntToBuffer(-7, buf[:], true, 10)
	if n != 2 || string(buf[:2]) != "-7" || buf[2] != 0 {
		t.Fatalf("signed buffer: n=%d buf=%q", n, buf[:3])
	}
	n = FloatToBuffer(0.5, buf[:], true, 10)
	if n != 3 || string(buf[:3]) != "0.5" {
		t.Fatalf("float buffer: n=%d buf=%q", n, buf[:n])
	}
}

func TestFormatFloatBasics(t *testing.T) {
	cases := []struct {
		value float64
		base  uint
		want  string
	}{
		{0, 10, "0"},
		{math.Copysign(0, -1), 10, "-0"},
		{math.Inf(1), 10, "Infinity"},
		{math.Inf(-1), 10, "-Infinity"},
		{1, 10, "1"},
		{-1, 10, "-1"},
		{100, 10, "100"},
		{0.5, 10, "0.5"},
		{0.5, 2, "0.1"},
		{3, 2, "11"},
		{255, 16, "ff"},
		{1e21, 10, "1e+21"},
		{1e-7, 10, "1e-7"},
	}
	for _, c := range cases {
		if got := FormatFloat(c.value, c.base); got != c.want {
			t.Fatalf("FormatFloat(%g, base %d): got %q want %q", c.value, c.base, got, c.want)
		}
	}
	if got := FormatFloat(math.NaN(), 10); got != "NaN" {
		t.Fatalf("NaN: got %q", got)
	}
}

func TestFormatOneThird(t *testing.T) {
	got := FormatFloat(1.0/3.0, 10)
	if !strings.HasPrefix(got, "0.3333333333333333") {
		t.Fatalf("1/3: got %q", got)
	}
	parsed, err := ParseFloat(got, 10)
	if err != nil {
		t.Fatal(err)
	}
	if parsed != 1.0/3.0 {
		t.Fatalf("1/3 round trip: got %g", parsed)
	}
}

func TestFloatRoundTripAllBases(t *testing.T) {
	bases := []uint{2, 8, 10, 16, 36}
	check := func(v float64) {
		for _, base := range bases {
			text := FormatFloat(v, base)
			parsed, err := ParseFloat(text, base)
			if err != nil {
				t.Fatalf("parse %q (base %d, from %g): %v", text, base, v, err)
			}
			if math.IsNaN(v) {
				if !math.IsNaN(parsed) {
					t.Fatalf("NaN round trip in base %d: got %g", base, parsed)
				}
				continue
			}
			if math.Float64bits(parsed) != math.Float64bits(v) {
				t.Fatalf("round trip of %g in base %d via %q: got %g (bits %016x want %016x)",
					v, base, text, parsed,
					math.Float64bits(parsed), math.Float64bits(v))
			}
		}
	}
	for _, v := range logSample(2000) {
		check(v)
	}
	for _, v := range specialValues {
		check(v)
	}
}

func TestParseFloatErrors(t *testing.T) {
	for _, text := range []string{"", "-", ".", "1x", "1e", "1e+", "12.34.5"} {
		if _, err := ParseFloat(text, 10); err == nil {
			t.Fatalf("expected error for %q", text)
		}
	}
}
