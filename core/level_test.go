package core

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Warning, "WARNING"},
		{Error, "ERROR"},
		{Fatal, "FATAL"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(Debug < Info && Info < Warning && Warning < Error && Error < Fatal) {
		t.Fatal("levels are not totally ordered Debug < Info < Warning < Error < Fatal")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", Debug},
		{"DEBUG", Debug},
		{"Info", Info},
		{"warning", Warning},
		{"  WARNING ", Warning},
		{"error", Error},
		{"fatal", Fatal},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if err != nil {
				t.Fatalf("ParseLevel(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	_, err := ParseLevel("trace")
	if err == nil {
		t.Fatal("ParseLevel(\"trace\") expected an error, got nil")
	}
}

func TestStringToLogType_RoundTrip(t *testing.T) {
	for _, l := range []Level{Debug, Info, Warning, Error, Fatal} {
		got, err := ParseLevel(l.String())
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", l.String(), err)
		}
		if got != l {
			t.Errorf("ParseLevel(Level(%d).String()) = %v, want %v", l, got, l)
		}
	}
}
