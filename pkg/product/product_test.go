package product

import (
	"strings"
	"testing"
)

func validRecord() *Product {
	return &Product{
		Name:       "Chocolate Golazo 25 g",
		Price:      890,
		SourceURL:  "https://mialmacen.cl/producto/chocolate-golazo-25-g",
		SiteHost:   "mialmacen.cl",
		Strategy:   "schema.org",
		Confidence: ConfidenceHigh,
	}
}

func TestValidate(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*Product)
	}{
		{"missing name", func(p *Product) { p.Name = "" }},
		{"negative price", func(p *Product) { p.Price = -1 }},
		{"bad source url", func(p *Product) { p.SourceURL = "no-es-url" }},
		{"missing host", func(p *Product) { p.SiteHost = "" }},
		{"unknown confidence", func(p *Product) { p.Confidence = "certain" }},
		{"name too long", func(p *Product) { p.Name = strings.Repeat("a", MaxNameLen+1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(rec)
			if err := rec.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestValidate_ZeroPriceIsComplete(t *testing.T) {
	rec := validRecord()
	rec.Price = 0
	if err := rec.Validate(); err != nil {
		t.Errorf("a priceless record must validate, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"corto", 10, "corto"},
		{"exacto", 6, "exacto"},
		{"recortado", 4, "reco"},
		{"áéíóú", 3, "áéí"}, // rune boundaries, not bytes
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
