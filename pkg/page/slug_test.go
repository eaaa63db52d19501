package page

import "testing"

func TestLooksLikeSiteName(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"MiTienda.cl", true},
		{"tienda.com - ofertas", true},
		{"Bienvenido a nuestra tienda", true},
		{"Home - Distribuidora", true},
		{"Todo lo que te conviene", true},
		{"ab", true},
		{"La Oferta", true},              // short bare-letter tagline
		{"Chocolate Golazo 25 g", false}, // digits break the tagline pattern
		{"Pilas Duracell Aa 40 Unidades", false},
		{"Detergente Líquido Concentrado Matic", false}, // long enough to trust
	}
	for _, tt := range tests {
		if got := LooksLikeSiteName(tt.text); got != tt.want {
			t.Errorf("LooksLikeSiteName(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestNameFromSlug(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://tienda.cl/producto/pilas-duracell-aa-40-unidades", "Pilas Duracell Aa 40 Unidades"},
		{"https://tienda.cl/p/chocolate-golazo-25-g", "Chocolate Golazo 25 g"},
		{"https://tienda.cl/p/arroz-grado-1-1kg", "Arroz Grado 1 1 kg"},
		{"https://tienda.cl/", ""},
		{"https://tienda.cl/p/ab", ""},   // segment too short
		{"https://tienda.cl/p/abc", ""},  // derived name too short
		{"https://tienda.cl/categoria/", "Categoria"}, // trailing slash, last real segment wins
	}
	for _, tt := range tests {
		p := mustPage(t, "<body></body>", tt.url)
		if got := p.NameFromSlug(); got != tt.want {
			t.Errorf("NameFromSlug(%s) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestSlugMatches(t *testing.T) {
	tests := []struct {
		url  string
		name string
		want bool
	}{
		{"https://tienda.cl/p/pilas-duracell-aa-40-unidades", "Pilas Duracell AA x40", true},
		{"https://tienda.cl/p/pilas-duracell-aa-40-unidades", "MiTienda: todo para ti", false},
		{"https://tienda.cl/p/chocolate-golazo", "Chocolates surtidos", true}, // substring containment
		{"https://tienda.cl/", "Cualquier nombre", true},                     // no slug, never rejects
		{"https://tienda.cl/p/cafe-grano", "", true},
	}
	for _, tt := range tests {
		p := mustPage(t, "<body></body>", tt.url)
		if got := p.SlugMatches(tt.name); got != tt.want {
			t.Errorf("SlugMatches(%s, %q) = %v, want %v", tt.url, tt.name, got, tt.want)
		}
	}
}
