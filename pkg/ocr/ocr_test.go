package ocr

import "testing"

func TestParseTranscript(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantName  string
		wantPrice float64
	}{
		{
			name:      "shelf label",
			text:      "LECHE ENTERA 1L\n$1.190\nColun",
			wantName:  "LECHE ENTERA 1L",
			wantPrice: 1190,
		},
		{
			name:      "labelled price",
			text:      "Atun Lomitos 170 g\nPrecio: 1.590\nAl agua",
			wantName:  "Atun Lomitos 170 g",
			wantPrice: 1590,
		},
		{
			name:      "clp suffix",
			text:      "Pack Bebidas\n2.990 CLP",
			wantName:  "Pack Bebidas",
			wantPrice: 2990,
		},
		{
			name:      "price before name",
			text:      "$3.490\nDetergente Polvo 1 kg",
			wantName:  "Detergente Polvo 1 kg",
			wantPrice: 3490,
		},
		{
			name:      "no price",
			text:      "Producto sin etiqueta visible",
			wantName:  "Producto sin etiqueta visible",
			wantPrice: 0,
		},
		{
			name:      "empty transcript",
			text:      "",
			wantName:  "",
			wantPrice: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, n := ParseTranscript(tt.text)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if n != tt.wantPrice {
				t.Errorf("price = %v, want %v", n, tt.wantPrice)
			}
		})
	}
}

func TestParseName_SkipsBarePriceLines(t *testing.T) {
	got := ParseName("$12.990\n999999\nJugo Natural Naranja 1 L")
	if got != "Jugo Natural Naranja 1 L" {
		t.Errorf("ParseName = %q", got)
	}
}

func TestParsePrice_ImplausibleIsSkipped(t *testing.T) {
	if n, ok := ParsePrice("$999.999.999"); ok {
		t.Errorf("ParsePrice = %v, want no plausible match", n)
	}
}
