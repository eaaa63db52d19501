package extract

import "testing"

func TestFallback_DocumentTitle(t *testing.T) {
	html := `<html><head><title>Lavalozas Limón 750 ml | MiTienda</title></head>
	<body><div class="precio">$1.590</div></body></html>`
	p := mustPage(t, html, "https://tienda.cl/p/lavalozas")

	rec := (&Fallback{}).Extract(p)
	if rec == nil {
		t.Fatal("Extract() = nil, want a record")
	}
	if rec.Name != "Lavalozas Limón 750 ml" {
		t.Errorf("Name = %q; store branding after the separator must be dropped", rec.Name)
	}
	if rec.Price != 1590 {
		t.Errorf("Price = %v, want 1590", rec.Price)
	}
}

func TestFallback_KeepsBannerWhenSlugCanRecover(t *testing.T) {
	html := `<body><h1>MiTienda.cl</h1><span class="price">$4.990</span></body>`
	p := mustPage(t, html, "https://mitienda.cl/producto/esponja-multiuso-pack-6")

	rec := (&Fallback{}).Extract(p)
	if rec == nil {
		t.Fatal("Extract() = nil, want a record")
	}
	// The cross-check downstream swaps this for the slug-derived name.
	if rec.Name != "MiTienda.cl" {
		t.Errorf("Name = %q, want the raw title preserved for the slug cross-check", rec.Name)
	}
}

func TestFallback_NothingUsable(t *testing.T) {
	p := mustPage(t, "<body></body>", "https://tienda.cl/")
	if rec := (&Fallback{}).Extract(p); rec != nil {
		t.Errorf("Extract() = %+v, want nil for an empty page", rec)
	}
}

func TestFallback_PlaceholderNameWithPrice(t *testing.T) {
	html := `<body><span class="price">$2.990</span></body>`
	p := mustPage(t, html, "https://tienda.cl/")

	rec := (&Fallback{}).Extract(p)
	if rec == nil {
		t.Fatal("Extract() = nil, want a record when a price exists")
	}
	if rec.Name != "Producto sin nombre" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Price != 2990 {
		t.Errorf("Price = %v, want 2990", rec.Price)
	}
}
