package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSiteSpecific_UnknownHostIsSkipped(t *testing.T) {
	p := mustPage(t, `<body><h1>Galletas Surtidas 400 g</h1><span class="price">$2.490</span></body>`,
		"https://desconocida.cl/p/galletas")

	s := &SiteSpecific{Sites: DefaultSiteMap()}
	if rec := s.Extract(p); rec != nil {
		t.Errorf("Extract() = %+v, want nil for a host without overrides", rec)
	}
}

func TestSiteSpecific_KnownHost(t *testing.T) {
	html := `<body><main class="product-detail">
		<h1 class="product-name">Bebida Cola 3 L</h1>
		<span class="price-value">$2.190</span>
		<div class="gallery"><img src="/bebida.jpg"></div>
	</body>`
	p := mustPage(t, html, "https://www.lider.cl/catalogo/product/bebida-cola-3-l")

	rec := (&SiteSpecific{Sites: DefaultSiteMap()}).Extract(p)
	if rec == nil {
		t.Fatal("Extract() = nil, want a record")
	}
	if rec.Name != "Bebida Cola 3 L" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Price != 2190 {
		t.Errorf("Price = %v, want 2190", rec.Price)
	}
	if rec.Image != "https://www.lider.cl/bebida.jpg" {
		t.Errorf("Image = %q", rec.Image)
	}
}

func TestSiteSpecific_RejectsBannerTitle(t *testing.T) {
	html := `<body><h1>Lider.cl te conviene</h1><span class="price">$990</span></body>`
	p := mustPage(t, html, "https://www.lider.cl/")

	if rec := (&SiteSpecific{Sites: DefaultSiteMap()}).Extract(p); rec != nil {
		t.Errorf("Extract() = %+v, want nil so later strategies get a chance", rec)
	}
}

func TestLoadSiteMap_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	data := `nueva-tienda.cl:
  title: ["h1.custom"]
  price: [".custom-price"]
  image: [".custom img"]
lider.cl:
  title: ["h1.reemplazo"]
  price: [".otro"]
  image: ["img"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadSiteMap(path)
	if err != nil {
		t.Fatalf("LoadSiteMap() error = %v", err)
	}
	if _, ok := m["distribuidoranico.cl"]; !ok {
		t.Error("built-in hosts must survive the merge")
	}
	if got := m["nueva-tienda.cl"].Title; len(got) != 1 || got[0] != "h1.custom" {
		t.Errorf("new host selectors = %v", got)
	}
	if got := m["lider.cl"].Title; len(got) != 1 || got[0] != "h1.reemplazo" {
		t.Errorf("file entries must win on collision, got %v", got)
	}
}

func TestLoadSiteMap_MissingFile(t *testing.T) {
	if _, err := LoadSiteMap(filepath.Join(t.TempDir(), "no-existe.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
