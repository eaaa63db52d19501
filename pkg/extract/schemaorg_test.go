package extract

import "testing"

func TestSchemaOrg_GraphAndTypeArray(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@graph": [
		{"@type": "WebSite", "name": "MiAlmacen"},
		{"@type": ["Product", "Thing"], "name": "Arroz Grado 1 1 kg",
		 "offers": [{"@type": "Offer", "lowPrice": 1590}]}
	]}
	</script></head><body></body></html>`
	p := mustPage(t, html, "https://mialmacen.cl/producto/arroz")

	rec := (&SchemaOrg{}).Extract(p)
	if rec == nil {
		t.Fatal("Extract() = nil, want a record")
	}
	if rec.Name != "Arroz Grado 1 1 kg" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Price != 1590 {
		t.Errorf("Price = %v, want 1590 from offers[0].lowPrice", rec.Price)
	}
}

func TestSchemaOrg_SkipsMalformedBlocks(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{esto no es json</script>
	<script type="application/ld+json">{"@type":"Product","name":"Fideos Spaghetti 400 g","offers":{"price":"1.290"}}</script>
	</head><body></body></html>`
	p := mustPage(t, html, "https://tienda.cl/p/fideos")

	rec := (&SchemaOrg{}).Extract(p)
	if rec == nil {
		t.Fatal("malformed block must not abort the scan")
	}
	if rec.Name != "Fideos Spaghetti 400 g" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Price != 1290 {
		t.Errorf("Price = %v, want 1290", rec.Price)
	}
}

func TestSchemaOrg_PrefersNodeMatchingPageURL(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	[
		{"@type": "Product", "name": "Otro producto",
		 "url": "https://tienda.cl/p/otro", "offers": {"price": 500}},
		{"@type": "Product", "name": "Azucar Granulada 1 kg",
		 "url": "https://tienda.cl/p/azucar-granulada", "offers": {"price": 1190}}
	]
	</script></head><body></body></html>`
	p := mustPage(t, html, "https://tienda.cl/p/azucar-granulada?ref=home")

	rec := (&SchemaOrg{}).Extract(p)
	if rec == nil {
		t.Fatal("Extract() = nil, want a record")
	}
	if rec.Name != "Azucar Granulada 1 kg" {
		t.Errorf("Name = %q; the node matching the page URL must win", rec.Name)
	}
	if rec.Price != 1190 {
		t.Errorf("Price = %v, want 1190", rec.Price)
	}
}

func TestSchemaOrg_NoNameIsNoRecord(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "Product", "offers": {"price": 990}}
	</script></head><body></body></html>`
	p := mustPage(t, html, "https://tienda.cl/p/x")

	if rec := (&SchemaOrg{}).Extract(p); rec != nil {
		t.Errorf("Extract() = %+v, want nil for a nameless node", rec)
	}
}

func TestSchemaOrg_ImageObjectAndArray(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": "Product", "name": "Te Verde 20 Bolsas",
	 "image": [{"@type": "ImageObject", "url": "https://cdn.tienda.cl/te.jpg"}],
	 "offers": {"price": 2190}}
	</script></head><body></body></html>`
	p := mustPage(t, html, "https://tienda.cl/p/te-verde")

	rec := (&SchemaOrg{}).Extract(p)
	if rec == nil {
		t.Fatal("Extract() = nil, want a record")
	}
	if rec.Image != "https://cdn.tienda.cl/te.jpg" {
		t.Errorf("Image = %q", rec.Image)
	}
}
