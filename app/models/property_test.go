package models

import "testing"

func validProperty() *Property {
	p := &Property{
		UserID:       1,
		Title:        "Rumah minimalis dekat stasiun",
		PropertyType: PROPERTY_TYPE_HOUSE,
		Address:      "Jl. Melati No. 5",
		City:         "Bandung",
		Province:     "Jawa Barat",
		Price:        850_000_000,
		Currency:     "IDR",
		Status:       PROPERTY_STATUS_DRAFT,
	}
	return p
}

func TestPropertyValidate(t *testing.T) {
	p := validProperty()
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	short := validProperty()
	short.Title = "Casa"
	if err := short.Validate(); err == nil {
		t.Fatalf("expected title under 5 chars to be rejected")
	}

	badType := validProperty()
	badType.PropertyType = "castle"
	if err := badType.Validate(); err == nil {
		t.Fatalf("expected unknown property type to be rejected")
	}
}

func TestPropertyImagesRoundTrip(t *testing.T) {
	p := validProperty()
	urls := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}
	if err := p.SetImages(urls); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ImageCount != 2 {
		t.Fatalf("expected image count 2, got %d", p.ImageCount)
	}
	got := p.Images()
	if len(got) != 2 || got[0] != urls[0] || got[1] != urls[1] {
		t.Fatalf("unexpected images: %v", got)
	}
}

func TestPropertyImagesCorrupted(t *testing.T) {
	p := validProperty()
	p.ImagesJSON = "{not json"
	if got := p.Images(); got != nil {
		t.Fatalf("expected nil for corrupted column, got %v", got)
	}
}

func TestIsPublished(t *testing.T) {
	p := validProperty()
	if p.IsPublished() {
		t.Fatalf("draft listing must not be published")
	}
	p.Status = PROPERTY_STATUS_PUBLISHED
	if !p.IsPublished() {
		t.Fatalf("expected published listing")
	}
}
