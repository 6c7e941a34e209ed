package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	for name := range Sizes {
		if name.Get() == nil {
			t.Fatalf("%s not loaded", name)
		}
	}
	title := font.MeasureString(Title.Get(), "THIEF ARENA")
	small := font.MeasureString(Small.Get(), "THIEF ARENA")
	if title <= small {
		t.Fatalf("title width %v not wider than small width %v", title, small)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Fatal("expected parse error")
	}
	if _, ok := fonts["broken"]; ok {
		t.Fatal("broken face registered")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	FontName("missing").Get()
}
