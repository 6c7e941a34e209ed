package main

import (
	"strings"
	"testing"

	"github.com/automoto/thief-arena/assets"
)

func TestLoadEveryArena(t *testing.T) {
	arenas, err := load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(arenas) != 2 || arenas[1].Path != "arenas/arena2.tmx" {
		t.Fatalf("load returned %d arenas", len(arenas))
	}
	one, err := load("arenas/arena2.tmx")
	if err != nil || len(one) != 1 {
		t.Fatalf("load(arena2) = %v, %v", one, err)
	}
}

func TestDescribe(t *testing.T) {
	a, err := assets.LoadArena(assets.FS(), "arenas/arena2.tmx")
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	describe(&sb, a)
	out := sb.String()
	for _, want := range []string{"boss at (320, 112)", "wave 1: 4 enemies, 2 at once", "wave 2: boss", "last arena"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}
