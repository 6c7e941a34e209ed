package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/thief-arena/shared/leveldata"
)

func TestEmbeddedArenasLoad(t *testing.T) {
	arenas, err := LoadAll(FS(), "arenas")
	if err != nil {
		t.Fatal(err)
	}
	if len(arenas) != 2 || arenas[0].Path != "arenas/arena1.tmx" {
		t.Fatalf("LoadAll returned %d arenas", len(arenas))
	}
	for _, a := range arenas {
		if len(a.Script.Waves) == 0 {
			t.Fatalf("%s has no waves", a.Path)
		}
	}
}

func TestArenaChain(t *testing.T) {
	a, err := LoadArena(FS(), "arenas/arena1.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.NextPath(); got != "arenas/arena2.tmx" {
		t.Fatalf("NextPath = %q", got)
	}
	b, err := LoadArena(FS(), a.NextPath())
	if err != nil {
		t.Fatal(err)
	}
	if b.NextPath() != "" {
		t.Fatalf("last arena should have no successor, got %q", b.NextPath())
	}
	if b.Map.BossSpawn == nil {
		t.Fatal("boss arena without boss spawn")
	}
}

func TestBossArenaWithoutSpawnFails(t *testing.T) {
	fsys := fstest.MapFS{
		"a.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <properties>
  <property name="waves" value="a.yaml"/>
 </properties>
 <objectgroup id="1" name="walkable">
  <object id="1" x="0" y="0" width="160" height="160"/>
 </objectgroup>
</map>
`)},
		"a.yaml": {Data: []byte("waves:\n  - boss: true\n")},
	}
	_, err := LoadArena(fsys, "a.tmx")
	if !errors.Is(err, leveldata.ErrMissingBossSpawn) {
		t.Fatalf("err = %v", err)
	}
}
