package assets

import "testing"

func TestEmbeddedArena(t *testing.T) {
	level, err := LoadLevel("")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Width != 1024 || level.Height != 576 {
		t.Fatalf("arena is %dx%d", level.Width, level.Height)
	}
	if level.Spawn.X != 504 || level.Spawn.Y != 288 {
		t.Fatalf("spawn = %+v", level.Spawn)
	}
	if !level.Spawner {
		t.Fatalf("arena has no spawner")
	}
	if len(level.Platforms) != 26 {
		t.Fatalf("got %d platforms", len(level.Platforms))
	}
}

func TestUnknownLevel(t *testing.T) {
	if _, err := LoadLevel("nope"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	if err != nil {
		t.Fatalf("LevelNames: %v", err)
	}
	if len(names) == 0 || names[0] != DefaultLevel {
		t.Fatalf("names = %v", names)
	}
}
