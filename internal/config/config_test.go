package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DataPath != "반려동물등록현황.csv" {
		t.Fatalf("unexpected data_path: %q", c.DataPath)
	}
	if c.Encoding != "cp949" {
		t.Fatalf("unexpected encoding: %q", c.Encoding)
	}
	if c.RegionColumn != "시군명" || c.SubRegionColumn != "읍면동명" || c.YearColumn != "기준년도" {
		t.Fatalf("unexpected column defaults: %+v", c)
	}
	if c.PreviewRows != 5 {
		t.Fatalf("unexpected preview_rows: %d", c.PreviewRows)
	}
	if c.ChartWidthIn != 12 || c.ChartHeightIn != 7 {
		t.Fatalf("unexpected chart size: %vx%v", c.ChartWidthIn, c.ChartHeightIn)
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "petreg.yaml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.DataPath = "/data/pets.csv"
	c.Encoding = "utf-8"
	c.PreviewRows = 10
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.DataPath != "/data/pets.csv" || got.Encoding != "utf-8" || got.PreviewRows != 10 {
		t.Fatalf("reload mismatch: %+v", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PETREG_ENCODING", "euc-kr")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Encoding != "euc-kr" {
		t.Fatalf("env override ignored: %q", c.Encoding)
	}
}
