package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/catervpillar/jbudget"
)

func testController(t *testing.T) *jbudget.Controller {
	t.Helper()
	c := jbudget.NewController()
	if _, err := c.AddAccount(jbudget.Asset, "conto", jbudget.M(1000)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddTag("food", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddTag("car", ""); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestParseMovement(t *testing.T) {
	c := testController(t)

	m, err := parseMovement(c, "decrement:conto:42.50")
	if err != nil {
		t.Fatal(err)
	}
	if m.Type() != jbudget.Decrement {
		t.Errorf("type = %v, want DECREMENT", m.Type())
	}
	if m.Account().Name() != "CONTO" {
		t.Errorf("account = %s, want CONTO", m.Account().Name())
	}
	if !m.Amount().Equal(jbudget.M(42.5)) {
		t.Errorf("amount = %s, want 42.5", m.Amount().Plain())
	}

	for _, bad := range []string{
		"decrement:conto",
		"withdraw:conto:10",
		"decrement:nope:10",
		"decrement:conto:ten",
		"decrement:conto:-10",
	} {
		if _, err := parseMovement(c, bad); err == nil {
			t.Errorf("parseMovement(%q) must fail", bad)
		}
	}
}

func TestFindAccount(t *testing.T) {
	c := testController(t)

	a, err := findAccount(c, "conto")
	if err != nil {
		t.Fatal(err)
	}
	if a.Name() != "CONTO" {
		t.Errorf("found %s, want CONTO", a.Name())
	}
	if _, err := findAccount(c, "nope"); err == nil {
		t.Error("unknown account must fail")
	}
}

func TestFindTags(t *testing.T) {
	c := testController(t)

	tags, err := findTags(c, "food, car")
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 2 || tags[0].Name() != "FOOD" || tags[1].Name() != "CAR" {
		t.Errorf("tags = %v", tags)
	}

	if tags, err := findTags(c, ""); err != nil || tags != nil {
		t.Errorf("empty list = %v, %v", tags, err)
	}
	if _, err := findTags(c, "food,nope"); err == nil {
		t.Error("unknown tag must fail")
	}
}

func TestDataDirResolution(t *testing.T) {
	defer func(old string) { *dataDirFlag = old }(*dataDirFlag)

	*dataDirFlag = "/tmp/explicit"
	if got := dataDir(); got != "/tmp/explicit" {
		t.Errorf("dataDir() = %q, want the flag value", got)
	}

	*dataDirFlag = ""
	t.Setenv("JB_DATA_DIR", "/tmp/from-env")
	if got := dataDir(); got != "/tmp/from-env" {
		t.Errorf("dataDir() = %q, want the environment value", got)
	}
}

func TestLoadConfig(t *testing.T) {
	defer func(old string) { *configFlag = old }(*configFlag)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data-dir: /srv/ledger\nstore: sqlite\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	*configFlag = path

	cfg := loadConfig()
	if cfg.DataDir != "/srv/ledger" || cfg.Store != "sqlite" {
		t.Errorf("loadConfig() = %+v", cfg)
	}

	*configFlag = filepath.Join(t.TempDir(), "missing.yaml")
	if cfg := loadConfig(); cfg != (config{}) {
		t.Errorf("missing config file must yield the zero config, got %+v", cfg)
	}
}
