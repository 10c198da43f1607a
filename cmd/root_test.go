package cmd

import "testing"

func TestResolveMonth(t *testing.T) {
	flagMonth = ""
	t.Cleanup(func() { flagMonth = "" })

	key, err := resolveMonth()
	if err != nil {
		t.Fatalf("resolveMonth default: %v", err)
	}
	if len(key) != 7 || key[4] != '-' {
		t.Errorf("resolveMonth default = %q, want YYYY-MM", key)
	}

	flagMonth = "2026-08"
	key, err = resolveMonth()
	if err != nil || key != "2026-08" {
		t.Errorf("resolveMonth = %q, %v, want 2026-08", key, err)
	}

	flagMonth = "08-2026"
	if _, err := resolveMonth(); err == nil {
		t.Error("resolveMonth accepted a malformed month")
	}
}

func TestSplitFieldRef(t *testing.T) {
	g, f, err := splitFieldRef("income.earned1")
	if err != nil {
		t.Fatalf("splitFieldRef: %v", err)
	}
	if g != "income" || f != "earned1" {
		t.Errorf("splitFieldRef = %s, %s", g, f)
	}

	for _, bad := range []string{"income", ".earned1", "income.", "bogus.earned1"} {
		if _, _, err := splitFieldRef(bad); err == nil {
			t.Errorf("splitFieldRef(%q) accepted", bad)
		}
	}
}
