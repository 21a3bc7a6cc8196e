package templates

import "testing"

func TestLoad(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, name := range []string{"index.tmpl", "new.tmpl", "single.tmpl", "edit.tmpl", "error.tmpl", "header.tmpl", "footer.tmpl"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("missing template %s", name)
		}
	}
}
