package ident

import "testing"

func TestFileScoped(t *testing.T) {
	if got := FileScoped("a.ts", "helper"); got != "a.ts/helper" {
		t.Errorf("got %q", got)
	}
}

func TestStaticAndInstanceDelimitersDiffer(t *testing.T) {
	static := Static("Counter", "total")
	instance := Instance("Counter", "total")
	if static == instance {
		t.Fatalf("expected static and instance mangling to differ, both produced %q", static)
	}
	if static != "Counter.total" {
		t.Errorf("got %q", static)
	}
	if instance != "Counter#total" {
		t.Errorf("got %q", instance)
	}
}

func TestGetterSetterPrefixes(t *testing.T) {
	if got := Getter("value"); got != "get:value" {
		t.Errorf("got %q", got)
	}
	if got := Setter("value"); got != "set:value" {
		t.Errorf("got %q", got)
	}
}
