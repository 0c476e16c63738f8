package domain

import (
	"reflect"
	"testing"
)

func TestJobFilterConditions_Empty(t *testing.T) {
	sql, args := JobFilter{}.Conditions()
	if sql != "1=1" {
		t.Errorf("empty filter sql = %q, want %q", sql, "1=1")
	}
	if len(args) != 0 {
		t.Errorf("empty filter args = %v, want none", args)
	}
}

func TestJobFilterConditions_TitleOnly(t *testing.T) {
	sql, args := JobFilter{Title: "engineer"}.Conditions()
	if sql != "1=1 AND title LIKE ?" {
		t.Errorf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"%engineer%"}) {
		t.Errorf("args = %v, want [%%engineer%%]", args)
	}
}

func TestJobFilterConditions_TypeIsExactMatch(t *testing.T) {
	sql, args := JobFilter{Type: "full-time"}.Conditions()
	if sql != "1=1 AND type = ?" {
		t.Errorf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"full-time"}) {
		t.Errorf("args = %v, want exact value without wildcards", args)
	}
}

func TestJobFilterConditions_AllClausesConjoined(t *testing.T) {
	sql, args := JobFilter{Title: "dev", Location: "Paris", Type: "remote"}.Conditions()
	want := "1=1 AND title LIKE ? AND location LIKE ? AND type = ?"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"%dev%", "%Paris%", "remote"}) {
		t.Errorf("args = %v", args)
	}
}
