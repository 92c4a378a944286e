package cipher

import (
	"testing"
)

func TestPlanApplyReverse(t *testing.T) {
	plan := Plan{{Kind: OpReverse}}
	if got := plan.Apply("abcdef"); got != "fedcba" {
		t.Errorf("Apply() = %q, want %q", got, "fedcba")
	}
}

func TestPlanApplySplice(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		signature string
		expected  string
	}{
		{"drop two", 2, "abcdef", "cdef"},
		{"drop zero", 0, "abcdef", "abcdef"},
		{"clamped past end", 10, "abc", ""},
		{"empty input", 3, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan{{Kind: OpSplice, N: tt.n}}
			if got := plan.Apply(tt.signature); got != tt.expected {
				t.Errorf("Apply() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPlanApplySwap(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		signature string
		expected  string
	}{
		{"swap with n=0", 0, "abcdef", "abcdef"},
		{"swap with n=1", 1, "abcdef", "bacdef"},
		{"swap with n=3", 3, "abcdef", "dbcaef"},
		{"swap wraps mod length", 10, "abc", "bac"},
		{"single char is no-op", 5, "a", "a"},
		{"empty is no-op", 5, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan{{Kind: OpSwap, N: tt.n}}
			if got := plan.Apply(tt.signature); got != tt.expected {
				t.Errorf("Apply() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPlanApplyComposition(t *testing.T) {
	// reverse: "abcd" -> "dcba"; splice(1): -> "cba";
	// swap(2): idx = 2 mod 3 = 2, exchange 'c' and 'a' -> "abc"
	plan := Plan{
		{Kind: OpReverse},
		{Kind: OpSplice, N: 1},
		{Kind: OpSwap, N: 2},
	}
	if got := plan.Apply("abcd"); got != "abc" {
		t.Errorf("Apply() = %q, want %q", got, "abc")
	}
}

func TestPlanApplyDeterminism(t *testing.T) {
	plan := Plan{
		{Kind: OpSplice, N: 3},
		{Kind: OpSwap, N: 7},
		{Kind: OpReverse},
	}
	sig := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	first := plan.Apply(sig)
	second := plan.Apply(sig)
	if first != second {
		t.Errorf("Apply() not deterministic: %q vs %q", first, second)
	}
}

func TestPlanApplyDoesNotMutateInput(t *testing.T) {
	plan := Plan{{Kind: OpReverse}, {Kind: OpSwap, N: 2}}
	sig := "abcdef"
	_ = plan.Apply(sig)
	if sig != "abcdef" {
		t.Errorf("input signature mutated: %q", sig)
	}
}

func TestBuildPlanSkipsUnclassifiedMethods(t *testing.T) {
	calls := []methodCall{
		{object: "Mt", method: "sp", arg: 2},
		{object: "Mt", method: "unknown", arg: 9},
		{object: "Mt", method: "rv", arg: 24},
	}
	kinds := map[string]OpKind{"sp": OpSplice, "rv": OpReverse}

	plan, err := buildPlan(calls, kinds)
	if err != nil {
		t.Fatalf("buildPlan() error: %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("buildPlan() len = %d, want 2", len(plan))
	}
	if plan[0].Kind != OpSplice || plan[0].N != 2 {
		t.Errorf("plan[0] = %+v, want splice(2)", plan[0])
	}
	if plan[1].Kind != OpReverse || plan[1].N != 0 {
		t.Errorf("plan[1] = %+v, want reverse", plan[1])
	}
}

func TestBuildPlanRejectsEmptyPlan(t *testing.T) {
	tests := []struct {
		name  string
		calls []methodCall
		kinds map[string]OpKind
	}{
		{"no calls", nil, map[string]OpKind{"rv": OpReverse}},
		{"no classified methods", []methodCall{{object: "Mt", method: "xx", arg: 1}}, map[string]OpKind{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildPlan(tt.calls, tt.kinds)
			if err == nil {
				t.Fatal("buildPlan() expected error, got nil")
			}
			if !IsUnparsable(err) {
				t.Errorf("buildPlan() error = %v, want FUNCTION_BODY_UNPARSABLE", err)
			}
		})
	}
}

func TestOpKindString(t *testing.T) {
	if OpReverse.String() != "reverse" || OpSplice.String() != "splice" || OpSwap.String() != "swap" {
		t.Error("unexpected OpKind names")
	}
	if OpKind(42).String() != "unknown" {
		t.Errorf("OpKind(42).String() = %q", OpKind(42).String())
	}
}
