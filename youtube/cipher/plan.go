package cipher

// Plan is the ordered sequence of operations derived from a player script.
// A successfully built plan is never empty.
type Plan []Operation

// Apply runs the plan against a signature and returns the deciphered value.
// The signature is treated as an array of characters; each operation mutates
// a working copy, so Apply is pure and safe for concurrent use.
func (p Plan) Apply(signature string) string {
	r := []rune(signature)
	for _, op := range p {
		switch op.Kind {
		case OpReverse:
			r = reverseRunes(r)
		case OpSplice:
			r = spliceRunes(r, op.N)
		case OpSwap:
			r = swapRunes(r, op.N)
		}
	}
	return string(r)
}

// buildPlan pairs parsed call sites with the classification map. Calls whose
// method name is not in the map are skipped: not every invocation inside the
// transform function corresponds to a classified transform. An empty result
// is a build failure, never a valid no-op plan.
func buildPlan(calls []methodCall, kinds map[string]OpKind) (Plan, error) {
	var plan Plan
	for _, c := range calls {
		kind, ok := kinds[c.method]
		if !ok {
			continue
		}
		op := Operation{Kind: kind}
		if kind != OpReverse {
			op.N = c.arg
		}
		plan = append(plan, op)
	}
	if len(plan) == 0 {
		return nil, NewError(ErrCodeBodyUnparsable, "transform plan is empty",
			map[string]any{"calls": len(calls), "methods": len(kinds)})
	}
	return plan, nil
}
