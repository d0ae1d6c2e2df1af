// Command selftest runs the documented examples of the operator catalog
// and reports via exit status: 0 when every example holds, 1 otherwise.
//
// Run with:
//
//	go run ./cmd/selftest
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sandrolain/goalgebra"
)

type check struct {
	label string
	ok    func() bool
}

var checks = []check{
	{"add_(1, 2) == 3", func() bool {
		r, err := goalgebra.Add.Invoke(1.0, 2.0)
		return err == nil && r == 3.0
	}},
	{"mul_(3, 4) == 12", func() bool {
		r, err := goalgebra.Mul.Invoke(3.0, 4.0)
		return err == nil && r == 12.0
	}},
	{"pow_(2, 3) == 8", func() bool {
		r, err := goalgebra.Pow.Invoke(2.0, 3.0)
		return err == nil && r == 8.0
	}},
	{"neg_(2) == -2", func() bool {
		r, err := goalgebra.Neg.Invoke(2.0)
		return err == nil && r == -2.0
	}},
	{"add_.name() == \"add\"", func() bool {
		return goalgebra.Add.Name() == "add"
	}},
	{"add_.arity() == 2, neg_.arity() == 1", func() bool {
		return goalgebra.Add.Arity() == 2 && goalgebra.Neg.Arity() == 1
	}},
	{"add_ with wrong operand count fails", func() bool {
		_, err1 := goalgebra.Add.Invoke(1.0)
		_, err3 := goalgebra.Add.Invoke(1.0, 2.0, 3.0)
		return err1 != nil && err3 != nil
	}},
	{"pow_ > mul_ > add_", func() bool {
		return goalgebra.Mul.Less(goalgebra.Pow) && goalgebra.Add.Less(goalgebra.Mul)
	}},
	{"sorted([pow_, mul_, add_]) == [add_, mul_, pow_]", func() bool {
		ops := []goalgebra.Operator{goalgebra.Pow, goalgebra.Mul, goalgebra.Add}
		sort.Slice(ops, func(i, j int) bool { return ops[i].Less(ops[j]) })
		return ops[0] == goalgebra.Add && ops[1] == goalgebra.Mul && ops[2] == goalgebra.Pow
	}},
	{"{add_, mul_} has two distinct members", func() bool {
		set := map[goalgebra.Operator]struct{}{}
		for _, op := range []goalgebra.Operator{goalgebra.Add, goalgebra.Add, goalgebra.Mul} {
			set[op] = struct{}{}
		}
		return len(set) == 2
	}},
	{"every advertised name resolves", func() bool {
		for _, op := range goalgebra.All() {
			got, err := goalgebra.ByName(op.Name())
			if err != nil || got != op {
				return false
			}
		}
		return true
	}},
}

func main() {
	failed := 0
	for _, c := range checks {
		if c.ok() {
			fmt.Printf("ok   %s\n", c.label)
		} else {
			fmt.Printf("FAIL %s\n", c.label)
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d examples failed\n", failed, len(checks))
		os.Exit(1)
	}
	fmt.Printf("all %d examples passed\n", len(checks))
}
