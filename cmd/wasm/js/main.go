//go:build js && wasm

// Command goalgebra-wasm-js is the WebAssembly entrypoint for browser and Node.js.
//
// It exposes a global `goalgebra` object with the following API:
//
//	goalgebra.version()           → string
//	goalgebra.invoke(name, args)  → result  (throws on error)
//	goalgebra.operators()         → [{ name, arity, precedence }, ...]
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o goalgebra.wasm ./cmd/wasm/js/
//
// Usage in Node.js:
//
//	const ga = await load()
//	console.log(ga.invoke('add', [1, 2])) // 3
package main

import (
	"fmt"
	"syscall/js"

	"github.com/sandrolain/goalgebra"
)

// jsThrow panics with the message so the caller receives a thrown exception.
func jsThrow(msg string) {
	panic(msg)
}

// jsInvoke implements goalgebra.invoke(name, args) → result.
func jsInvoke(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		jsThrow("goalgebra.invoke requires 2 arguments: name (string) and args (array)")
	}
	name := args[0].String()
	arr := args[1]
	if arr.Type() != js.TypeObject || arr.Get("length").IsUndefined() {
		jsThrow("goalgebra.invoke: args must be an array")
	}

	operands := make([]interface{}, arr.Length())
	for i := range operands {
		v := arr.Index(i)
		switch v.Type() {
		case js.TypeNumber:
			operands[i] = v.Float()
		case js.TypeBoolean:
			operands[i] = v.Bool()
		case js.TypeString:
			operands[i] = v.String()
		default:
			operands[i] = nil
		}
	}

	op, err := goalgebra.ByName(name)
	if err != nil {
		jsThrow(fmt.Sprintf("goalgebra.invoke: %v", err))
	}

	result, err := op.Invoke(operands...)
	if err != nil {
		jsThrow(fmt.Sprintf("goalgebra.invoke: %v", err))
	}
	return js.ValueOf(result)
}

// jsOperators implements goalgebra.operators() → catalog metadata.
func jsOperators(_ js.Value, _ []js.Value) interface{} {
	ops := goalgebra.Sorted()
	out := make([]interface{}, len(ops))
	for i, op := range ops {
		out[i] = map[string]interface{}{
			"name":       op.Name(),
			"arity":      op.Arity(),
			"precedence": op.Precedence(),
		}
	}
	return js.ValueOf(out)
}

func main() {
	api := map[string]interface{}{
		"invoke":    js.FuncOf(jsInvoke),
		"operators": js.FuncOf(jsOperators),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return goalgebra.Version()
		}),
	}
	js.Global().Set("goalgebra", js.ValueOf(api))

	// Block forever — the JS event loop owns execution from here.
	select {}
}
