//go:build wasip1

// Command goalgebra-wasm-wasi is the WASI (wasip1) entrypoint for use from any
// language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "op": "<name>", "args": [<operand>, ...] }
//	stdout: { "result": <value> }     on success
//	        { "error":  "<message>" }  on failure (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o goalgebra.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"op":"add","args":[1,2]}' | wasmtime goalgebra.wasm
package main

import (
	"encoding/json"
	"os"

	"github.com/sandrolain/goalgebra"
)

type request struct {
	Op   string        `json:"op"`
	Args []interface{} `json:"args"`
}

type response struct {
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func writeResponse(r response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func main() {
	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(response{Error: "invalid request JSON: " + err.Error()}, 1)
	}

	op, err := goalgebra.ByName(req.Op)
	if err != nil {
		writeResponse(response{Error: err.Error()}, 1)
	}

	result, err := op.Invoke(req.Args...)
	if err != nil {
		writeResponse(response{Error: err.Error()}, 1)
	}

	writeResponse(response{Result: result}, 0)
}
