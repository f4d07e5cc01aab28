//go:build js && wasm

// Command wasm exposes the solver boundary to a JS host. Boards cross
// the boundary as decimal strings, since a packed board does not fit in
// a JS float64 without losing nibbles.
package main

import (
	"strconv"
	"sync"
	"sync/atomic"
	"syscall/js"

	"github.com/twenty48-ai/solver/api"
	"github.com/twenty48-ai/solver/board"
)

var solverMap sync.Map
var solverLastId int32 // int64 does not fit js's float64.

func parseBoard(v js.Value) board.Board {
	b, err := strconv.ParseUint(v.String(), 10, 64)
	if err != nil {
		return 0
	}
	return board.Board(b)
}

func boardString(b board.Board) string {
	return strconv.FormatUint(uint64(b), 10)
}

// (int[]) => string
func boardFromArray(this js.Value, args []js.Value) interface{} {
	arr := args[0]
	cells := make([]int, arr.Length())
	for i := range cells {
		cells[i] = arr.Index(i).Int()
	}
	return boardString(api.BoardFromArray(cells))
}

// (string) => int[]
func arrayFromBoard(this js.Value, args []js.Value) interface{} {
	cells := api.ArrayFromBoard(parseBoard(args[0]))
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func getScore(this js.Value, args []js.Value) interface{} {
	return api.GetScore(parseBoard(args[0]))
}

func getMaxTile(this js.Value, args []js.Value) interface{} {
	return api.GetMaxTile(parseBoard(args[0]))
}

func isGameOver(this js.Value, args []js.Value) interface{} {
	return api.IsGameOver(parseBoard(args[0]))
}

// (string, int) => bool
func isValidMove(this js.Value, args []js.Value) interface{} {
	return api.IsValidMove(parseBoard(args[0]), args[1].Int())
}

// (string, int) => string
func makeMove(this js.Value, args []js.Value) interface{} {
	return boardString(api.MakeMove(parseBoard(args[0]), args[1].Int()))
}

// (string type, string heuristic, int depth, float probability) => int32
func newSolver(this js.Value, args []js.Value) interface{} {
	s := api.NewSolver(args[0].String(), args[1].String(),
		args[2].Int(), args[3].Float())
	k := atomic.AddInt32(&solverLastId, 1)
	solverMap.Store(k, s)
	return k
}

// (int32) => null
func delSolver(this js.Value, args []js.Value) interface{} {
	solverMap.Delete(int32(args[0].Int()))
	return nil
}

func loadSolver(v js.Value) *api.Solver {
	thing, ok := solverMap.Load(int32(v.Int()))
	if !ok {
		return nil
	}
	s, ok := thing.(*api.Solver)
	if !ok {
		return nil
	}
	return s
}

// (int32, string type, string heuristic, int depth, float probability) => null
func configureSolver(this js.Value, args []js.Value) interface{} {
	if s := loadSolver(args[0]); s != nil {
		s.Configure(args[1].String(), args[2].String(),
			args[3].Int(), args[4].Float())
	}
	return nil
}

// (int32, int trials) => null
func setTrials(this js.Value, args []js.Value) interface{} {
	if s := loadSolver(args[0]); s != nil {
		s.SetTrials(args[1].Int())
	}
	return nil
}

// (int32, string board) => int direction
func pickMove(this js.Value, args []js.Value) interface{} {
	if s := loadSolver(args[0]); s != nil {
		return s.PickMove(parseBoard(args[1]))
	}
	return 0
}

// (int32, string board) => float
func evaluateBoard(this js.Value, args []js.Value) interface{} {
	if s := loadSolver(args[0]); s != nil {
		return s.EvaluateBoard(parseBoard(args[1]))
	}
	return 0.0
}

func registerCallbacks() {
	js.Global().Get("resTwenty48").Invoke(map[string]interface{}{
		"boardFromArray":  js.FuncOf(boardFromArray),
		"arrayFromBoard":  js.FuncOf(arrayFromBoard),
		"getScore":        js.FuncOf(getScore),
		"getMaxTile":      js.FuncOf(getMaxTile),
		"isGameOver":      js.FuncOf(isGameOver),
		"isValidMove":     js.FuncOf(isValidMove),
		"makeMove":        js.FuncOf(makeMove),
		"newSolver":       js.FuncOf(newSolver),
		"delSolver":       js.FuncOf(delSolver),
		"configureSolver": js.FuncOf(configureSolver),
		"setTrials":       js.FuncOf(setTrials),
		"pickMove":        js.FuncOf(pickMove),
		"evaluateBoard":   js.FuncOf(evaluateBoard),
	})
}

func main() {
	registerCallbacks()
	// Keep Go "program" running.
	select {}
}
