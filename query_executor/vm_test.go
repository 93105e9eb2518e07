package executor

import (
	"bytes"
	"testing"

	bplus "StrIndex/bplustree"
	indexmanager "StrIndex/index_manager"

	"github.com/stretchr/testify/require"
)

func newTestVM(t *testing.T) (*VM, *bytes.Buffer) {
	t.Helper()
	im, err := indexmanager.NewIndexManager(indexmanager.Options{DefaultOrder: 3, CacheSize: 16})
	require.NoError(t, err)
	t.Cleanup(im.CloseAll)
	var out bytes.Buffer
	return NewVM(im, &out, nil), &out
}

func run(t *testing.T, vm *VM, instrs ...Instruction) {
	t.Helper()
	instrs = append(instrs, Instruction{Op: OP_END})
	require.NoError(t, vm.Execute(instrs))
}

func initialize(order string) []Instruction {
	return []Instruction{{Op: OP_PUSH_VAL, Value: order}, {Op: OP_INIT}}
}

func insert(key, value string) []Instruction {
	return []Instruction{{Op: OP_PUSH_KEY, Value: key}, {Op: OP_PUSH_VAL, Value: value}, {Op: OP_INSERT}}
}

func TestExecuteInsertAndSearch(t *testing.T) {
	vm, out := newTestVM(t)
	run(t, vm, initialize("3")...)
	for _, kv := range [][2]string{{"b", "vb"}, {"a", "va"}, {"d", "vd"}, {"c", "vc"}, {"e", "ve"}, {"c", "vc2"}} {
		run(t, vm, insert(kv[0], kv[1])...)
	}

	run(t, vm, Instruction{Op: OP_PUSH_KEY, Value: "c"}, Instruction{Op: OP_SEARCH})
	run(t, vm, Instruction{Op: OP_PUSH_KEY, Value: "zz"}, Instruction{Op: OP_SEARCH})
	run(t, vm,
		Instruction{Op: OP_PUSH_KEY, Value: "b"},
		Instruction{Op: OP_PUSH_KEY, Value: "d"},
		Instruction{Op: OP_RANGE_SEARCH})
	run(t, vm,
		Instruction{Op: OP_PUSH_KEY, Value: "x"},
		Instruction{Op: OP_PUSH_KEY, Value: "y"},
		Instruction{Op: OP_RANGE_SEARCH})

	require.Equal(t, "vc,vc2\nNull\n(b,vb),(c,vc),(c,vc2),(d,vd)\nNull\n", out.String())
}

func TestExecuteRequiresInitialize(t *testing.T) {
	vm, _ := newTestVM(t)
	err := vm.Execute(append(insert("k", "v"), Instruction{Op: OP_END}))
	require.ErrorIs(t, err, ErrNotInitialized)

	err = vm.Execute([]Instruction{{Op: OP_PRINT}})
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestExecuteInitializeInvalidOrder(t *testing.T) {
	vm, _ := newTestVM(t)
	err := vm.Execute(initialize("1"))
	require.ErrorIs(t, err, bplus.ErrInvalidOrder)

	err = vm.Execute(initialize("x"))
	require.Error(t, err)
}

func TestExecuteInitializeResetsIndex(t *testing.T) {
	vm, out := newTestVM(t)
	run(t, vm, initialize("3")...)
	run(t, vm, insert("k", "v")...)
	run(t, vm, initialize("4")...)
	run(t, vm, Instruction{Op: OP_PUSH_KEY, Value: "k"}, Instruction{Op: OP_SEARCH})
	require.Equal(t, "Null\n", out.String())
}

func TestExecuteUseAndDrop(t *testing.T) {
	vm, out := newTestVM(t)
	run(t, vm, Instruction{Op: OP_USE, Value: "users"})
	require.Equal(t, "users", vm.CurrentIndex())
	run(t, vm, insert("alice", "1")...)

	run(t, vm, Instruction{Op: OP_USE, Value: "orders"})
	run(t, vm, Instruction{Op: OP_PUSH_KEY, Value: "alice"}, Instruction{Op: OP_SEARCH})

	run(t, vm, Instruction{Op: OP_USE, Value: "users"})
	run(t, vm, Instruction{Op: OP_PUSH_KEY, Value: "alice"}, Instruction{Op: OP_SEARCH})
	require.Equal(t, "Null\n1\n", out.String())

	run(t, vm, Instruction{Op: OP_DROP, Value: "users"})
	err := vm.Execute([]Instruction{{Op: OP_PUSH_KEY, Value: "alice"}, {Op: OP_SEARCH}})
	require.ErrorIs(t, err, ErrNotInitialized)

	err = vm.Execute([]Instruction{{Op: OP_DROP, Value: "users"}})
	require.ErrorIs(t, err, indexmanager.ErrUnknownIndex)
}

func TestExecutePrintStatsCheck(t *testing.T) {
	vm, out := newTestVM(t)
	run(t, vm, initialize("3")...)
	for _, k := range []string{"b", "a", "d", "c", "e"} {
		run(t, vm, insert(k, "v"+k)...)
	}

	run(t, vm, Instruction{Op: OP_PRINT})
	require.Contains(t, out.String(), "[INTERNAL] keys=[c d]")
	out.Reset()

	run(t, vm, Instruction{Op: OP_STATS})
	require.Equal(t,
		"index=default order=3 height=2 nodes=4 (internal=1 leaf=3) keys=5 values=5 cache_hits=0 cache_misses=0\n",
		out.String())
	out.Reset()

	run(t, vm, Instruction{Op: OP_CHECK})
	require.Equal(t, "OK\n", out.String())
}

func TestExecuteStackUnderflow(t *testing.T) {
	vm, _ := newTestVM(t)
	run(t, vm, initialize("3")...)
	err := vm.Execute([]Instruction{{Op: OP_PUSH_KEY, Value: "k"}, {Op: OP_INSERT}})
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestExecuteUnknownOpcode(t *testing.T) {
	vm, _ := newTestVM(t)
	err := vm.Execute([]Instruction{{Op: OpCode(200)}})
	require.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestFormatEntries(t *testing.T) {
	require.Equal(t, NotFound, FormatEntries(nil))
	require.Equal(t, "(a,1),(a,2),(b,3)", FormatEntries([]bplus.Entry{
		{Key: "a", Values: []string{"1", "2"}},
		{Key: "b", Values: []string{"3"}},
	}))
}
