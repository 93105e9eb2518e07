package executor

/*
VM - runs the instructions of one command against the current index
    ↓
    ├─→ IndexManager - owns the named trees
    └─→ out - rendered results, one line per command that produces output
*/

import (
	"fmt"
	"io"
	"strconv"

	indexmanager "StrIndex/index_manager"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

func NewVM(im *indexmanager.IndexManager, out io.Writer, logger *zap.Logger) *VM {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VM{
		indexManager: im,
		currIndex:    DefaultIndexName,
		out:          out,
		logger:       logger,
		stack:        make([]string, 0),
	}
}

// CurrentIndex is the name of the index commands operate on.
func (vm *VM) CurrentIndex() string {
	return vm.currIndex
}

func (vm *VM) Execute(instructions []Instruction) error {
	vm.stack = vm.stack[:0]

	for _, instr := range instructions {
		switch instr.Op {
		case OP_PUSH_VAL, OP_PUSH_KEY:
			vm.stack = append(vm.stack, instr.Value)

		case OP_INIT:
			order, err := vm.pop()
			if err != nil {
				return errors.Wrap(err, "OP_INIT")
			}
			if err := vm.ExecuteInitialize(order); err != nil {
				return err
			}

		case OP_INSERT:
			value, err := vm.pop()
			if err != nil {
				return errors.Wrap(err, "OP_INSERT")
			}
			key, err := vm.pop()
			if err != nil {
				return errors.Wrap(err, "OP_INSERT")
			}
			if err := vm.ExecuteInsert(key, value); err != nil {
				return err
			}

		case OP_SEARCH:
			key, err := vm.pop()
			if err != nil {
				return errors.Wrap(err, "OP_SEARCH")
			}
			if err := vm.ExecuteSearch(key); err != nil {
				return err
			}

		case OP_RANGE_SEARCH:
			to, err := vm.pop()
			if err != nil {
				return errors.Wrap(err, "OP_RANGE_SEARCH")
			}
			from, err := vm.pop()
			if err != nil {
				return errors.Wrap(err, "OP_RANGE_SEARCH")
			}
			if err := vm.ExecuteRangeSearch(from, to); err != nil {
				return err
			}

		case OP_USE:
			if err := vm.ExecuteUse(instr.Value); err != nil {
				return err
			}

		case OP_DROP:
			if err := vm.ExecuteDrop(instr.Value); err != nil {
				return err
			}

		case OP_PRINT:
			if err := vm.ExecutePrint(); err != nil {
				return err
			}

		case OP_STATS:
			if err := vm.ExecuteStats(); err != nil {
				return err
			}

		case OP_CHECK:
			if err := vm.ExecuteCheck(); err != nil {
				return err
			}

		case OP_END:
			return nil

		default:
			return errors.Wrapf(ErrUnknownOpcode, "Execute: %d", instr.Op)
		}
	}
	return nil
}

func (vm *VM) pop() (string, error) {
	if len(vm.stack) == 0 {
		return "", ErrStackUnderflow
	}
	top := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return top, nil
}

// current returns the index commands operate on. It exists only after
// Initialize or Use.
func (vm *VM) current() (*indexmanager.Index, error) {
	idx, err := vm.indexManager.GetIndex(vm.currIndex)
	if err != nil {
		if errors.Is(err, indexmanager.ErrUnknownIndex) {
			return nil, errors.Wrapf(ErrNotInitialized, "index '%s'", vm.currIndex)
		}
		return nil, err
	}
	return idx, nil
}

func (vm *VM) ExecuteInitialize(orderStr string) error {
	order, err := strconv.Atoi(orderStr)
	if err != nil {
		return errors.Wrapf(err, "ExecuteInitialize: order %q", orderStr)
	}
	if _, err := vm.indexManager.CreateIndex(vm.currIndex, order); err != nil {
		return errors.Wrap(err, "ExecuteInitialize")
	}
	return nil
}

func (vm *VM) ExecuteInsert(key, value string) error {
	idx, err := vm.current()
	if err != nil {
		return errors.Wrap(err, "ExecuteInsert")
	}
	if err := idx.Insert(key, value); err != nil {
		return errors.Wrap(err, "ExecuteInsert")
	}
	return nil
}

func (vm *VM) ExecuteSearch(key string) error {
	idx, err := vm.current()
	if err != nil {
		return errors.Wrap(err, "ExecuteSearch")
	}
	values, found := idx.Search(key)
	if !found {
		return vm.writeLine(NotFound)
	}
	return vm.writeLine(FormatValues(values))
}

func (vm *VM) ExecuteRangeSearch(from, to string) error {
	idx, err := vm.current()
	if err != nil {
		return errors.Wrap(err, "ExecuteRangeSearch")
	}
	entries := idx.RangeSearch(from, to)
	if len(entries) == 0 {
		vm.logger.Debug("empty range", zap.String("from", from), zap.String("to", to))
	}
	return vm.writeLine(FormatEntries(entries))
}

// ExecuteUse switches the current index, creating it with the default order
// when it does not exist.
func (vm *VM) ExecuteUse(name string) error {
	if _, err := vm.indexManager.GetOrCreateIndex(name); err != nil {
		return errors.Wrap(err, "ExecuteUse")
	}
	vm.currIndex = name
	return nil
}

// ExecuteDrop tears the named index down. Dropping the current index leaves
// the session on that name, so the next command must Initialize it again.
func (vm *VM) ExecuteDrop(name string) error {
	if err := vm.indexManager.CloseIndex(name); err != nil {
		return errors.Wrap(err, "ExecuteDrop")
	}
	return nil
}

func (vm *VM) ExecutePrint() error {
	idx, err := vm.current()
	if err != nil {
		return errors.Wrap(err, "ExecutePrint")
	}
	return idx.Inspect(vm.out)
}

func (vm *VM) ExecuteStats() error {
	idx, err := vm.current()
	if err != nil {
		return errors.Wrap(err, "ExecuteStats")
	}
	return vm.writeLine(FormatStats(idx.Name(), idx.Stats()))
}

func (vm *VM) ExecuteCheck() error {
	idx, err := vm.current()
	if err != nil {
		return errors.Wrap(err, "ExecuteCheck")
	}
	if err := idx.Validate(); err != nil {
		vm.logger.Warn("index failed validation", zap.String("index", idx.Name()), zap.Error(err))
		return vm.writeLine("CORRUPT: " + err.Error())
	}
	return vm.writeLine("OK")
}

func (vm *VM) writeLine(s string) error {
	if _, err := fmt.Fprintln(vm.out, s); err != nil {
		return errors.Wrap(err, "writeLine")
	}
	return nil
}
