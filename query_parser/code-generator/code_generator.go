package codegen

import (
	"strconv"

	executor "StrIndex/query_executor"
	"StrIndex/query_parser/parser"

	"github.com/cockroachdb/errors"
)

var ErrUnsupportedStatement = errors.New("unsupported statement")

func EmitBytecode(stmt parser.Statement) ([]executor.Instruction, error) {

	instructions := []executor.Instruction{}

	switch s := stmt.(type) {

	case *parser.InitializeStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_VAL, Value: strconv.Itoa(s.Order)},
			executor.Instruction{Op: executor.OP_INIT},
		)

	case *parser.InsertStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: s.Key},
			executor.Instruction{Op: executor.OP_PUSH_VAL, Value: s.Value},
			executor.Instruction{Op: executor.OP_INSERT},
		)

	case *parser.SearchStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: s.Key},
			executor.Instruction{Op: executor.OP_SEARCH},
		)

	case *parser.RangeSearchStmt:
		instructions = append(instructions,
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: s.From},
			executor.Instruction{Op: executor.OP_PUSH_KEY, Value: s.To},
			executor.Instruction{Op: executor.OP_RANGE_SEARCH},
		)

	case *parser.UseStmt:
		instructions = append(instructions, executor.Instruction{
			Op:    executor.OP_USE,
			Value: s.Name,
		})

	case *parser.DropStmt:
		instructions = append(instructions, executor.Instruction{
			Op:    executor.OP_DROP,
			Value: s.Name,
		})

	case *parser.PrintStmt:
		instructions = append(instructions, executor.Instruction{Op: executor.OP_PRINT})

	case *parser.StatsStmt:
		instructions = append(instructions, executor.Instruction{Op: executor.OP_STATS})

	case *parser.CheckStmt:
		instructions = append(instructions, executor.Instruction{Op: executor.OP_CHECK})

	default:
		return nil, errors.Wrapf(ErrUnsupportedStatement, "EmitBytecode: %T", stmt)
	}

	instructions = append(instructions, executor.Instruction{Op: executor.OP_END})
	return instructions, nil
}
