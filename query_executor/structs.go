package executor

import (
	"io"

	indexmanager "StrIndex/index_manager"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type OpCode byte

const (
	// stack
	OP_PUSH_VAL OpCode = iota
	OP_PUSH_KEY

	// index commands
	OP_INIT
	OP_INSERT
	OP_SEARCH
	OP_RANGE_SEARCH
	OP_USE
	OP_DROP
	OP_PRINT
	OP_STATS
	OP_CHECK

	OP_END
)

type Instruction struct {
	Op    OpCode
	Value string
}

// DefaultIndexName is the index a session starts on before any Use.
const DefaultIndexName = "default"

var (
	ErrNotInitialized = errors.New("index not initialized")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownOpcode  = errors.New("unknown opcode")
)

type VM struct {
	indexManager *indexmanager.IndexManager
	currIndex    string

	out    io.Writer
	logger *zap.Logger

	stack []string
}
