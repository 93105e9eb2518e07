// Package session runs command scripts line by line through the
// lexer, parser, code generator and VM.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	indexmanager "StrIndex/index_manager"
	executor "StrIndex/query_executor"
	codegen "StrIndex/query_parser/code-generator"
	lex "StrIndex/query_parser/lexer"
	"StrIndex/query_parser/parser"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Prompt is written before each line when a session is interactive.
const Prompt = "idx> "

const maxLineSize = 1 << 20

type Session struct {
	vm     *executor.VM
	out    io.Writer
	logger *zap.Logger
}

// Summary counts what Run did.
type Summary struct {
	Commands int
	Errors   int
}

func New(im *indexmanager.IndexManager, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		vm:     executor.NewVM(im, out, logger),
		out:    out,
		logger: logger,
	}
}

// CurrentIndex is the index the next command operates on.
func (s *Session) CurrentIndex() string {
	return s.vm.CurrentIndex()
}

// Exec runs a single command.
func (s *Session) Exec(line string) error {
	stmt, err := parser.New(lex.New(line)).ParseStatement()
	if err != nil {
		return err
	}
	instructions, err := codegen.EmitBytecode(stmt)
	if err != nil {
		return err
	}
	return s.vm.Execute(instructions)
}

// Run executes commands from r until EOF or an exit line. Blank lines and
// lines starting with # are skipped. A failing command is reported on the
// output as "Error: ..." and the script continues. When prompt is not nil
// the prompt is written to it before every line.
func (s *Session) Run(r io.Reader, prompt io.Writer) (Summary, error) {
	var sum Summary
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for {
		if prompt != nil {
			fmt.Fprint(prompt, Prompt)
		}
		if !scanner.Scan() { // EOF or Ctrl+D
			break
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			break
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sum.Commands++
		if err := s.Exec(line); err != nil {
			sum.Errors++
			s.logger.Debug("command failed", zap.Int("line", lineNo), zap.String("command", line), zap.Error(err))
			if _, werr := fmt.Fprintf(s.out, "Error: %v\n", err); werr != nil {
				return sum, errors.Wrap(werr, "Run")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, errors.Wrapf(err, "Run: line %d", lineNo+1)
	}
	return sum, nil
}
