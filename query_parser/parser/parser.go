package parser

import (
	"strconv"

	lex "StrIndex/query_parser/lexer"

	"github.com/cockroachdb/errors"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrExpectedParen   = errors.New("expected parenthesis")
	ErrWrongArity      = errors.New("wrong number of arguments")
	ErrInvalidOrder    = errors.New("order must be an integer")
	ErrEmptyStatement  = errors.New("empty statement")
)

type Parser struct {
	l         *lex.Lexer
	curToken  lex.Token
	peekToken lex.Token
}

func New(l *lex.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) expect(kind lex.TokenKind, sentinel error) error {
	if p.curToken.Kind != kind {
		return errors.Wrapf(sentinel, "expected %s, got %s (%q)", kind, p.curToken.Kind, p.curToken.Value)
	}
	return nil
}

// ParseStatement parses exactly one command. Trailing tokens are an error.
func (p *Parser) ParseStatement() (Statement, error) {
	cmd := p.curToken
	if cmd.Kind == lex.END {
		return nil, ErrEmptyStatement
	}
	if !cmd.Kind.IsCommand() {
		return nil, errors.Wrapf(ErrUnexpectedToken, "ParseStatement: %s (%q)", cmd.Kind, cmd.Value)
	}
	p.nextToken() // consume command

	args, err := p.parseArgs()
	if err != nil {
		return nil, errors.Wrapf(err, "ParseStatement: %s", cmd.Value)
	}
	if err := p.expect(lex.END, ErrUnexpectedToken); err != nil {
		return nil, errors.Wrapf(err, "ParseStatement: %s", cmd.Value)
	}

	stmt, err := buildStatement(cmd.Kind, args)
	if err != nil {
		return nil, errors.Wrapf(err, "ParseStatement: %s", cmd.Value)
	}
	return stmt, nil
}

// parseArgs reads "(" [arg {"," arg}] ")". Command words are accepted as
// plain arguments so Insert(search, x) stores the key "search".
func (p *Parser) parseArgs() ([]string, error) {
	if err := p.expect(lex.OPENROUNDED, ErrExpectedParen); err != nil {
		return nil, err
	}
	p.nextToken() // consume (

	args := []string{}
	if p.curToken.Kind == lex.CLOSEDROUNDED {
		p.nextToken()
		return args, nil
	}
	for {
		if !isArgument(p.curToken.Kind) {
			return nil, errors.Wrapf(ErrUnexpectedToken, "argument: %s (%q)", p.curToken.Kind, p.curToken.Value)
		}
		args = append(args, p.curToken.Value)
		p.nextToken()

		switch p.curToken.Kind {
		case lex.COMMA:
			p.nextToken()
		case lex.CLOSEDROUNDED:
			p.nextToken()
			return args, nil
		default:
			return nil, errors.Wrapf(ErrExpectedParen, "got %s (%q)", p.curToken.Kind, p.curToken.Value)
		}
	}
}

func isArgument(kind lex.TokenKind) bool {
	return kind == lex.IDENT || kind == lex.STRING || kind.IsCommand()
}

func buildStatement(kind lex.TokenKind, args []string) (Statement, error) {
	switch kind {
	case lex.INITIALIZE:
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		order, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidOrder, "%q", args[0])
		}
		return &InitializeStmt{Order: order}, nil

	case lex.INSERT:
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		return &InsertStmt{Key: args[0], Value: args[1]}, nil

	case lex.SEARCH:
		switch len(args) {
		case 1:
			return &SearchStmt{Key: args[0]}, nil
		case 2:
			return &RangeSearchStmt{From: args[0], To: args[1]}, nil
		}
		return nil, errors.Wrapf(ErrWrongArity, "want 1 or 2, got %d", len(args))

	case lex.USE:
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		return &UseStmt{Name: args[0]}, nil

	case lex.DROP:
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		return &DropStmt{Name: args[0]}, nil

	case lex.PRINT:
		if err := arity(args, 0); err != nil {
			return nil, err
		}
		return &PrintStmt{}, nil

	case lex.STATS:
		if err := arity(args, 0); err != nil {
			return nil, err
		}
		return &StatsStmt{}, nil

	case lex.CHECK:
		if err := arity(args, 0); err != nil {
			return nil, err
		}
		return &CheckStmt{}, nil
	}
	return nil, errors.Wrapf(ErrUnexpectedToken, "%s", kind)
}

func arity(args []string, want int) error {
	if len(args) != want {
		return errors.Wrapf(ErrWrongArity, "want %d, got %d", want, len(args))
	}
	return nil
}
