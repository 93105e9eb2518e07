package lex

type TokenKind int

const (
	// identifier
	IDENT TokenKind = iota

	// commands
	INITIALIZE
	INSERT
	SEARCH
	USE
	DROP
	PRINT
	STATS
	CHECK

	STRING
	COMMA
	OPENROUNDED
	CLOSEDROUNDED
	END
	INVALID
)

type Token struct {
	Kind  TokenKind
	Value string
}

func (tk TokenKind) String() string {
	switch tk {
	case IDENT:
		return "IDENT"
	case INITIALIZE:
		return "INITIALIZE"
	case INSERT:
		return "INSERT"
	case SEARCH:
		return "SEARCH"
	case USE:
		return "USE"
	case DROP:
		return "DROP"
	case PRINT:
		return "PRINT"
	case STATS:
		return "STATS"
	case CHECK:
		return "CHECK"
	case STRING:
		return "STRING"
	case COMMA:
		return "COMMA"
	case OPENROUNDED:
		return "OPENROUNDED"
	case CLOSEDROUNDED:
		return "CLOSEDROUNDED"
	case END:
		return "END"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// IsCommand reports whether tk names a command.
func (tk TokenKind) IsCommand() bool {
	return tk >= INITIALIZE && tk <= CHECK
}
