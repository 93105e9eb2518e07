package parser

// Statement is implemented by every parsed command.
type Statement interface {
	statementNode()
}

// Initialize(order): (re)creates the current index with the given order.
type InitializeStmt struct {
	Order int
}

// Insert(key, value)
type InsertStmt struct {
	Key   string
	Value string
}

// Search(key)
type SearchStmt struct {
	Key string
}

// Search(from, to): inclusive on both ends.
type RangeSearchStmt struct {
	From string
	To   string
}

// Use(name) selects the index later commands operate on.
type UseStmt struct {
	Name string
}

type DropStmt struct {
	Name string
}

type PrintStmt struct{}

type StatsStmt struct{}

type CheckStmt struct{}

func (*InitializeStmt) statementNode()  {}
func (*InsertStmt) statementNode()      {}
func (*SearchStmt) statementNode()      {}
func (*RangeSearchStmt) statementNode() {}
func (*UseStmt) statementNode()         {}
func (*DropStmt) statementNode()        {}
func (*PrintStmt) statementNode()       {}
func (*StatsStmt) statementNode()       {}
func (*CheckStmt) statementNode()       {}
