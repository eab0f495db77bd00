package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// conditions accumulates parameterized WHERE clauses with positional
// placeholders. Values never reach the SQL text itself.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) add(column, op string, value any) {
	c.args = append(c.args, value)
	c.clauses = append(c.clauses, fmt.Sprintf("%s %s $%d", column, op, len(c.args)))
}

func (c *conditions) addRaw(clause string) {
	c.clauses = append(c.clauses, clause)
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}
