package postgres

import (
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm/clause"
)

// escapeLike makes value match literally inside a LIKE pattern.
func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}

// containsPattern builds the ILIKE pattern for a substring match.
func containsPattern(value string) string {
	return "%" + escapeLike(value) + "%"
}

// iLike is the case-insensitive pattern match the generated fields lack.
func iLike(column clause.Column, pattern string) []gen.Condition {
	return gen.Cond(clause.Expr{SQL: "? ILIKE ?", Vars: []any{column, pattern}})
}

// equalFold compares a text column case-insensitively.
func equalFold(column, value string) []gen.Condition {
	return gen.Cond(clause.Expr{SQL: "LOWER(" + column + ") = LOWER(?)", Vars: []any{value}})
}

// inSubQuery matches column against the rows of a subquery.
func inSubQuery(column clause.Column, subQuery any) []gen.Condition {
	return gen.Cond(clause.Expr{SQL: "? IN (?)", Vars: []any{column, subQuery}})
}
