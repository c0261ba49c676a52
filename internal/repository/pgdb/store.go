package pgdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Хранилище работает строго по одной таблице на запрос: соединение данных
// между таблицами выполняется в usecase-слое. Фильтр — конъюнкция условий
// по колонкам одной таблицы.

// Op — оператор сравнения в условии фильтра.
type Op string

const (
	OpEq  Op = "="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpIn  Op = "in"
)

// Cond — одно условие фильтра по колонке.
type Cond struct {
	Column string
	Op     Op
	Value  any
}

func Eq(column string, value any) Cond  { return Cond{Column: column, Op: OpEq, Value: value} }
func Lt(column string, value any) Cond  { return Cond{Column: column, Op: OpLt, Value: value} }
func Lte(column string, value any) Cond { return Cond{Column: column, Op: OpLte, Value: value} }
func Gt(column string, value any) Cond  { return Cond{Column: column, Op: OpGt, Value: value} }
func Gte(column string, value any) Cond { return Cond{Column: column, Op: OpGte, Value: value} }

// In принимает срез значений; в SQL транслируется в `= ANY($n)`.
func In(column string, values any) Cond { return Cond{Column: column, Op: OpIn, Value: values} }

// buildSelect собирает однотабличный SELECT с конъюнкцией условий.
func buildSelect(table string, columns []string, conds []Cond, orderBy string) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(table)

	args := writeWhere(&sb, conds)

	if orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(orderBy)
	}

	return sb.String(), args
}

// buildDelete собирает однотабличный DELETE с конъюнкцией условий.
func buildDelete(table string, conds []Cond) (string, []any) {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(table)

	args := writeWhere(&sb, conds)
	return sb.String(), args
}

func writeWhere(sb *strings.Builder, conds []Cond) []any {
	if len(conds) == 0 {
		return nil
	}

	args := make([]any, 0, len(conds))
	sb.WriteString(" WHERE ")
	for i, cond := range conds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		args = append(args, cond.Value)
		if cond.Op == OpIn {
			fmt.Fprintf(sb, "%s = ANY($%d)", cond.Column, len(args))
			continue
		}
		fmt.Fprintf(sb, "%s %s $%d", cond.Column, cond.Op, len(args))
	}

	return args
}

// postgresDuplicate распознаёт нарушение уникального ограничения (23505).
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
