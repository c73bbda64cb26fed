package services

import (
	"fmt"
	"regexp"
	"strings"
)

// filterableColumns is the only set of columns a $filter or $orderby may name.
var filterableColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"box_id":     true,
	"created_at": true,
}

var (
	comparisonRegex  = regexp.MustCompile(`(?i)^(\w+)\s+(eq|ne|gt|ge|lt|le|startswith|contains|endswith)\s+'([^']*)'$`)
	termRegex        = regexp.MustCompile(`^\w+\s+\w+\s+'[^']*'`)
	conjunctionRegex = regexp.MustCompile(`(?i)^\s+(and|or)\s+`)
	orderRegex       = regexp.MustCompile(`(?i)^(\w+)(?:\s+(asc|desc))?$`)
)

// ParseFilter turns an expression such as
//
//	box_id eq '3' and name contains 'pan'
//
// into a parameterised WHERE clause. Parentheses are not supported.
func ParseFilter(filter string) (string, []interface{}, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return "", nil, nil
	}

	var params []interface{}
	var clause strings.Builder
	rest := filter
	for {
		term := termRegex.FindString(rest)
		if term == "" {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidFilter, rest)
		}
		sqlExpr, value, err := parseComparison(term)
		if err != nil {
			return "", nil, err
		}
		clause.WriteString(sqlExpr)
		params = append(params, value)

		rest = rest[len(term):]
		if rest == "" {
			break
		}
		// conjunctions are only read between terms, never inside a quoted value
		conjunction := conjunctionRegex.FindStringSubmatch(rest)
		if conjunction == nil {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidFilter, strings.TrimSpace(rest))
		}
		clause.WriteString(" ")
		clause.WriteString(strings.ToUpper(conjunction[1]))
		clause.WriteString(" ")
		rest = rest[len(conjunction[0]):]
	}
	return clause.String(), params, nil
}

func parseComparison(term string) (string, interface{}, error) {
	matches := comparisonRegex.FindStringSubmatch(term)
	if len(matches) != 4 {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidFilter, term)
	}
	column := strings.ToLower(matches[1])
	operator := strings.ToLower(matches[2])
	value := matches[3]

	if !filterableColumns[column] {
		return "", nil, fmt.Errorf("%w: unknown column %q", ErrInvalidFilter, column)
	}

	switch operator {
	case "eq":
		return fmt.Sprintf("%s = ?", column), value, nil
	case "ne":
		return fmt.Sprintf("%s != ?", column), value, nil
	case "gt":
		return fmt.Sprintf("%s > ?", column), value, nil
	case "ge":
		return fmt.Sprintf("%s >= ?", column), value, nil
	case "lt":
		return fmt.Sprintf("%s < ?", column), value, nil
	case "le":
		return fmt.Sprintf("%s <= ?", column), value, nil
	case "startswith":
		return fmt.Sprintf("LOWER(%s) LIKE ?", column), strings.ToLower(value) + "%", nil
	case "contains":
		return fmt.Sprintf("LOWER(%s) LIKE ?", column), "%" + strings.ToLower(value) + "%", nil
	case "endswith":
		return fmt.Sprintf("LOWER(%s) LIKE ?", column), "%" + strings.ToLower(value), nil
	}
	return "", nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidFilter, operator)
}

// ParseOrder validates a comma separated "<column> [asc|desc]" list.
func ParseOrder(order string) (string, error) {
	parts := strings.Split(order, ",")
	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		matches := orderRegex.FindStringSubmatch(strings.TrimSpace(part))
		if matches == nil {
			return "", fmt.Errorf("%w: order %q", ErrInvalidFilter, part)
		}
		column := strings.ToLower(matches[1])
		if !filterableColumns[column] {
			return "", fmt.Errorf("%w: unknown column %q", ErrInvalidFilter, column)
		}
		direction := strings.ToLower(matches[2])
		if direction == "" {
			direction = "asc"
		}
		clauses = append(clauses, column+" "+direction)
	}
	return strings.Join(clauses, ", "), nil
}
