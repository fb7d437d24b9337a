package inspect

import (
	"context"
	"fmt"
	"strings"
)

// Query executes a read-only SELECT statement and renders the result as a
// markdown table. Anything other than SELECT is rejected. When the query
// carries no LIMIT clause and limit is positive, one is appended.
func (s *Service) Query(ctx context.Context, sqlText string, limit int) (string, error) {
	query := strings.TrimSpace(sqlText)
	if !strings.HasPrefix(strings.ToLower(query), "select") {
		return "", fmt.Errorf("only SELECT queries are supported")
	}

	if limit > 0 && !strings.Contains(strings.ToLower(query), "limit") {
		query = fmt.Sprintf("%s LIMIT %d", strings.TrimSuffix(query, ";"), limit)
	}

	result, err := s.adapter.Query(ctx, query)
	if err != nil {
		return "", fmt.Errorf("query failed: %w", err)
	}

	if len(result.Rows) == 0 {
		return "Query executed successfully, but returned no rows.\n", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Query result (%d rows):\n\n", len(result.Rows))
	b.WriteString(renderMarkdownTable(result.Columns, result.Rows))
	return b.String(), nil
}
