package inspect

import (
	"encoding/json"
	"fmt"
	"strings"
)

// renderMarkdownTable formats rows as a GitHub-style markdown table in the
// driver's column order.
func renderMarkdownTable(columns []string, rows []map[string]interface{}) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(columns, " | ") + " |\n")

	separators := make([]string, len(columns))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = strings.ReplaceAll(formatCell(row[col]), "|", "\\|")
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return b.String()
}

func formatCell(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	case map[string]interface{}, []interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}
