package schema

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Statement is a single executable SQL statement with the file it came from.
type Statement struct {
	File string
	SQL  string
}

var blockCommentRegex = regexp.MustCompile(`/\*[\s\S]*?\*/`)

// RemoveComments strips -- line comments and /* */ block comments.
func RemoveComments(sql string) string {
	var result strings.Builder
	result.Grow(len(sql))

	start := 0
	for i := 0; i < len(sql); i++ {
		if i+1 < len(sql) && sql[i] == '-' && sql[i+1] == '-' {
			result.WriteString(sql[start:i])
			for i < len(sql) && sql[i] != '\n' {
				i++
			}
			if i < len(sql) {
				result.WriteByte('\n')
			}
			start = i + 1
		}
	}
	if start < len(sql) {
		result.WriteString(sql[start:])
	}

	return blockCommentRegex.ReplaceAllString(result.String(), "")
}

// Split breaks SQL content into individual statements on semicolons.
func Split(content string) []string {
	var statements []string

	parts := strings.Split(RemoveComments(content), ";")
	for _, part := range parts {
		statement := strings.TrimSpace(part)
		if statement != "" {
			statements = append(statements, statement)
		}
	}

	return statements
}

// LoadStatements reads every file and returns its statements in file order.
func LoadStatements(files []string) ([]Statement, error) {
	var statements []Statement

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file %s: %w", file, err)
		}
		for _, stmt := range Split(string(content)) {
			statements = append(statements, Statement{File: file, SQL: stmt})
		}
	}

	return statements, nil
}
