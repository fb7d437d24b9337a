package types

// Column describes a single table column as reported by the engine.
type Column struct {
	Name            string
	Type            string
	Nullable        bool
	IsPrimary       bool
	IsAutoIncrement bool
	Default         string
}

// TableInfo pairs a table name with its current row count.
type TableInfo struct {
	Name     string
	RowCount int
}

// ResultSet holds the rows returned by a query together with the column
// order reported by the driver, since Go maps do not preserve it.
type ResultSet struct {
	Columns []string
	Rows    []map[string]interface{}
}
