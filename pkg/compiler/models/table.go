package models

// Table is one table pulled out of a source document.
type Table struct {
	// Header is the trimmed text of the first cell of the first row.
	Header string `json:"header"`
	// Rows holds every row after the header row, as trimmed cell texts.
	Rows [][]string `json:"rows,omitempty"`
}

// Document is the set of tables found in a single source file.
type Document struct {
	// Path is the file path the tables were read from.
	Path string `json:"path"`
	// Tables lists the top-level tables in document order.
	Tables []Table `json:"tables,omitempty"`
}
