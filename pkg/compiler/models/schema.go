package models

// Column names shared by both sheet schemas.
const (
	ColumnDate       = "Tanggal"
	ColumnTitle      = "Judul"
	ColumnMedia      = "Media"
	ColumnPage       = "Page Number"
	ColumnJournalist = "Journalist"
	ColumnLink       = "Link"
)

// SchemaKind identifies which column layout a sheet uses.
type SchemaKind int

const (
	// DefaultSchema is the six-column layout.
	DefaultSchema SchemaKind = iota
	// ClientNewsSchema adds secondary-source attribution columns.
	ClientNewsSchema
)

// Schema is the ordered column layout of one output sheet.
type Schema struct {
	Kind    SchemaKind
	Columns []string
}

var clientNewsColumns = []string{
	ColumnDate, ColumnTitle, ColumnMedia, ColumnPage, ColumnJournalist,
	"Narsum", "Jabatan", "Narsum 2", "Jabatan 2",
	ColumnLink,
}

var defaultColumns = []string{
	ColumnDate, ColumnTitle, ColumnMedia, ColumnPage, ColumnJournalist, ColumnLink,
}

// SchemaFor resolves the sheet layout for a category.
func SchemaFor(c Category) Schema {
	if c == ClientNews {
		return Schema{Kind: ClientNewsSchema, Columns: append([]string(nil), clientNewsColumns...)}
	}
	return Schema{Kind: DefaultSchema, Columns: append([]string(nil), defaultColumns...)}
}

// Values returns the cell values of r in schema column order.
// Columns the record has no field for are left empty.
func (s Schema) Values(r Record) []interface{} {
	values := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		switch col {
		case ColumnDate:
			if r.Date != nil {
				values[i] = *r.Date
			}
		case ColumnTitle:
			values[i] = r.Title
		case ColumnMedia:
			values[i] = r.Media
		case ColumnPage:
			values[i] = r.PageNumber
		case ColumnJournalist:
			values[i] = r.Journalist
		case ColumnLink:
			values[i] = r.Link
		}
	}
	return values
}
