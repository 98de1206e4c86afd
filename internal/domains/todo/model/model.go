package model

const (
	TableName  = "todo"
	EntityName = "todo"

	FieldID      = "id"
	FieldName    = "name"
	FieldChecked = "checked"
)

// Todo is a stored item. ID is assigned by the store and never reused.
type Todo struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Checked bool   `db:"checked"`
}
