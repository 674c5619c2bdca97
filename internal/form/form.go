// Package form holds one form model per entity dialog. A form carries the
// raw field values as typed by the user, knows how to validate them and how
// to shape the accepted values into the API's wire payload. Create and edit
// are an explicit mode, not inferred from which fields happen to be set.
package form

// Mode tags a form as creating a new entity or editing an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)
