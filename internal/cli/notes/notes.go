// Package notes holds the non-interactive note commands.
package notes

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Add a note."`
	List   NoteListCmd   `cmd:"" help:"List notes, most recently edited first."`
	Show   NoteShowCmd   `cmd:"" help:"Show a note."`
	Edit   NoteEditCmd   `cmd:"" help:"Edit a note."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a note."`
	Status NoteStatusCmd `cmd:"" help:"Change or advance a note's status."`
	Move   NoteMoveCmd   `cmd:"" help:"Move a note to a priority matrix quadrant."`
}
