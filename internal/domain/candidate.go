package domain

// Candidate is one schema hypothesis: a table name plus the ordered column
// lists and value vocabularies used to interpret whatever row that table
// yields. List order is significant — the first listed column is tried (or
// read) first, and the first candidate to produce a row wins globally.
type Candidate struct {
	Table              string   `validate:"required"`
	TokenColumns       []string `validate:"required,min=1,dive,required"`
	StatusColumns      []string
	ExpiryColumns      []string
	RevokedAtColumns   []string
	SuspendedAtColumns []string
	ActiveColumns      []string
	ApprovedAtColumns  []string
	IDColumns          []string
	ApprovedValues     []string
	RevokedValues      []string
	SuspendedValues    []string
}
