package entity

import "strings"

// Condition describes the physical state of a secondhand listing. The set
// is closed; the display strings are the canonical values stored in the
// database.
type Condition string

const (
	ConditionSepertiBaru Condition = "Seperti Baru"
	ConditionBagus       Condition = "Bagus"
	ConditionLayakPakai  Condition = "Layak Pakai"
)

// Valid reports whether c is one of the known conditions.
func (c Condition) Valid() bool {
	switch c {
	case ConditionSepertiBaru, ConditionBagus, ConditionLayakPakai:
		return true
	}

	return false
}

// Slug returns the filter identifier form of the condition: lower-cased
// with spaces replaced by hyphens, e.g. "Seperti Baru" -> "seperti-baru".
func (c Condition) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}
