package domain

import "strconv"

// Statute code identifiers.
const (
	CodePenal        = "ipc"  // Indian Penal Code
	CodeProcedure    = "crpc" // Code of Criminal Procedure
	CodeConstitution = "constitution"
)

// SectionID is the tagged representation of a statutory section identifier.
// Identifiers like "41A" carry a numeric part and an optional letter suffix;
// keeping them structured avoids ad hoc string scanning.
type SectionID struct {
	Number int    `json:"number"`
	Suffix string `json:"suffix,omitempty"`
}

// String renders the canonical form, e.g. "41A" or "302".
func (s SectionID) String() string {
	return strconv.Itoa(s.Number) + s.Suffix
}

// StatuteSection is one entry in a statute table, keyed by (Code, ID).
type StatuteSection struct {
	Code        string    `json:"code"`
	ID          SectionID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Domain      string    `json:"domain"`
	Subdomains  []string  `json:"subdomains,omitempty"`
}

// ConstitutionArticle is one constitutional reference.
type ConstitutionArticle struct {
	Article     string   `json:"article"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Domains     []string `json:"domains"`
}
