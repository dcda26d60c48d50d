package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LeadID is the optional backend identifier of a lead. The backend may send
// it as a JSON string or a number; either way it is kept as display text.
type LeadID string

// UnmarshalJSON accepts strings, numbers and null.
func (id *LeadID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = LeadID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = LeadID(n.String())
	return nil
}

// Lead is a person record inferred from a scraped page. Every field is
// produced by the backend and treated as an opaque display string.
type Lead struct {
	ID                  LeadID `json:"id,omitempty"`
	Name                string `json:"name"`
	JobTitle            string `json:"job_title"`
	Company             string `json:"company"`
	InferredEmail       string `json:"inferred_email"`
	VerifiedStatus      string `json:"verified_status"`
	VerificationDetails string `json:"verification_details"`
}

// RowKey identifies the lead within a results table: the ID when present,
// otherwise the inferred email.
func (l Lead) RowKey() string {
	if l.ID != "" {
		return string(l.ID)
	}
	return l.InferredEmail
}

// LeadColumns lists the displayed lead fields in table order.
var LeadColumns = []string{
	"name",
	"job_title",
	"company",
	"inferred_email",
	"verified_status",
	"verification_details",
}

// Field returns the value of the column named by its JSON key.
func (l Lead) Field(column string) string {
	switch column {
	case "name":
		return l.Name
	case "job_title":
		return l.JobTitle
	case "company":
		return l.Company
	case "inferred_email":
		return l.InferredEmail
	case "verified_status":
		return l.VerifiedStatus
	case "verification_details":
		return l.VerificationDetails
	default:
		return ""
	}
}

var columnCaser = cases.Title(language.English)

// ColumnLabel turns a column key such as "job_title" into "Job Title".
func ColumnLabel(column string) string {
	return columnCaser.String(strings.ReplaceAll(column, "_", " "))
}
