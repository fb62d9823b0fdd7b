package model

// Scope identifies the company an operation acts on behalf of.
// Every pipeline step is scoped to exactly one company; nothing in the
// ingestion or dispatch path crosses company boundaries.
type Scope struct {
	CompanyID string `json:"company_id"`
}
