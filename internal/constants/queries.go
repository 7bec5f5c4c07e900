package constants

const (
	InsertLead = `
	INSERT INTO leads (id, kind, name, email, phone, message, car_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING *
	`

	ListLeads = `
	SELECT * FROM leads ORDER BY created_at DESC
	`

	ListLeadsByKind = `
	SELECT * FROM leads WHERE kind = $1 ORDER BY created_at DESC
	`
)
