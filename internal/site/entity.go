package site

// Site is a physical location belonging to an organisation.
type Site struct {
	ID             string  `db:"id" json:"id"`
	OrganisationID string  `db:"organisation_id" json:"organisationId"`
	Name           string  `db:"name" json:"name"`
	Location       *string `db:"location" json:"location"`
}
