package organisation

// Organisation mirrors the organisations document of the previous backend.
type Organisation struct {
	ID      string  `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Country *string `db:"country" json:"country"`
	Sector  *string `db:"sector" json:"sector"`
}
