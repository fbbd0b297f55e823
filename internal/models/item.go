package models

// Item is a row of the items table.
type Item struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
