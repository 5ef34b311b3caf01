package catalog

// Chapter belongs to exactly one work and links to its content.
// Chapters carry no ordinal field; listing order is insertion order.
type Chapter struct {
	ID         *int64 `db:"id"`
	WorkID     int64  `db:"work_id"`
	UploaderID int64  `db:"uploader_id"`
	Label      string `db:"label"`
	Link       string `db:"link"`
}
