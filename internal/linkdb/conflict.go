package linkdb

// Conflict identifies which unique key of a candidate entry collides with an
// existing entry.
type Conflict int

const (
	ConflictNone Conflict = iota
	ConflictURI
	ConflictID
)

func (c Conflict) String() string {
	switch c {
	case ConflictURI:
		return "uri"
	case ConflictID:
		return "id"
	default:
		return "none"
	}
}

// Conflict scans every entry for one whose uri equals uri or whose id equals
// id. The whole collection is always examined. When both keys collide the uri
// collision is reported.
func (db Database) Conflict(uri, id string) Conflict {
	var uriTaken, idTaken bool
	for _, e := range db {
		if e.URI == uri {
			uriTaken = true
		}
		if e.ID == id {
			idTaken = true
		}
	}
	switch {
	case uriTaken:
		return ConflictURI
	case idTaken:
		return ConflictID
	default:
		return ConflictNone
	}
}
