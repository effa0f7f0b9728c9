package domain

// Cell is the transient list projection of a room: what the UI needs to
// render one row. Cells are recomputed wholesale on every directory
// reload and never patched in place, so they always agree with the
// persisted records.
type Cell struct {
	ID    string // room address
	Label string // node part of the address
	Badge int    // unread message count
}
