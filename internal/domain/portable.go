package domain

// PortableWatchlist is the transfer form of a Watchlist used by the
// share/import exchange. It is structurally identical to the stored
// form but carries fresh identities with watched state and reviews
// reset, so an export is always an unstarted copy of the catalog
// rather than a transfer of personal watch history.
type PortableWatchlist struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Icon  string         `json:"icon"`
	Items []PortableItem `json:"items"`
}

// PortableItem is one entry of a PortableWatchlist.
type PortableItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	PosterURL string `json:"posterUrl"`
	Watched   bool   `json:"watched"`
	Order     int    `json:"order"`
	Review    string `json:"review"`
}
