package browse

// Package browse implements the catalog view-state machine. It mediates
// between the retrieval collaborator (Fetcher) and the UI: one outstanding
// fetch at a time, Loading/Error/Empty/Loaded phases, and a local
// case-insensitive name filter over the last fetched set. Stale fetch
// resolutions are discarded via a request generation counter.
