package domain

// KnowledgeEntry is a canned (question, answer) pair used by the query
// assistant. Entries are matched in load order; the first match wins.
type KnowledgeEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
