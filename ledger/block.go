package ledger

// Block is one entry of the ledger.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Round     Round  `json:"round"`
}

// Round records one question of the quiz.
type Round struct {
	Number     int       `json:"number"`
	Hand1      []string  `json:"hand_1"`
	Hand2      []string  `json:"hand_2"`
	Categories [2]string `json:"categories"`
	Expected   int       `json:"expected"`
	Guess      int       `json:"guess"`
	Correct    bool      `json:"correct"`
}
