package entity

// GameRecord is one completed game found by the enumerator.
type GameRecord struct {
	Moves   []MoveID   `json:"moves"`
	Outcome GameStatus `json:"outcome"`
}

func (that GameRecord) Winner() Mark {
	return that.Outcome.Winner()
}

// Summary tallies the outcomes of an enumeration run.
type Summary struct {
	RunID    string `json:"run_id,omitempty"`
	Total    int    `json:"total"`
	XWins    int    `json:"x_wins"`
	OWins    int    `json:"o_wins"`
	Draws    int    `json:"draws"`
	Shortest int    `json:"shortest"`
	Longest  int    `json:"longest"`
}

func (that *Summary) Add(record GameRecord) {
	that.Total++

	switch record.Winner() {
	case PlayerX:
		that.XWins++
	case PlayerO:
		that.OWins++
	default:
		that.Draws++
	}

	length := len(record.Moves)
	if that.Shortest == 0 || length < that.Shortest {
		that.Shortest = length
	}
	if length > that.Longest {
		that.Longest = length
	}
}

// Merge folds another summary into this one, keeping this run id.
func (that *Summary) Merge(other Summary) {
	if other.Total == 0 {
		return
	}

	if that.Shortest == 0 || other.Shortest < that.Shortest {
		that.Shortest = other.Shortest
	}
	if other.Longest > that.Longest {
		that.Longest = other.Longest
	}

	that.Total += other.Total
	that.XWins += other.XWins
	that.OWins += other.OWins
	that.Draws += other.Draws
}
