package templates

// Goal is a communication objective that biases remote generation.
type Goal struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var goals = []Goal{
	{ID: "inform", Label: "Inform", Description: "Educate and provide clear information"},
	{ID: "persuade", Label: "Persuade", Description: "Convince and influence decisions"},
	{ID: "entertain", Label: "Entertain", Description: "Engage and delight the audience"},
	{ID: "sell", Label: "Sell", Description: "Drive sales and conversions"},
	{ID: "educate", Label: "Educate", Description: "Teach and develop skills"},
}

// Goals returns the supported prompt goals in display order.
func Goals() []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	return out
}

// ValidGoal reports whether id names a supported goal. The empty string is
// valid and means no goal was chosen.
func ValidGoal(id string) bool {
	if id == "" {
		return true
	}
	for _, g := range goals {
		if g.ID == id {
			return true
		}
	}
	return false
}
