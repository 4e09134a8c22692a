package solve

import "sort"

type ActionType int8

const (
	ActionReveal ActionType = iota
	ActionFlag
)

func (t ActionType) String() string {
	if t == ActionFlag {
		return "flag"
	}
	return "reveal"
}

// Action is one move for the consumer to make. Guess marks the
// lowest-risk reveal emitted when no certain move exists.
type Action struct {
	Cell        int        `json:"cell"`
	Type        ActionType `json:"type"`
	Probability float64    `json:"probability"`
	Guess       bool       `json:"guess"`
}

// selectActions turns a probability map into moves: every certainly
// safe cell becomes a reveal and every certain mine a flag, ordered by
// cell index. With no certainties it returns the single reveal with
// the lowest mine probability, ties broken by lowest index so runs are
// reproducible.
func selectActions(probs map[int]float64) []Action {
	var sure []Action
	guess := Action{Cell: -1, Probability: 2}
	for cell, p := range probs {
		switch {
		case p == 0:
			sure = append(sure, Action{Cell: cell, Type: ActionReveal})
		case p == 1:
			sure = append(sure, Action{Cell: cell, Type: ActionFlag, Probability: 1})
		case p < guess.Probability ||
			p == guess.Probability && cell < guess.Cell:
			guess = Action{Cell: cell, Probability: p, Guess: true}
		}
	}
	if len(sure) > 0 {
		sort.Slice(sure, func(i, j int) bool {
			return sure[i].Cell < sure[j].Cell
		})
		return sure
	}
	if guess.Cell < 0 {
		return nil
	}
	return []Action{guess}
}
