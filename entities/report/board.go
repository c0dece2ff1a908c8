package report

import "gestaobikes/schemas"

type BoardColumn struct {
	Stage    schemas.Stage     `json:"stage"`
	Count    int               `json:"count"`
	Contacts []schemas.Contact `json:"contacts"`
}

type Board struct {
	Columns    []BoardColumn     `json:"columns"`
	Unassigned []schemas.Contact `json:"unassigned"`
}

// BuildBoard lays contacts out in the kanban columns, keeping their order.
func BuildBoard(contacts []schemas.Contact) Board {
	board := Board{
		Columns:    make([]BoardColumn, len(schemas.Stages)),
		Unassigned: []schemas.Contact{},
	}
	index := map[schemas.Stage]int{}
	for i, stage := range schemas.Stages {
		board.Columns[i] = BoardColumn{Stage: stage, Contacts: []schemas.Contact{}}
		index[stage] = i
	}

	for _, c := range contacts {
		i, ok := index[c.Stage]
		if !ok {
			board.Unassigned = append(board.Unassigned, c)
			continue
		}
		board.Columns[i].Contacts = append(board.Columns[i].Contacts, c)
		board.Columns[i].Count++
	}
	return board
}
