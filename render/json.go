package render

import (
	"encoding/json"
	"io"

	"github.com/nobu-k/100-math-sub004/seed"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

type jsonSheet struct {
	Topic    string           `json:"topic"`
	Title    string           `json:"title"`
	Seed     seed.Seed        `json:"seed"`
	Params   worksheet.Params `json:"params,omitempty"`
	Problems []jsonProblem    `json:"problems"`
}

type jsonProblem struct {
	Kind     string            `json:"kind"`
	Question string            `json:"question"`
	Answer   string            `json:"answer,omitempty"`
	Data     worksheet.Problem `json:"data,omitempty"`
}

// JSON writes sheet as an indented JSON document. Without answers, each
// record keeps only its kind and question: the raw data would give the
// answer away.
func JSON(w io.Writer, sheet worksheet.Sheet, answers bool) error {
	out := jsonSheet{
		Topic:    sheet.Topic,
		Title:    sheet.Title,
		Seed:     sheet.Seed,
		Params:   sheet.Params,
		Problems: make([]jsonProblem, len(sheet.Problems)),
	}
	for i, p := range sheet.Problems {
		out.Problems[i] = jsonProblem{Kind: p.Kind(), Question: p.Question()}
		if answers {
			out.Problems[i].Answer = p.Answer()
			out.Problems[i].Data = p
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
