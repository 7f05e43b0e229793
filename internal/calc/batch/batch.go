package batch

import (
	"fmt"

	compaction "Tonnage/internal/calc/compaction"
)

type Input struct {
	Items []compaction.Input `json:"items"`
}

type Result struct {
	Results []compaction.Result `json:"results"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]compaction.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := compaction.Calculate(item)
		if err != nil {
			return Result{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
