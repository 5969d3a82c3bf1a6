package batch

import (
	"fmt"

	sizing "github.com/KhiZeus/PlaneProject/internal/calc/sizing"
)

type MissionBatchInput struct {
	Items []sizing.Input `json:"items"`
}

type MissionBatchResult struct {
	Results []sizing.Result `json:"results"`
}

// CalculateMissions sizes every mission in the batch. One failing mission
// fails the batch: partial fleets are not useful for trade studies.
func CalculateMissions(in MissionBatchInput) (MissionBatchResult, error) {
	if len(in.Items) == 0 {
		return MissionBatchResult{}, fmt.Errorf("no items")
	}
	out := MissionBatchResult{Results: make([]sizing.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := sizing.Calculate(item)
		if err != nil {
			return MissionBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
