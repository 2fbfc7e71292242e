// Package batch runs a turbine analysis over a list of operating points
// in one request, e.g. to sweep exhaust quality or heat-loss scenarios.
package batch

import (
	"Thermex/internal/calc/turbine"
	"Thermex/internal/calcerr"
	"Thermex/internal/steam"
)

type TurbineBatchInput struct {
	Items []turbine.Input `json:"items"`
}

type TurbineBatchResult struct {
	Results []turbine.Result `json:"results"`
}

func CalculateTurbine(props steam.Properties, in TurbineBatchInput) (TurbineBatchResult, error) {
	if len(in.Items) == 0 {
		return TurbineBatchResult{}, calcerr.Degenerate("no items")
	}
	out := TurbineBatchResult{Results: make([]turbine.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := turbine.Calculate(props, item)
		if err != nil {
			return TurbineBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
