package report

import (
	"github.com/roach88/adicchain/internal/chain"
)

// Summary is the structured form of a chain.Result. Integers are decimal
// strings so arbitrary-precision values survive json and yaml round trips.
type Summary struct {
	Start      string        `json:"start" yaml:"start"`
	Requested  int           `json:"requested" yaml:"requested"`
	Length     int           `json:"length" yaml:"length"`
	Outcome    chain.Outcome `json:"outcome" yaml:"outcome"`
	Chain      []string      `json:"chain" yaml:"chain"`
	Steps      []StepSummary `json:"steps,omitempty" yaml:"steps,omitempty"`
	BreakValue string        `json:"break_value,omitempty" yaml:"break_value,omitempty"`
}

// StepSummary is one applied transform.
type StepSummary struct {
	From     string `json:"from" yaml:"from"`
	Constant string `json:"constant" yaml:"constant"`
	To       string `json:"to" yaml:"to"`
}

// NewSummary converts a verification result.
func NewSummary(res *chain.Result) Summary {
	s := Summary{
		Start:     res.Start.String(),
		Requested: res.Requested,
		Length:    len(res.Chain),
		Outcome:   res.Outcome,
		Chain:     make([]string, len(res.Chain)),
	}
	for i, v := range res.Chain {
		s.Chain[i] = v.String()
	}
	for _, st := range res.Steps {
		s.Steps = append(s.Steps, StepSummary{
			From:     st.From.String(),
			Constant: st.Constant.String(),
			To:       st.To.String(),
		})
	}
	if res.BreakValue != nil {
		s.BreakValue = res.BreakValue.String()
	}
	return s
}
