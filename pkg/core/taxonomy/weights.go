package taxonomy

import (
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"
)

// Weights holds the statement-candidate scoring constants. These are
// empirically tuned against a regression corpus of observed filings, not
// architectural constants; deployments may override them from a config
// file. The only contract is a strong negative bias against parenthetical
// patterns and a positive bias toward roll-forward semantics.
type Weights struct {
	ParentheticalPenalty float64 `json:"parenthetical_penalty"`
	RollForwardBonus     float64 `json:"rollforward_bonus"`
}

// DefaultWeights returns the tuned defaults.
func DefaultWeights() Weights {
	return Weights{
		ParentheticalPenalty: -80,
		RollForwardBonus:     40,
	}
}

// LoadWeights reads scoring weights from an HJSON config file, which
// allows the tuning history to live as comments next to the numbers.
// Missing fields keep their defaults.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	raw, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("failed to read weights config: %w", err)
	}
	if err := hjson.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("failed to parse weights config: %w", err)
	}
	return w, nil
}
