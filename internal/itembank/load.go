package itembank

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/abhisek/gauge/internal/irt"
)

//go:embed seed.json
var seedJSON []byte

// itemFile is the wire form of a bank file entry. Parameters are optional;
// absent values leave the item uncalibrated until the calibration service
// assigns fallbacks.
type itemFile struct {
	Items []struct {
		ID             string   `json:"id"`
		Domain         string   `json:"domain"`
		Prompt         string   `json:"prompt"`
		Options        []string `json:"options"`
		AnswerIndex    int      `json:"answer_index"`
		Difficulty     *float64 `json:"difficulty"`
		Discrimination *float64 `json:"discrimination"`
		Guessing       *float64 `json:"guessing"`
		SampleSize     int      `json:"sample_size"`
	} `json:"items"`
}

// ParseBank validates raw JSON against the bank schema and builds a Bank.
func ParseBank(raw []byte) (*Bank, error) {
	if err := ValidateBankJSON(raw); err != nil {
		return nil, err
	}

	var file itemFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode bank file: %w", err)
	}

	items := make([]Item, 0, len(file.Items))
	for _, raw := range file.Items {
		it := Item{
			ID:          raw.ID,
			Domain:      Domain(raw.Domain),
			Prompt:      raw.Prompt,
			Options:     raw.Options,
			AnswerIndex: raw.AnswerIndex,
			Calibration: Calibration{Source: SourceDefault},
		}
		if raw.Difficulty != nil && raw.Discrimination != nil && raw.Guessing != nil {
			it.Params = irt.Params{
				Discrimination: *raw.Discrimination,
				Difficulty:     *raw.Difficulty,
				Guessing:       *raw.Guessing,
			}
			it.Calibration.Source = SourceEmpirical
			it.Calibration.SampleSize = raw.SampleSize
		}
		items = append(items, it)
	}

	return NewBank(items)
}

// SeedBank returns the bank embedded in the binary. It covers every domain
// with hand-set parameters so a fresh install can run a diagnostic before
// any calibration data exists.
func SeedBank() (*Bank, error) {
	return ParseBank(seedJSON)
}
