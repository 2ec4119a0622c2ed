package cmd

import (
	"github.com/etnz/finview/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete installs shell completion for the fv command line. It must run
// before flag parsing: when invoked by the shell's completion hook it
// answers and exits the process.
func Complete() {
	fv := &complete.Command{
		Flags: map[string]complete.Predictor{
			"api":      predict.Something,
			"workbook": predict.Files("*.xlsx"),
		},
		Sub: map[string]*complete.Command{
			"login": {Flags: map[string]complete.Predictor{
				"u": predict.Something,
			}},
			"logout": {},
			"tabs":   {},
			"table": {Flags: map[string]complete.Predictor{
				"tab":   predict.Something,
				"years": predict.Something,
				"force": predict.Nothing,
			}},
			"dashboard": {},
			"serve": {Flags: map[string]complete.Predictor{
				"workbook": predict.Files("*.xlsx"),
				"user":     predict.Something,
				"addr":     predict.Something,
			}},
			"assist": {},
			"topic":  {Args: predict.Set(docs.AllTopics())},
		},
	}
	fv.Complete("fv")
}
