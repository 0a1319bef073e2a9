package cmd

import (
	"log/slog"

	"github.com/etnz/credit"
	"github.com/etnz/credit/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	var products predict.Set
	for _, p := range credit.DefaultCatalog().Products() {
		products = append(products, p.Name())
	}
	topics, err := docs.GetAllTopics()
	if err != nil {
		slog.Debug("no topics to complete", "error", err)
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"run":     {},
			"catalog": {},
			"quote": {
				Flags: map[string]complete.Predictor{
					"p": products,
					"r": predict.Something,
					"t": predict.Something,
				},
			},
			"statement": {
				Flags: map[string]complete.Predictor{
					"q":    predict.Something,
					"md":   predict.Nothing,
					"echo": predict.Nothing,
				},
				Args: predict.Files("*"),
			},
			"topic": {Args: predict.Set(topics)},
		},
		Flags: map[string]complete.Predictor{
			"v":     predict.Nothing,
			"plain": predict.Nothing,
		},
	}
}

// Complete answers a shell completion request and exits, if the program was invoked
// for it. Otherwise it returns immediately.
func Complete(name string) {
	Completion().Complete(name)
}
