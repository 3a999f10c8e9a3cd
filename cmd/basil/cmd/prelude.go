package cmd

import (
	"fmt"

	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/eval"
	"github.com/basil-lang/basil/internal/prelude"
	"github.com/basil-lang/basil/internal/reader"
)

// loadPrelude evaluates the bundled bootstrap library into e before any
// user code runs.
func loadPrelude(e *env.Env) error {
	r := reader.New(prelude.Source, "<prelude>")
	forms, err := r.ParseTopLevel()
	if err != nil {
		return fmt.Errorf("internal error: prelude failed to parse: %w", err)
	}
	ev := eval.New()
	for _, form := range forms {
		if _, evalErr := ev.EvalTopLevel(form, e); evalErr != nil {
			return fmt.Errorf("internal error: prelude failed to evaluate: %w", evalErr)
		}
	}
	return nil
}
