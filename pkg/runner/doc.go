/*
Package runner implements the interactive read-eval-print loop of the magazine engine.

It acts as the bridge between an Evaluator and the outside world: it reads words through a
pluggable handler, sanitises them, evaluates them and reports verdicts back through the same
handler.

# Key Components

  - Runner: The loop. Ctrl+C interrupts the current evaluation without leaving the loop.
  - IOHandler: Decouples how words are read and verdicts are shown.
  - TextHandler: Prompted, human-readable IO for terminals.
  - JSONHandler: JSON-Lines IO for scripts and other programs.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx, engine); err != nil {
		log.Fatal(err)
	}
*/
package runner
