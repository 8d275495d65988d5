package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/balatro/config"
	"github.com/luca-patrignani/balatro/engine"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [config.yaml]\n", os.Args[0])
		os.Exit(1)
	}
	path := ""
	if len(os.Args) == 2 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := cfg.Level()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("alatro", pterm.FgDarkGray.ToStyle()),
	).Render()

	results := pterm.TableData{{"Episode", "Result", "Ante", "Round", "Money", "Steps"}}
	for n := range cfg.Episodes {
		st, err := runEpisode(cfg, n, logger)
		if err != nil {
			logger.Error("episode failed", "episode", n, "error", err)
			os.Exit(1)
		}
		result := "unfinished"
		if st.Stage.IsEnd() {
			result = string(st.Stage.End)
		}
		results = append(results, []string{
			strconv.Itoa(n), result, strconv.Itoa(int(st.Ante)), strconv.Itoa(st.Round),
			strconv.Itoa(st.Money), strconv.Itoa(st.Steps),
		})
	}
	pterm.Println()
	_ = pterm.DefaultTable.WithHasHeader().WithData(results).Render()
}

func newAgent(cfg config.Config, n int) Agent {
	if cfg.Agent == config.AgentInteractive {
		return NewInteractiveAgent()
	}
	return NewRandomAgent(cfg.NewShuffler(n + 1_000_003))
}

// runEpisode plays one episode with the configured agent until it ends or
// MaxSteps actions were taken.
func runEpisode(cfg config.Config, n int, logger *slog.Logger) (engine.State, error) {
	e, err := engine.New(cfg.Game, cfg.NewShuffler(n), engine.WithLogger(logger))
	if err != nil {
		return engine.State{}, err
	}
	agent := newAgent(cfg, n)
	interactive := cfg.Agent == config.AgentInteractive
	pterm.Info.Printfln("Episode %d: %s", n, e.ID())

	var spinner *pterm.SpinnerPrinter
	if !interactive {
		spinner, _ = pterm.DefaultSpinner.Start("Playing episode " + strconv.Itoa(n) + "...")
	}
	var last []pterm.Panel
	for steps := 0; steps < cfg.MaxSteps && !e.IsOver(); steps++ {
		if interactive {
			printState(e.State(), last...)
		}
		desc, err := agent.Act(e)
		switch {
		case errors.Is(err, errNoLegalAction), err != nil && !interactive:
			if spinner != nil {
				spinner.Fail(err.Error())
			}
			return e.State(), err
		case err != nil:
			pterm.Warning.Println(err.Error())
			continue
		}
		last = []pterm.Panel{getActionPanel(desc)}
	}
	if err := e.VerifyLedger(); err != nil {
		return e.State(), fmt.Errorf("episode %d: %w", n, err)
	}

	st := e.State()
	if spinner != nil {
		if st.Stage.IsEnd() {
			spinner.Success(fmt.Sprintf("Episode %d finished in %d steps", n, st.Steps))
		} else {
			spinner.Warning(fmt.Sprintf("Episode %d stopped after %d steps", n, st.Steps))
		}
	}
	if st.Stage.IsEnd() {
		printState(st, getResultPanel(st))
	}
	return st, nil
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
