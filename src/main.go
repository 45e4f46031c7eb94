package main

import (
	"flag"
	"os"
	"time"

	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/elev"
	"liftsim/src/logger"
	"liftsim/src/report"
	"liftsim/src/timer"
	"liftsim/src/types"

	"github.com/google/uuid"
)

func main() {
	env, err := config.LoadEnv(config.DefaultEnvFile)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("Loading environment failed")
	}

	scenarioPath := flag.String("scenario", env.Scenario, "YAML scenario file; the reference scenario if empty")
	floors := flag.Int("floors", 0, "Override the number of floors")
	startFloor := flag.Int("start", 0, "Override the starting floor")
	tick := flag.Duration("tick", env.TickInterval, "Wall time per simulated tick")
	step := flag.Bool("step", false, "Wait for a key press after every tick")
	preview := flag.Bool("preview", false, "Log the predicted last tick before running")
	trace := flag.Bool("trace", false, "Log the boarding and discharge trace and the final state after the run")
	logLevel := flag.String("log", env.LogLevel, "Log level")
	logFile := flag.String("logfile", env.LogFile, "Also write the log to this file")
	flag.Parse()

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("Bad log level")
	}
	if err := logger.Init(level, *logFile); err != nil {
		logger.Get().Fatal().Err(err).Msg("Logger setup failed")
	}
	defer logger.Close()
	log := logger.Get()

	scenario := config.Reference()
	if *scenarioPath != "" {
		if scenario, err = config.LoadScenario(*scenarioPath); err != nil {
			log.Fatal().Err(err).Msg("Loading scenario failed")
		}
	}
	if *floors > 0 {
		scenario.Floors = *floors
	}
	if *startFloor > 0 {
		scenario.StartFloor = *startFloor
	}

	runID := uuid.NewString()
	recorder := &report.Recorder{}
	var sink elev.Sink = report.NewLogSink(*log, runID)
	if *trace {
		sink = report.Multi{sink, recorder}
	}
	switch {
	case *step:
		sink = report.Paced{Sink: sink, Pacer: timer.KeyPacer{Quit: func() { os.Exit(130) }}}
	case *tick > 0:
		sink = report.Paced{Sink: sink, Pacer: timer.NewPacer(*tick)}
	}

	car, err := elev.NewCar(scenario.Floors, scenario.StartFloor, sink)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating car failed")
	}
	d := dispatcher.New(car, scenario.Requests)

	log.Info().
		Str("run", runID).
		Int("floors", scenario.Floors).
		Int("start", scenario.StartFloor).
		Int("requests", len(scenario.Requests)).
		Msg("Starting simulation")

	if *preview {
		last, err := d.Preview()
		if err != nil {
			log.Fatal().Err(err).Msg("Preview failed")
		}
		log.Info().Str("run", runID).Int("last_tick", last).Msg("Preview")
	}

	start := time.Now()
	if err := d.Run(); err != nil {
		log.Error().Err(err).Str("run", runID).Int("time", d.Clock()).Msg("Simulation aborted")
		logger.Close()
		os.Exit(1)
	}
	if *trace {
		for _, ev := range recorder.Events {
			if ev.Kind != types.EV_State {
				log.Info().Str("run", runID).Msg(elev.FormatEvent(ev))
			}
		}
		if last, ok := recorder.Last(); ok {
			log.Info().Str("run", runID).Msg("Final state: " + elev.FormatEvent(last))
		}
	}
	summary := d.Summary()
	log.Info().
		Str("run", runID).
		Int("ticks", summary.Ticks).
		Int("released", summary.Released).
		Int("boarded", summary.Boarded).
		Int("discharged", summary.Discharged).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation finished")
}
