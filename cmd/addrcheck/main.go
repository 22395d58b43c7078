package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/chouzar/contrato/pkg/address"
	"github.com/chouzar/contrato/pkg/config"
	"github.com/chouzar/contrato/pkg/logger"
	"github.com/chouzar/contrato/pkg/refdata"
	"github.com/chouzar/contrato/pkg/validate"
)

// Config holds the CLI environment configuration.
type Config struct {
	LogLevel    string `env:"ADDRCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"ADDRCHECK_LOG_FORMAT" envDefault:"text"`
	RegionsFile string `env:"ADDRCHECK_REGIONS_FILE"`
}

type runIDKey struct{}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "addrcheck: %v\n", err)
		return 2
	}

	log := logger.New(
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(logger.Component("addrcheck")),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	ctx := context.WithValue(context.Background(), runIDKey{}, uuid.NewString())

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: addrcheck COUNTRY STATE CITY [ZIP [STREET]]")
		return 2
	}

	regions := address.Regions
	if cfg.RegionsFile != "" {
		table, err := refdata.LoadFile(cfg.RegionsFile)
		if err != nil {
			log.ErrorContext(ctx, "failed to load regions table", logger.Error(err))
			return 2
		}
		regions = table
		log.DebugContext(ctx, "loaded regions table",
			"path", cfg.RegionsFile,
			"countries", table.Len(),
		)
	}

	pipeline := address.NewPipeline(regions)
	rec := address.New(args...)

	if err := pipeline.Validate(rec); err != nil {
		failure, ok := validate.AsFailure(err)
		if !ok {
			log.ErrorContext(ctx, "validation aborted", logger.Error(err))
			return 2
		}
		log.WarnContext(ctx, "address is invalid",
			logger.Kind(string(failure.Kind)),
			logger.Predicate(failure.Predicate),
			"reason", failure.Reason,
		)
		fmt.Printf("invalid: %s\n", failure.Reason)
		return 1
	}

	log.InfoContext(ctx, "address is valid", "fields", rec.Len())
	fmt.Println("valid")
	return 0
}
