package main

import (
	"fmt"
	"os"
	"time"

	"github.com/nzai/drip/aggregators"
	"github.com/nzai/drip/calculators"
	"github.com/nzai/drip/config"
	"github.com/nzai/drip/fetchers"
	"github.com/nzai/drip/quotes"
	"github.com/nzai/drip/sources"
	"github.com/nzai/drip/tables"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	app := &cli.App{
		Name:  "drip",
		Usage: "compute dividend reinvestment adjusted share quantity",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ticker",
				Aliases:  []string{"t"},
				Usage:    "stock `ticker`, eg: MSFT",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "start",
				Aliases:  []string{"s"},
				Usage:    "position start `date`, eg: 2023-01-01",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "quantity",
				Aliases:  []string{"q"},
				Usage:    "initial share `quantity`, eg: 100",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config `file` path",
			},
		},
		Action: run,
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	conf := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		conf, err = config.Parse(path)
		if err != nil {
			return fmt.Errorf("parse config file failed: %w", err)
		}
	}

	logger := newLogger(conf.LogFile)
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	quantity, err := decimal.NewFromString(c.String("quantity"))
	if err != nil {
		return fmt.Errorf("invalid quantity: %s", c.String("quantity"))
	}

	position := quotes.NewPosition(c.String("ticker"), c.String("start"), quantity)
	err = position.Valid()
	if err != nil {
		return err
	}

	fetcher := fetchers.NewNetopFetcher(conf.RetryCount, conf.Interval())
	source := sources.NewYahooFinance(fetcher, tables.NewRegexpExtractor())

	records, err := aggregators.NewAggregator(source, conf.Parallel).Aggregate(position.Ticker, position.StartTime(), time.Now())
	if err != nil {
		zap.L().Fatal("aggregate dividend prices failed",
			zap.Error(err),
			zap.String("ticker", position.Ticker),
			zap.String("start", position.Start))
	}

	adjusted := calculators.NewReinvestCalculator().Calculate(position, records)
	zap.L().Info("compute adjusted quantity success",
		zap.String("ticker", position.Ticker),
		zap.String("start", position.Start),
		zap.Int("dividends", len(records)),
		zap.String("quantity", position.Quantity.String()),
		zap.String("adjusted", adjusted.String()))

	fmt.Println(adjusted.String())
	return nil
}

// newLogger log to console, or to a rotated file when configured
func newLogger(logFile string) *zap.Logger {
	if logFile == "" {
		logger, _ := zap.NewDevelopment()
		return logger
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,
		MaxBackups: 7,
	})

	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), writer, zap.InfoLevel))
}
