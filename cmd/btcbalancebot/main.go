package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"btcbalancebot/bot"
	"btcbalancebot/config"
	"btcbalancebot/explorer"
	"btcbalancebot/metrics"
	"btcbalancebot/utils"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath = "logs"
	logFilePrefix   = "btcbalancebot"
)

var (
	botHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
	// configPathFlag defines a flag for the path of the application's configuration file
	configPathFlag = cli.StringFlag{
		Name:  "config-path",
		Usage: "The application will load its configuration parameters from this file",
		Value: utils.DefaultConfigPath,
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,bot:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the bot package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	//logSaveFile is used when the log output needs to be logged in a file
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
	}
)

var log = logger.GetOrCreate("main")

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = botHelpTemplate
	app.Name = "Bitcoin Balance Bot CLI App"
	app.Usage = "This app is a Telegram Bot that tracks Bitcoin wallet balances"
	app.Flags = []cli.Flag{
		configPathFlag,
		logLevel,
		logSaveFile,
	}
	app.Version = "v0.0.1"

	app.Action = func(c *cli.Context) error {
		return startApp(c)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startApp(ctx *cli.Context) error {
	var err error

	rand.Seed(time.Now().UnixNano())

	logLevelFlagValue := ctx.GlobalString(logLevel.Name)
	err = logger.SetLogLevel(logLevelFlagValue)
	if err != nil {
		return err
	}

	withLogFile := ctx.GlobalBool(logSaveFile.Name)
	var logFile *os.File
	if withLogFile {
		logFile, err = createLogFile()
		if err != nil {
			return fmt.Errorf("%w creating a log file", err)
		}

		err = logger.AddLogObserver(logFile, &logger.PlainFormatter{})
		if err != nil {
			return err
		}
	}

	log.Info("starting btcbalancebot...")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	log.Info("loading config...")

	configurationFileName := ctx.GlobalString(configPathFlag.Name)
	appConfig, err := config.NewConfig(configurationFileName)
	if err != nil {
		return err
	}

	metrics.StartServer(appConfig.MetricsListen)

	log.Info("creating explorer client...")

	explorerClient := explorer.NewClient("")

	log.Info("creating Telegram bot instance...")

	tgBot, err := bot.NewBot(appConfig, configurationFileName, explorerClient)
	if err != nil {
		return err
	}

	tgBot.StartTasks()

	log.Info("application is now running...")

	mainLoop(sigs)

	log.Debug("closing btcbalancebot...")
	if logFile != nil {
		err = logFile.Close()
		log.LogIfError(err)
	}

	return nil
}

func createLogFile() (*os.File, error) {
	err := os.MkdirAll(defaultLogsPath, os.ModePerm)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%s.log", logFilePrefix, time.Now().Format("2006-01-02-15-04-05"))

	return os.Create(filepath.Join(defaultLogsPath, name))
}

func mainLoop(stop chan os.Signal) {
	for {
		select {
		case <-stop:
			log.Info("terminating at user's signal...")
			return
		}
	}
}
