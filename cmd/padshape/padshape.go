package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Alia5/padshape/internal/config"
	"github.com/Alia5/padshape/internal/log"
	"github.com/Alia5/padshape/internal/util"
)

func main() {
	fromGUI := util.IsRunFromGUI()
	exit := func(code int) {
		util.PauseBeforeExit(fromGUI, os.Stdin, os.Stdout, "Press Enter to exit...")
		os.Exit(code)
	}

	var cli config.CLI
	parser, err := config.NewParser(&cli, config.FindUserConfig(os.Args[1:]), kong.Exit(exit))
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to build command line: " + err.Error() + "\n")
		exit(2)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	// replay frames may be piped through stdout
	stdoutBusy := ctx.Command() == "replay" && (cli.Replay.Out == "-" || cli.Replay.Out == "")
	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, stdoutBusy)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		exit(2)
	}

	var rawLogger log.RawLogger
	switch {
	case cli.Log.RawFile != "":
		f, err := os.OpenFile(cli.Log.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cli.Log.RawFile, "error", err)
			rawLogger = log.NewRaw(nil)
		} else {
			rawLogger = log.NewRaw(f)
			closeFiles = append(closeFiles, f)
		}
	case cli.Log.RawLogEnabled():
		rawLogger = log.NewRaw(os.Stderr)
	default:
		rawLogger = log.NewRaw(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err = ctx.Run()
	for _, c := range closeFiles {
		_ = c.Close()
	}
	ctx.FatalIfErrorf(err)
	exit(0)
}
