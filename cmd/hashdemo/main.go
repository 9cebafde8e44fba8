package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/lumberjack"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("main")

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

var fileLogFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{module}] [%{shortfunc}] [%{level}] %{message}`,
)

type Options struct {
	LogLevel string `short:"l" long:"loglevel" default:"info" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	LogFile  string `long:"logfile" description:"also write logs to this file, rotated at 10MB"`
}

func main() {
	var opts Options

	parser := newParser(&opts, os.Stdout, os.Stderr)
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

func newParser(opts *Options, out, logOut io.Writer) *flags.Parser {
	parser := flags.NewParser(opts, flags.Default)

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		closer, err := setupLogging(opts, logOut)
		if err != nil {
			return err
		}

		return runCommand(cmd, args, closer)
	}

	parser.AddCommand("demo",
		"walk through insert, search and delete",
		"The demo command fills a table with fruit, dumps it, searches a few keys and deletes one",
		&Demo{out: out})
	parser.AddCommand("resize",
		"watch an open table grow",
		"The resize command inserts key_i/value_i pairs into an open table and reports its size after every insert",
		&Resize{out: out})
	parser.AddCommand("compare",
		"compare chaining with open addressing",
		"The compare command times inserts and searches of the same pairs in both tables",
		&Compare{out: out})
	parser.AddCommand("loadfactor",
		"time operations against the load factor",
		"The loadfactor command times insert, search and delete on a chained table filled to load factors 0.1 to 0.9",
		&LoadFactor{out: out})

	return parser
}

// runCommand executes the command and closes the log file afterwards.
// A close error is reported unless the command already failed.
func runCommand(cmd flags.Commander, args []string, closer io.Closer) (err error) {
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			log.Errorf("closing log file: %v", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	if cmd == nil {
		return nil
	}

	return cmd.Execute(args)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func setupLogging(opts *Options, logOut io.Writer) (io.Closer, error) {
	level, err := logging.LogLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}

	backendStdout := logging.NewLogBackend(logOut, "", 0)
	backends := []logging.Backend{logging.NewBackendFormatter(backendStdout, stdoutLogFormat)}

	var closer io.Closer = nopCloser{}
	if opts.LogFile != "" {
		path, err := homedir.Expand(filepath.Clean(opts.LogFile))
		if err != nil {
			return nil, err
		}

		w := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, //days
		}
		backendFile := logging.NewLogBackend(w, "", 0)
		backends = append(backends, logging.NewBackendFormatter(backendFile, fileLogFormat))
		closer = w
	}

	leveled := logging.SetBackend(backends...)
	leveled.SetLevel(level, "")

	return closer, nil
}
