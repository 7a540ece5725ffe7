package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          "shotframe",
	Short:        "shotframe styles screenshots for READMEs",
	Long:         "shotframe rounds screenshot corners, adds drop shadows and frames screenshots as terminal windows.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	debugFlag bool

	// debugLog receives pipeline stage logs; nil unless debug logging is on.
	debugLog *log.Logger
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debugFlag, `debug`, false, `print error stacks and debug logs`)
}

// setupLogging configures logging to stderr (stdout is for MCP protocol).
func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if debugFlag || os.Getenv("SHOTFRAME_LOG_LEVEL") == "debug" {
		debugLog = log.Default()
		debugLog.Printf("shotframe %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	var err error
	if fn == nil {
		err = errors.New(`nil command function`)
	} else {
		err = fn()
	}
	if err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(os.Stderr, "error: "+err.Error())
		}
		os.Exit(1)
	}
}
