package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "varanex",
	Short: "VaraNex AI - question relay backend",
	Long: `VaraNex AI forwards questions to Groq and returns Markdown answers as JSON.

  varanex                      Start the HTTP server (same as "serve")
  varanex serve                Start the HTTP server
  varanex ask "What is 2+2?"   Ask one question from the terminal`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
