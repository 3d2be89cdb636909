package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"varanex_backend/bootstrap"
	"varanex_backend/config"
	"varanex_backend/models"
	"varanex_backend/pkg/apperror"
	"varanex_backend/pkg/logging"
	"varanex_backend/services"
)

var askCmd = &cobra.Command{
	Use:   "ask QUESTION",
	Short: "Ask one question and print the JSON answer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	logging.Init(cfg.AppEnv)

	svc := bootstrap.NewServices(cfg, nil)
	return askAndPrint(cmd, svc.RelayService, strings.Join(args, " "))
}

// askAndPrint writes the answer, or the error body the HTTP API would send,
// to cmd's output. Failures also return an error for the exit status.
func askAndPrint(cmd *cobra.Command, relay *services.RelayService, question string) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	resp, err := relay.Ask(cmd.Context(), question)
	if err != nil {
		status, msg := apperror.Status(err)
		if encErr := enc.Encode(models.ErrorResponse{Error: msg}); encErr != nil {
			return encErr
		}
		return fmt.Errorf("ask failed with status %d", status)
	}
	return enc.Encode(resp)
}
