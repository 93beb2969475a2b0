package main

import (
	"errors"
	"fmt"

	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/service"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a small demo catalog into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := cur.services.Seed(cmd.Context())
		if errors.Is(err, service.ErrAlreadySeeded) {
			fmt.Fprintln(cmd.OutOrStdout(), "database already has data, nothing seeded")
			return nil
		}
		if err != nil {
			return err
		}
		for _, k := range model.AllKinds {
			fmt.Fprintf(cmd.OutOrStdout(), "%-13s %d\n", k, res[k])
		}
		return nil
	},
}
