package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/paydeck/bank_portal_app/internal/utils"
	"github.com/paydeck/bank_portal_app/internal/utils/approval"
	"github.com/paydeck/bank_portal_app/internal/utils/csvimport"
)

func newValidateCommand() *cobra.Command {
	var showValid bool

	cmd := &cobra.Command{
		Use:   "validate <file.csv>",
		Short: "Validate a payroll bulk-upload CSV without submitting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer f.Close()

			return runValidate(cmd, f.Name(), f, showValid)
		},
	}

	cmd.Flags().BoolVar(&showValid, "show-valid", false, "also print rows that passed validation")

	return cmd
}

func runValidate(cmd *cobra.Command, name string, f io.Reader, showValid bool) error {
	rows, err := csvimport.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	total := decimal.Zero
	valid := 0
	for _, row := range rows {
		if row.Valid {
			valid++
			total = total.Add(row.Amount)
			if showValid {
				cmd.Printf("line %d: ok    %s %s %s\n", row.Line, row.Name, row.AccountNumber, utils.FormatINR(row.Amount))
			}
			continue
		}
		cmd.Printf("line %d: SKIP  %s\n", row.Line, row.Reason)
	}

	cmd.Printf("\n%d valid, %d invalid of %d rows\n", valid, len(rows)-valid, len(rows))
	cmd.Printf("total amount %s, requires %d approver(s)\n", utils.FormatINR(total), approval.RequiredApprovers(total))
	return nil
}
