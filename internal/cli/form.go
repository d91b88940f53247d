package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/formwire/formwire"
	"github.com/formwire/formwire/form"
	"github.com/formwire/formwire/internal/config"
	"github.com/formwire/formwire/internal/output"
)

var formCmd = &cobra.Command{
	Use:   "form FILE",
	Short: "Submit a form definition file",
	Long: `Loads a YAML or JSON form definition and submits it the way a browser
would: multipart when the enctype or a file control requires it,
URL-encoded otherwise, honoring a _method override control.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		timeout, _ := cmd.Flags().GetDuration("timeout")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		noColor = noColor || !output.IsTerminal(os.Stdout)

		ff, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if errs := config.Validate(ff); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "%s %s\n", output.ErrorIcon(noColor), e.Error())
			}
			os.Exit(1)
		}

		f, err := config.ToForm(ff, filepath.Dir(path))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if dryRun {
			printSnapshot(f)
			return
		}

		if !formwire.CanSendForm(f) {
			fmt.Fprintln(os.Stderr, "Error: form requires multipart encoding, which is unavailable")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		sender := formwire.New()
		pending, err := sender.SendForm(ctx, f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		outcome := pending.Wait()

		formatter := output.NewFormatter(verbose, noColor)
		fmt.Print(formatter.FormatOutcome(outcome))

		if !outcome.OK {
			os.Exit(1)
		}
	},
}

// printSnapshot shows what a submit would do without sending anything.
func printSnapshot(f *form.Form) {
	snap := form.Inspect(f)

	fmt.Printf("Method:    %s\n", snap.Method)
	fmt.Printf("Action:    %s\n", f.Action)
	fmt.Printf("Multipart: %t\n", snap.Multipart)
	fmt.Println("Pairs:")
	for _, pair := range snap.Pairs {
		fmt.Printf("  %s=%s\n", pair.Name, pair.Value)
	}
}

func init() {
	formCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	formCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	formCmd.Flags().Bool("no-color", false, "Disable colored output")
	formCmd.Flags().Bool("dry-run", false, "Print the computed submission without sending")
}
