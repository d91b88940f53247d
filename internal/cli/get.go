package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/formwire/formwire"
	fwhttp "github.com/formwire/formwire/http"
)

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Make a GET request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		opts := callOptionsFrom(cmd)

		runCall("GET", url, opts, func(ctx context.Context, sender *formwire.Sender) *fwhttp.Pending {
			return sender.Get(ctx, url, opts.data, opts.headers)
		})
	},
}

func init() {
	addRequestFlags(getCmd)
}
