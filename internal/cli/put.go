package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/formwire/formwire"
	fwhttp "github.com/formwire/formwire/http"
)

var putCmd = &cobra.Command{
	Use:   "put URL",
	Short: "Make a PUT request with the data fields as a JSON entity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		opts := callOptionsFrom(cmd)

		runCall("PUT", url, opts, func(ctx context.Context, sender *formwire.Sender) *fwhttp.Pending {
			return sender.PutJSON(ctx, url, opts.data, opts.headers)
		})
	},
}

func init() {
	addRequestFlags(putCmd)
}
