package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/formwire/formwire"
	fwhttp "github.com/formwire/formwire/http"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request with the data fields as a JSON entity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		opts := callOptionsFrom(cmd)

		runCall("POST", url, opts, func(ctx context.Context, sender *formwire.Sender) *fwhttp.Pending {
			return sender.PostJSON(ctx, url, opts.data, opts.headers)
		})
	},
}

func init() {
	addRequestFlags(postCmd)
}
