package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/formwire/formwire"
	"github.com/formwire/formwire/encode"
	fwhttp "github.com/formwire/formwire/http"
	"github.com/formwire/formwire/internal/metrics"
	"github.com/formwire/formwire/internal/output"
	"github.com/formwire/formwire/pkg/jsonpath"
	"github.com/formwire/formwire/pkg/jsonschema"
)

// callOptions collects the flags shared by the request subcommands.
type callOptions struct {
	headers map[string]string
	data    encode.Bag
	timeout time.Duration
	verbose bool
	noColor bool
	extract string
	schema  string
	repeat  int
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().StringArrayP("data", "d", []string{}, "Data field as key=value (repeated keys become multi-valued)")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("extract", "", "JSONPath to extract from the response body")
	cmd.Flags().String("schema", "", "JSON Schema file to validate the response body against")
	cmd.Flags().Int("repeat", 1, "Send the request N independent times and report latency")
}

func callOptionsFrom(cmd *cobra.Command) callOptions {
	headers, _ := cmd.Flags().GetStringArray("header")
	data, _ := cmd.Flags().GetStringArray("data")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	extract, _ := cmd.Flags().GetString("extract")
	schema, _ := cmd.Flags().GetString("schema")
	repeat, _ := cmd.Flags().GetInt("repeat")

	return callOptions{
		headers: parseHeaders(headers),
		data:    parseData(data),
		timeout: timeout,
		verbose: verbose,
		noColor: noColor || !output.IsTerminal(os.Stdout),
		extract: extract,
		schema:  schema,
		repeat:  repeat,
	}
}

// parseHeaders splits "Name: value" flag values into a header map.
func parseHeaders(raw []string) map[string]string {
	headers := make(map[string]string)
	for _, header := range raw {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return headers
}

// parseData builds a Bag from key=value flag values. A key given more
// than once becomes a multi-valued field.
func parseData(raw []string) encode.Bag {
	if len(raw) == 0 {
		return nil
	}

	bag := encode.Bag{}
	for _, item := range raw {
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key, value := parts[0], parts[1]

		switch existing := bag[key].(type) {
		case nil:
			bag[key] = value
		case string:
			bag[key] = []string{existing, value}
		case []string:
			bag[key] = append(existing, value)
		}
	}
	return bag
}

// dispatchFunc issues one request through the library and returns its
// pending handle.
type dispatchFunc func(ctx context.Context, sender *formwire.Sender) *fwhttp.Pending

// runCall executes a request subcommand: single-shot with full output,
// or repeat mode with a latency summary. Exits non-zero on any failure
// outcome.
func runCall(method, url string, opts callOptions, dispatch dispatchFunc) {
	formatter := output.NewFormatter(opts.verbose, opts.noColor)
	sender := formwire.New()

	if opts.repeat > 1 {
		runRepeated(opts, sender, dispatch)
		return
	}

	fmt.Print(formatter.FormatRequest(previewRequest(method, url, opts)))

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	outcome := dispatch(ctx, sender).Wait()
	fmt.Print(formatter.FormatOutcome(outcome))

	failed := !outcome.OK
	if !postprocess(outcome, opts) {
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

// previewRequest reconstructs the request shape for display only; the
// library builds its own request at dispatch time.
func previewRequest(method, url string, opts callOptions) *fwhttp.Request {
	req := fwhttp.NewRequest(method, url).WithHeaders(opts.headers)
	if opts.data != nil {
		switch method {
		case "GET", "DELETE":
			req.Path = url + "?" + encode.Query(opts.data)
		default:
			if entity, err := json.Marshal(opts.data); err == nil {
				req.WithEntity(entity, "application/json")
			}
		}
	}
	return req
}

// runRepeated sends the request opts.repeat independent times and
// prints a latency summary instead of per-request output.
func runRepeated(opts callOptions, sender *formwire.Sender, dispatch dispatchFunc) {
	recorder := metrics.NewRecorder()

	for i := 0; i < opts.repeat; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		start := time.Now()
		outcome := dispatch(ctx, sender).Wait()
		recorder.Record(time.Since(start), outcome.OK)
		cancel()
	}

	summary := recorder.Summarize()
	fmt.Printf("Requests: %d (%s %d, %s %d)\n",
		summary.Requests,
		output.SuccessIcon(opts.noColor), summary.Successes,
		output.ErrorIcon(opts.noColor), summary.Failures)
	fmt.Printf("Latency:  min %v  p50 %v  p95 %v  p99 %v  max %v\n",
		summary.Min, summary.Median, summary.P95, summary.P99, summary.Max)

	if summary.Failures > 0 {
		os.Exit(1)
	}
}

// postprocess applies --extract and --schema to a settled outcome.
// Returns false when the outcome fails a check.
func postprocess(outcome fwhttp.Outcome, opts callOptions) bool {
	if opts.extract == "" && opts.schema == "" {
		return true
	}

	document := "null"
	if outcome.Body != nil {
		rendered, err := json.Marshal(outcome.Body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		document = string(rendered)
	}

	ok := true

	if opts.extract != "" {
		value, err := jsonpath.Extract(document, opts.extract)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ok = false
		} else {
			fmt.Println(value)
		}
	}

	if opts.schema != "" {
		schema, err := os.ReadFile(opts.schema)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		failures, err := jsonschema.Errors(document, string(schema))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		if len(failures) > 0 {
			for _, failure := range failures {
				fmt.Fprintf(os.Stderr, "%s schema: %s\n", output.ErrorIcon(opts.noColor), failure)
			}
			ok = false
		} else {
			fmt.Printf("%s schema: valid\n", output.SuccessIcon(opts.noColor))
		}
	}

	return ok
}
