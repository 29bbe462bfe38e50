package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gymtrack/gymtrack-web/client"
)

func newGetCmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "get <endpoint>",
		Short: "GET any endpoint and print the JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parseParams(params)
			if err != nil {
				return err
			}
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.Get(ctx, args[0], ps)
			})
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Query parameter key=value; repeatable, order kept")
	return cmd
}

func newPostCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "post <endpoint>",
		Short: "POST a JSON body to any endpoint and print the JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if data != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				body = json.RawMessage(data)
			}
			return withClient(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.Post(ctx, args[0], body)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "JSON request body (default {})")
	return cmd
}

// parseParams turns key=value flags into ordered query params.
func parseParams(raw []string) (client.Params, error) {
	ps := make(client.Params, 0, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --param %q: want key=value", kv)
		}
		ps = append(ps, client.P(k, v))
	}
	return ps, nil
}
