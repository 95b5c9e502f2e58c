package main

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/aretw0/dynurl/internal/cli"
	"github.com/aretw0/dynurl/internal/presentation/tui"
	httpAdapter "github.com/aretw0/dynurl/pkg/adapters/http"
	"github.com/aretw0/dynurl/pkg/config"
	"github.com/aretw0/dynurl/pkg/domain"
	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <template>",
	Short: "Resolve the placeholders of a single path template",
	Example: `  dynurl rewrite "/users/{userId}/items/{attr.data-id}" --var userId=42 --attr data-id=7
  dynurl rewrite "/systems/{sys.details.code}" --namespace ns.yaml --fallback`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		vars, _ := cmd.Flags().GetStringArray("var")
		attrs, _ := cmd.Flags().GetStringArray("attr")
		nsPath, _ := cmd.Flags().GetString("namespace")
		asJSON, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")

		parsedVars, err := cli.ParseAssignments(vars)
		if err != nil {
			return err
		}
		element, err := cli.ParseAssignments(attrs)
		if err != nil {
			return err
		}

		if len(parsedVars) > 0 {
			merged := make(map[string]any, len(settings.Variables)+len(parsedVars))
			maps.Copy(merged, settings.Variables)
			for k, v := range parsedVars {
				merged[k] = v
			}
			settings.Variables = merged
		}
		if nsPath != "" {
			settings.Namespace.Kind = config.NamespaceFile
			settings.Namespace.Path = nsPath
		}
		if cmd.Flags().Changed("fallback") {
			settings.AllowNamespaceFallback, _ = cmd.Flags().GetBool("fallback")
		}
		settings.Namespace.Watch = false

		logger := newLogger(settings)
		rt, err := cli.NewRuntime(settings, logger, engineHooks(settings, logger)...)
		if err != nil {
			return err
		}
		defer rt.Close()

		res := rt.Engine.Rewrite(cmd.Context(), args[0], domain.Attributes(element))

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(httpAdapter.NewRewriteResponse(res))
		}
		tui.PrintResult(out, res, verbose)
		if !res.Changed && verbose {
			fmt.Fprintln(cmd.ErrOrStderr(), "no placeholder was substituted")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rewriteCmd.Flags().StringArray("var", nil, "Static variable for the resolver (key=value, repeatable)")
	rewriteCmd.Flags().StringArray("attr", nil, "Element attribute readable as {attr.<key>} (key=value, repeatable)")
	rewriteCmd.Flags().String("namespace", "", "YAML or JSON file used as the fallback namespace")
	rewriteCmd.Flags().Bool("fallback", false, "Enable the namespace fallback")
	rewriteCmd.Flags().Bool("json", false, "Print the result as JSON")
	rewriteCmd.Flags().BoolP("verbose", "v", false, "Show how each placeholder was resolved")
}
