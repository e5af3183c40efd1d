package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/taghelper/pkg/registry"
)

func matchCmd() *cobra.Command {
	var (
		manifestPath string
		tag          string
		attrsFlag    string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Test which directive claims a tag invocation",
		Long: `Loads a directive manifest and reports which directive, if any,
claims the given tag name and attribute list.

Example:
  taghelper match --manifest directives.json --tag input --attrs asp-for,type`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tag == "" {
				return fmt.Errorf("--tag is required")
			}

			f, err := os.Open(manifestPath)
			if err != nil {
				return fmt.Errorf("opening manifest: %w", err)
			}
			defer f.Close()

			reg, err := registry.LoadManifest(f, manifestPath)
			if err != nil {
				return fmt.Errorf("loading manifest: %w", err)
			}

			var attrs []string
			if attrsFlag != "" {
				for _, a := range strings.Split(attrsFlag, ",") {
					if a = strings.TrimSpace(a); a != "" {
						attrs = append(attrs, a)
					}
				}
			}

			if verbose {
				info("manifest: %s (%d directives)", manifestPath, len(reg.Names()))
				info("tag:      <%s>", tag)
				info("attrs:    %s", strings.Join(attrs, ", "))
			}

			name := reg.Claimant(tag, attrs)
			if name == "" {
				errorMsg("no directive claims <%s>", tag)
				os.Exit(1)
			}

			success("<%s> is claimed by %s", tag, name)
			if verbose {
				rs := reg.RuleSet(name)
				for _, rule := range rs.Rules() {
					info("rule: tag=%q attrs=%v", rule.Pattern(), rule.RequiredAttributes())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "directives.json", "path to the directive manifest")
	cmd.Flags().StringVar(&tag, "tag", "", "tag name to test (required)")
	cmd.Flags().StringVar(&attrsFlag, "attrs", "", "comma-separated attribute names present on the tag")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the matched rules")
	return cmd
}
