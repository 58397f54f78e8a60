package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"osier-hq/beanlint/pkg/config"
	"osier-hq/beanlint/pkg/ignore"
)

var dumpResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Work with override-configuration documents",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an override-configuration document",
	Long: `Validate an override-configuration document against the schema and,
with --dump, print the ignore decision resolved for every configured
scope.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: valid (%d beans)\n", args[0], len(cfg.Beans))
		if !dumpResolved {
			return nil
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		reg := ignore.NewRegistry(logger)
		config.Apply(cfg, reg)
		reg.Freeze()

		for _, bean := range cfg.Beans {
			fmt.Fprintf(out, "%s:\n", bean.Class)
			fmt.Fprintf(out, "  default: %t\n", reg.IsDefaultIgnore(bean.Class))
			fmt.Fprintf(out, "  class:   %t\n", reg.IsIgnoreOnClass(bean.Class))
			for _, f := range append(append([]config.MemberConfig{}, bean.Fields...), bean.Getters...) {
				m := ignore.Member{Class: bean.Class, Name: f.Name}
				fmt.Fprintf(out, "  member %s: %t\n", f.Name, reg.IsIgnoreOnMember(m))
			}
			for _, mc := range bean.Methods {
				m := ignore.MethodMember(bean.Class, mc.Name, mc.ParameterTypes)
				for _, p := range mc.Parameters {
					fmt.Fprintf(out, "  parameter %s[%d]: %t\n", mc.Name, p.Index, reg.IsIgnoreOnParameter(m, p.Index))
				}
				if mc.ReturnValue != nil {
					fmt.Fprintf(out, "  return %s: %t\n", mc.Name, reg.IsIgnoreOnReturn(m))
				}
				if mc.CrossParameter != nil {
					fmt.Fprintf(out, "  cross-parameter %s: %t\n", mc.Name, reg.IsIgnoreOnCrossParameter(m))
				}
			}
		}
		return nil
	},
}

func init() {
	configValidateCmd.Flags().BoolVar(&dumpResolved, "dump", false, "print resolved ignore decisions")
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
