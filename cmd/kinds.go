package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	pkgerrors "github.com/pkg/errors"
	"github.com/sable-lang/sable/backend/kinds"
	"github.com/sable-lang/sable/internal/log"
	"github.com/sable-lang/sable/sablerr"
	"github.com/sable-lang/sable/types"
	"github.com/spf13/cobra"
)

var InfoCmd = &cobra.Command{
	Use:          "info desc...",
	Short:        "Classify kind descriptors",
	RunE:         runInfo,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var SubCmd = &cobra.Command{
	Use:          "sub desc desc",
	Short:        "Decide whether the first kind is a subtype of the second",
	RunE:         runSub,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var JoinCmd = &cobra.Command{
	Use:          "join desc desc",
	Short:        "Compute the widening join of two kinds",
	RunE:         runJoin,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var LubCmd = &cobra.Command{
	Use:          "lub desc desc",
	Short:        "Compute the precise least upper bound of two kinds",
	RunE:         runLub,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var (
	classFlags []string
	ifaceFlags []string
	logLevel   int
	verifyLub  bool
)

func init() {
	for _, c := range []*cobra.Command{InfoCmd, SubCmd, JoinCmd, LubCmd} {
		c.Flags().StringArrayVar(&classFlags, "class", nil,
			"define a class as Name[:Super[,Iface...]] (repeatable, in dependency order)")
		c.Flags().StringArrayVar(&ifaceFlags, "interface", nil,
			"define an interface as Name[:Iface,...] (repeatable, in dependency order)")
		c.Flags().IntVarP(&logLevel, "log-level", "l", int(slog.LevelError), "log level")
	}
	LubCmd.Flags().BoolVar(&verifyLub, "verify-lub", false,
		"cross-check compound lub answers against the intersection dominator")
}

func newCtx() (*kinds.Ctx, kinds.ClassResolver, error) {
	log.SetLevel(slog.Level(logLevel))
	universe := types.NewUniverse()
	if err := defineHierarchy(universe); err != nil {
		return nil, nil, err
	}
	resolve := func(name string) (*types.ClassSymbol, error) {
		sym, ok := universe.ClassNamed(name)
		if !ok {
			return nil, sablerr.New(sablerr.NewUndefinedClass{Name: name})
		}
		return sym, nil
	}
	return kinds.NewCtx(universe), resolve, nil
}

func defineHierarchy(universe *types.Universe) error {
	for _, spec := range ifaceFlags {
		name, parents := splitSpec(spec)
		ifaces, err := resolveAll(universe, parents)
		if err != nil {
			return pkgerrors.Wrapf(err, "defining interface %q", spec)
		}
		if _, err := universe.DefineInterface(name, ifaces...); err != nil {
			return err
		}
	}
	for _, spec := range classFlags {
		name, parents := splitSpec(spec)
		var super *types.ClassSymbol
		var ifaces []*types.ClassSymbol
		if len(parents) > 0 {
			resolved, err := resolveAll(universe, parents)
			if err != nil {
				return pkgerrors.Wrapf(err, "defining class %q", spec)
			}
			super, ifaces = resolved[0], resolved[1:]
		}
		if _, err := universe.Define(name, super, ifaces...); err != nil {
			return err
		}
	}
	return nil
}

func splitSpec(spec string) (name string, parents []string) {
	name, rest, found := strings.Cut(spec, ":")
	if !found || rest == "" {
		return name, nil
	}
	return name, strings.Split(rest, ",")
}

func resolveAll(universe *types.Universe, names []string) ([]*types.ClassSymbol, error) {
	syms := make([]*types.ClassSymbol, 0, len(names))
	for _, name := range names {
		sym, ok := universe.ClassNamed(name)
		if !ok {
			return nil, sablerr.New(sablerr.NewUndefinedClass{Name: name})
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

func parseOperands(ctx *kinds.Ctx, resolve kinds.ClassResolver, args []string) ([]kinds.TypeKind, error) {
	parsed := make([]kinds.TypeKind, 0, len(args))
	for _, arg := range args {
		k, err := ctx.ParseDescriptor(arg, resolve)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, k)
	}
	return parsed, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx, resolve, err := newCtx()
	if err != nil {
		return err
	}
	ks, err := parseOperands(ctx, resolve, args)
	if err != nil {
		return err
	}
	for i, k := range ks {
		fmt.Printf("%s\t%s\n", args[i], k)
		fmt.Printf("  value=%s ref-or-array=%s integral=%s real=%s wide=%s\n",
			formatBool(kinds.IsValue(k)), formatBool(kinds.IsRefOrArray(k)),
			formatBool(kinds.IsIntegral(k)), formatBool(kinds.IsReal(k)),
			formatBool(kinds.IsWide(k)))
		fmt.Printf("  dimensions=%d slots=%d bottom=%s\n",
			kinds.Dimensions(k), kinds.Slots(k), formatBool(ctx.IsBottom(k)))
	}
	return nil
}

func runSub(cmd *cobra.Command, args []string) error {
	ctx, resolve, err := newCtx()
	if err != nil {
		return err
	}
	ks, err := parseOperands(ctx, resolve, args)
	if err != nil {
		return err
	}
	fmt.Printf("%s <:< %s = %s\n", ks[0], ks[1], formatBool(ctx.Subtype(ks[0], ks[1])))
	return nil
}

func runJoin(cmd *cobra.Command, args []string) error {
	ctx, resolve, err := newCtx()
	if err != nil {
		return err
	}
	ks, err := parseOperands(ctx, resolve, args)
	if err != nil {
		return err
	}
	joined, err := ctx.MaxType(ks[0], ks[1])
	if err != nil {
		return formatted(err)
	}
	fmt.Printf("%s ⊔ %s = %s\t(%s)\n", ks[0], ks[1], joined, kinds.Descriptor(joined))
	return nil
}

func runLub(cmd *cobra.Command, args []string) error {
	ctx, resolve, err := newCtx()
	if err != nil {
		return err
	}
	if verifyLub {
		ctx.VerifyLub()
	}
	ks, err := parseOperands(ctx, resolve, args)
	if err != nil {
		return err
	}
	bound, err := ctx.Lub(ks[0], ks[1])
	if err != nil {
		return formatted(err)
	}
	fmt.Printf("lub(%s, %s) = %s\t(%s)\n", ks[0], ks[1], bound, kinds.Descriptor(bound))
	return nil
}

// formatted surfaces lattice failures with their error code attached.
func formatted(err error) error {
	var serr sablerr.SableError
	if pkgerrors.As(err, &serr) {
		return pkgerrors.New(sablerr.FormatWithCode(serr))
	}
	return err
}

func formatBool(v bool) string {
	s := fmt.Sprintf("%v", v)
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	if v {
		return "\x1b[32m" + s + "\x1b[0m"
	}
	return "\x1b[31m" + s + "\x1b[0m"
}
