package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/austencloud/tka-engine/catalog"
	"github.com/austencloud/tka-engine/continuity"
	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/letters"
	"github.com/austencloud/tka-engine/options"
	"github.com/austencloud/tka-engine/sequence"
	"github.com/austencloud/tka-engine/slots"
)

var (
	resolveReversal string
	resolveCapacity int
)

// ResolveCmd represents the resolve command
var ResolveCmd = &cobra.Command{
	Use:   "resolve SEQUENCE_FILE",
	Short: "Resolve valid next options for a sequence",
	Long: `Resolve every valid next pictograph for the sequence tail.

The sequence file is a YAML list of committed steps; only the last step
drives the lookup, the rest feed reversal analysis.

Examples:
  tka-options resolve sequence.yaml
  tka-options resolve sequence.yaml --reversal continuous
  tka-options resolve sequence.yaml --capacity 12`,
	Args: cobra.ExactArgs(1),
	RunE: runResolveCommand,
}

func init() {
	ResolveCmd.Flags().StringVarP(&resolveReversal, "reversal", "r", "",
		"Reversal filter (continuous/one_reversal/two_reversals)")
	ResolveCmd.Flags().IntVar(&resolveCapacity, "capacity", 0,
		"Override render slot pool capacity")
}

func runResolveCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if resolveCapacity > 0 {
		cfg.Pool.Capacity = resolveCapacity
	}

	var filter *continuity.ReversalKind
	if resolveReversal != "" {
		kind, err := continuity.ParseReversalKind(resolveReversal)
		if err != nil {
			return errors.Wrap(err, "invalid --reversal")
		}
		filter = &kind
	}

	seq, err := sequence.LoadFile(args[0])
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}

	pool, err := slots.NewPool(cfg.Pool.Capacity)
	if err != nil {
		return err
	}

	coord := options.NewCoordinator(cat, pool)
	set := coord.UpdateForSequence(seq, filter)

	return displayOptionSet(seq, set)
}

func displayOptionSet(seq sequence.Sequence, set *options.Set) error {
	last := seq.Last()
	if last == nil {
		pterm.Info.Println("Empty sequence: no previous step to resolve from")
		return nil
	}

	pterm.Info.Printf("%d options from %s\n", set.Total(), last.EndPos)
	if set.Truncated() > 0 {
		pterm.Warning.Printf("%d options dropped (pool capacity reached)\n", set.Truncated())
	}

	for _, lt := range letters.All {
		opts := set.Options(lt)
		if len(opts) == 0 {
			continue
		}

		pterm.DefaultSection.Printf("%s (%s)", lt, lt.Description())
		for _, opt := range opts {
			fmt.Printf("  %-3s %s -> %s  slot %d\n",
				opt.Entry.Letter, opt.Entry.StartPos, opt.Entry.EndPos, opt.Slot.Index())
			fmt.Printf("      primary   %s %s %s->%s ori %s->%s\n",
				opt.Entry.Primary.MotionType, opt.Entry.Primary.PropRotDir,
				opt.Entry.Primary.StartLoc, opt.Entry.Primary.EndLoc,
				opt.Entry.Primary.StartOri, opt.Entry.Primary.EndOri)
			fmt.Printf("      secondary %s %s %s->%s ori %s->%s\n",
				opt.Entry.Secondary.MotionType, opt.Entry.Secondary.PropRotDir,
				opt.Entry.Secondary.StartLoc, opt.Entry.Secondary.EndLoc,
				opt.Entry.Secondary.StartOri, opt.Entry.Secondary.EndOri)
		}
	}

	return nil
}
