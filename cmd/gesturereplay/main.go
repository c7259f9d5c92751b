// Command gesturereplay feeds a scripted input sequence through a gesture
// pointer and prints every emitted event, one per line.
//
//	gesturereplay run swipe.yaml --axis x
//	gesturereplay run swipe.yaml --options pointer.yaml --carousel 5
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gesture"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "gesturereplay",
		Short:        "Replay scripted pointer input through the gesture engine.",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(out))
	return root
}

type runFlags struct {
	axis      string
	options   string
	threshold float64
	carousel  int
	width     float64
	debug     bool
}

func newRunCmd(out io.Writer) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a YAML or JSON input script and print the gesture events.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			script, err := gesture.LoadScript(data)
			if err != nil {
				return err
			}
			opts, err := loadOptions(cmd, f)
			if err != nil {
				return err
			}
			return replay(out, script, opts, f)
		},
	}
	cmd.Flags().StringVar(&f.axis, "axis", "", "axis to track: x, y or both (overrides --options)")
	cmd.Flags().StringVar(&f.options, "options", "", "YAML options file")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "swipe velocity threshold in units/ms (overrides --options)")
	cmd.Flags().IntVar(&f.carousel, "carousel", 0, "attach a carousel with this many slides and report index changes")
	cmd.Flags().Float64Var(&f.width, "slide-width", 320, "carousel slide width")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "print engine trace lines to stderr")
	return cmd
}

func loadOptions(cmd *cobra.Command, f runFlags) (gesture.Options, error) {
	opts := gesture.DefaultOptions()
	if f.options != "" {
		data, err := os.ReadFile(f.options)
		if err != nil {
			return opts, err
		}
		if opts, err = gesture.LoadOptions(data); err != nil {
			return opts, err
		}
	}
	if cmd.Flags().Changed("axis") {
		axis, err := gesture.ParseAxis(f.axis)
		if err != nil {
			return opts, err
		}
		opts.Axis = axis
	}
	if cmd.Flags().Changed("threshold") {
		opts.VelocityThreshold = f.threshold
	}
	if f.debug {
		opts.Debug = true
	}
	return opts, opts.Validate()
}

func replay(out io.Writer, script *gesture.Script, opts gesture.Options, f runFlags) error {
	if f.carousel > 0 {
		opts.Axis = gesture.AxisX
	}
	surface := gesture.NewSurface()
	defer surface.Dispose()

	p, err := surface.Add(gesture.Anywhere{}, opts)
	if err != nil {
		return err
	}
	emit := func(ev gesture.Event) {
		fmt.Fprintln(out, formatEvent(ev))
	}
	p.OnStart(emit)
	p.OnMove(emit)
	p.OnEnd(emit)
	gesture.OnSwipe(p, func(dir gesture.Direction, ev gesture.Event) {
		fmt.Fprintf(out, "swipe %s v=%.3f,%.3f\n", dir, ev.CurrentVelocity.X, ev.CurrentVelocity.Y)
	})
	if f.carousel > 0 {
		c, err := gesture.NewCarousel(p, gesture.CarouselConfig{Slides: f.carousel, SlideWidth: f.width})
		if err != nil {
			return err
		}
		c.OnChange(func(from, to int) {
			fmt.Fprintf(out, "slide %d -> %d\n", from, to)
		})
	}
	return script.Run(surface)
}

func formatEvent(ev gesture.Event) string {
	s := fmt.Sprintf("%-5s t=%v end=%g,%g delta=%g,%g dist=%.2f v=%.3f,%.3f cv=%.3f,%.3f dir=%s axis=%s on-axis=%t moved=%t",
		ev.Type, ev.DeltaTime, ev.End.X, ev.End.Y, ev.Delta.X, ev.Delta.Y, ev.Distance,
		ev.Velocity.X, ev.Velocity.Y, ev.CurrentVelocity.X, ev.CurrentVelocity.Y,
		ev.Direction, ev.AxisDirection, ev.IsDirectionOnAxis, ev.DidMoveOnAxis)
	if ev.Cancelled {
		s += " cancelled"
	}
	return s
}
