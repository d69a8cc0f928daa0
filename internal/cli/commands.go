package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/happycube/piece"
	"github.com/katalvlaran/happycube/render"
)

// parsePiece parses a code argument and warns about detached cells.
func parsePiece(ctx context.Context, code string, strict bool) (*piece.Piece, error) {
	logger := loggerFromContext(ctx)

	var opts []piece.Option
	if strict {
		opts = append(opts, piece.WithStrictCells())
	}
	p, err := piece.Parse(code, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed piece", "code", p.String())
	if !p.Connected() {
		logger.Warn("piece has detached cells", "code", p.String())
	}
	return p, nil
}

func (a *app) newRenderCmd() *cobra.Command {
	var (
		rotation int
		mirrored bool
		box      bool
	)

	cmd := &cobra.Command{
		Use:   "render <edge-code>",
		Short: "Draw a piece",
		Long: `Draw a piece from its 16-digit edge code.

The piece is mirrored first (--mirror) and then turned clockwise
--rotate quarter turns.`,
		Example: `  happycube render 0101001000101101
  happycube render 0101001000101101 --rotate 1 --mirror`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePiece(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			tp := piece.Transform(p, rotation, mirrored)
			loggerFromContext(cmd.Context()).Debug("transformed piece",
				"rotation", tp.Rotation(), "mirrored", tp.Mirrored())

			out := render.Text(tp.Grid(), a.cfg.renderOptions()...)
			if !cmd.Flags().Changed("box") {
				box = a.cfg.Box
			}
			if box {
				out = boxed(out)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVarP(&rotation, "rotate", "r", 0, "clockwise quarter turns (taken modulo 4)")
	cmd.Flags().BoolVarP(&mirrored, "mirror", "m", false, "flip the piece left-right before rotating")
	cmd.Flags().BoolVar(&box, "box", false, "draw a border around the piece")

	return cmd
}

func (a *app) newEdgesCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "edges <edge-code>",
		Short: "List the edges and corners of a piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePiece(cmd.Context(), args[0], strict)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, styleTitle.Render("edges"))
			for _, d := range piece.EdgeDirections {
				fmt.Fprintf(w, "%s %s\n", label(d.String()), digits(p.Edge(d)))
			}
			fmt.Fprintln(w, styleTitle.Render("corners"))
			for _, c := range piece.CornerDirections {
				fmt.Fprintf(w, "%s %d\n", label(c.String()), p.Corner(c))
			}
			fmt.Fprintf(w, "%s %d\n", label("area"), p.Area())
			if !p.Connected() {
				fmt.Fprintln(w, styleWarning.Render("warning: piece has detached cells"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject values other than 0 and 1")

	return cmd
}

func (a *app) newOrientationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orientations <edge-code>",
		Short: "Draw all eight orientations of a piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePiece(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			all := piece.Orientations(p)
			w := cmd.OutOrStdout()
			opts := a.cfg.renderOptions()

			for _, half := range [][]*piece.Transformed{all[:4], all[4:]} {
				grids := make([][][]int, len(half))
				labels := make([]string, len(half))
				for i, tp := range half {
					grids[i] = tp.Grid()
					labels[i] = orientationLabel(tp)
				}
				fmt.Fprintln(w, styleDim.Render(strings.Join(labels, "  ")))
				fmt.Fprintln(w, render.SideBySide(grids, 2, opts...))
			}
			return nil
		},
	}
}

// orientationLabel is a five-character caption: "r1" for one quarter turn,
// "r1 m" when mirrored first.
func orientationLabel(tp *piece.Transformed) string {
	label := fmt.Sprintf("r%d", tp.Rotation())
	if tp.Mirrored() {
		label += " m"
	}
	return fmt.Sprintf("%-5s", label)
}

func digits(vals []int) string {
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprint(&b, v)
	}
	return b.String()
}
