package train

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
)

// PlotLoss renders the loss history as a terminal line plot.
//
// The x axis is the epoch index, the y axis the monitoring loss. The
// plot goes to w only; nothing is written to disk.
func PlotLoss(history []float64, w io.Writer) {
	if len(history) == 0 {
		return
	}

	plot := asciigraph.Plot(history,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("training loss per epoch"),
	)
	fmt.Fprintln(w, plot)
}
